package yamlfile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	masterdata "zes-stations/internal/masterdata/domain"
	"zes-stations/internal/masterdata/infrastructure/memory"
)

// ErrEmptyCatalog is returned when a catalog file lists no cities.
var ErrEmptyCatalog = errors.New("catalog file: no cities")

type catalogDocument struct {
	Cities []cityEntry `yaml:"cities"`
}

type cityEntry struct {
	Name      string                    `yaml:"name"`
	Target    int                       `yaml:"target"`
	Locations []masterdata.BaseLocation `yaml:"locations"`
}

// LoadCatalog reads a YAML catalog from path.
func LoadCatalog(path string) (*memory.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML catalog. City order in the document is the iteration order.
func ParseCatalog(data []byte) (*memory.Catalog, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(doc.Cities) == 0 {
		return nil, ErrEmptyCatalog
	}

	targets := make([]masterdata.CityTarget, 0, len(doc.Cities))
	locations := make(map[string][]masterdata.BaseLocation)
	for _, city := range doc.Cities {
		targets = append(targets, masterdata.CityTarget{Name: city.Name, Target: city.Target})
		if len(city.Locations) > 0 {
			locations[city.Name] = city.Locations
		}
	}
	return memory.NewCatalog(targets, locations)
}
