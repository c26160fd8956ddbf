package memory

import (
	"fmt"

	masterdata "zes-stations/internal/masterdata/domain"
)

// Catalog is an immutable in-memory catalog built once at start.
type Catalog struct {
	targets   []masterdata.CityTarget
	locations map[string][]masterdata.BaseLocation
}

// NewCatalog validates and copies the given tables. Locations are keyed by city name and
// every key must appear in targets.
func NewCatalog(targets []masterdata.CityTarget, locations map[string][]masterdata.BaseLocation) (*Catalog, error) {
	c := &Catalog{
		targets:   make([]masterdata.CityTarget, 0, len(targets)),
		locations: make(map[string][]masterdata.BaseLocation, len(locations)),
	}

	seen := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		if err := target.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[target.Name]; ok {
			return nil, fmt.Errorf("%w: %s", masterdata.ErrDuplicateCity, target.Name)
		}
		seen[target.Name] = struct{}{}
		c.targets = append(c.targets, target)
	}

	for city, list := range locations {
		if _, ok := seen[city]; !ok {
			return nil, fmt.Errorf("%w: %s", masterdata.ErrUnknownCity, city)
		}
		if len(list) == 0 {
			continue
		}
		copied := make([]masterdata.BaseLocation, 0, len(list))
		for _, loc := range list {
			loc.City = city
			if err := loc.Validate(); err != nil {
				return nil, err
			}
			copied = append(copied, loc)
		}
		c.locations[city] = copied
	}
	return c, nil
}

// Targets returns a copy of the target table in definition order.
func (c *Catalog) Targets() []masterdata.CityTarget {
	result := make([]masterdata.CityTarget, len(c.targets))
	copy(result, c.targets)
	return result
}

// Locations returns a copy of the city's base locations.
func (c *Catalog) Locations(city string) []masterdata.BaseLocation {
	list, ok := c.locations[city]
	if !ok {
		return nil
	}
	result := make([]masterdata.BaseLocation, len(list))
	copy(result, list)
	return result
}

// LocationCount returns the number of base locations for the city.
func (c *Catalog) LocationCount(city string) int {
	return len(c.locations[city])
}
