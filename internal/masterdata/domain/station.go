package masterdata

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// BaseLocation is a named, geocoded point used as a template for generated stations.
type BaseLocation struct {
	City      string  `yaml:"-" validate:"required"`
	Name      string  `yaml:"name" validate:"required"`
	Latitude  float64 `yaml:"lat" validate:"gte=-90,lte=90"`
	Longitude float64 `yaml:"lng" validate:"gte=-180,lte=180"`
	District  string  `yaml:"district,omitempty"`
}

// Validate checks location invariants.
func (l BaseLocation) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return ErrEmptyLocationName
	}
	if err := validate.Struct(l); err != nil {
		return fmt.Errorf("%w: %s/%s: %v", ErrInvalidLocation, l.City, l.Name, err)
	}
	return nil
}

// HasDistrict reports whether the location carries a district label.
func (l BaseLocation) HasDistrict() bool {
	return l.District != ""
}

// CityTarget is the number of stations requested for a city.
type CityTarget struct {
	Name   string `yaml:"name" validate:"required"`
	Target int    `yaml:"target" validate:"gte=0"`
}

// Validate checks target invariants.
func (t CityTarget) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyCityName
	}
	if t.Target < 0 {
		return fmt.Errorf("%w: %s=%d", ErrNegativeTarget, t.Name, t.Target)
	}
	return validate.Struct(t)
}

// Catalog exposes the immutable lookup tables the generator iterates.
type Catalog interface {
	// Targets returns the city targets in table-definition order.
	Targets() []CityTarget
	// Locations returns the base locations of a city, or nil when the city has no table.
	Locations(city string) []BaseLocation
}
