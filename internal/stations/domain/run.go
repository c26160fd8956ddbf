package stations

import "time"

// Source tells how a city's stations were placed.
type Source string

const (
	// SourceDetailed means stations were expanded from the city's base-location table.
	SourceDetailed Source = "detailed"
	// SourceFallback means stations were scattered inside the fallback bounding box.
	SourceFallback Source = "fallback"
)

// CityResult is the outcome of generating one city.
type CityResult struct {
	City      string
	Target    int
	Generated int
	Locations int
	Source    Source
	ACSockets int
	DCSockets int
}

// Shortfall is how many stations the city is below its target.
func (r CityResult) Shortfall() int {
	if r.Generated >= r.Target {
		return 0
	}
	return r.Target - r.Generated
}

// Run describes one generation run and its output.
type Run struct {
	ID         string
	Seed       uint64
	StartedAt  time.Time
	Duration   time.Duration
	OutputPath string
	Stations   []Station
	Cities     []CityResult
}

// NewStation assembles a record whose sockets follow the power tier.
func NewStation(seq int, name, address string, coords Coordinates, tier PowerTier, stationType StationType) Station {
	return Station{
		ID:          FormatID(seq),
		Name:        name,
		Address:     address,
		Coordinates: coords,
		DCSockets:   tier.DCSockets(),
		ACSockets:   tier.ACSockets(),
		Power:       tier.Label(),
		Status:      StatusActive,
		Type:        stationType,
	}
}
