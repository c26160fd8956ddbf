// Package static embeds the 2025 city distribution and the per-city base-location tables.
package static

import "zes-stations/internal/masterdata/infrastructure/memory"

// DefaultSampleCity is the city listed in the run summary sample.
const DefaultSampleCity = "İstanbul"

// NewDefaultCatalog builds the catalog from the embedded tables.
func NewDefaultCatalog() (*memory.Catalog, error) {
	return memory.NewCatalog(distribution2025, detailedLocations)
}
