package application

import (
	"context"
	"math/rand/v2"

	masterdata "zes-stations/internal/masterdata/domain"
	stations "zes-stations/internal/stations/domain"
)

// CityObserver is told when the generator starts and finishes a city.
type CityObserver interface {
	CityStarted(ctx context.Context, city string, target int)
	CityCompleted(ctx context.Context, result stations.CityResult)
}

// MultiObserver forwards city events to several observers.
type MultiObserver struct {
	observers []CityObserver
}

// NewMultiObserver constructs a MultiObserver.
func NewMultiObserver(observers ...CityObserver) *MultiObserver {
	return &MultiObserver{observers: observers}
}

// CityStarted forwards to all observers.
func (m *MultiObserver) CityStarted(ctx context.Context, city string, target int) {
	if m == nil {
		return
	}
	for _, o := range m.observers {
		if o != nil {
			o.CityStarted(ctx, city, target)
		}
	}
}

// CityCompleted forwards to all observers.
func (m *MultiObserver) CityCompleted(ctx context.Context, result stations.CityResult) {
	if m == nil {
		return
	}
	for _, o := range m.observers {
		if o != nil {
			o.CityCompleted(ctx, result)
		}
	}
}

// Generator expands the catalog into station records.
type Generator struct {
	catalog  masterdata.Catalog
	rng      *rand.Rand
	jitter   float64
	box      BoundingBox
	weights  []float64
	observer CityObserver
}

// GeneratorOption configures the generator.
type GeneratorOption func(*Generator)

// WithObserver sets the city observer.
func WithObserver(observer CityObserver) GeneratorOption {
	return func(g *Generator) {
		g.observer = observer
	}
}

// WithJitter overrides the coordinate jitter in degrees.
func WithJitter(jitter float64) GeneratorOption {
	return func(g *Generator) {
		if jitter >= 0 {
			g.jitter = jitter
		}
	}
}

// WithFallbackBox overrides the region used for cities without a table.
func WithFallbackBox(box BoundingBox) GeneratorOption {
	return func(g *Generator) {
		g.box = box
	}
}

// WithTierWeights overrides the power tier weights.
func WithTierWeights(weights TierWeights) GeneratorOption {
	return func(g *Generator) {
		g.weights = weights.Slice()
	}
}

// NewGenerator constructs a generator with the default constants.
func NewGenerator(catalog masterdata.Catalog, rng *rand.Rand, opts ...GeneratorOption) (*Generator, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	defaults := DefaultConfig()
	g := &Generator{
		catalog: catalog,
		rng:     rng,
		jitter:  defaults.Jitter,
		box:     defaults.FallbackBox,
		weights: defaults.TierWeights.Slice(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := ValidateWeights(g.weights); err != nil {
		return nil, err
	}
	if len(g.weights) != len(stations.PowerTiers) {
		return nil, ErrNoWeights
	}
	if err := validate.Struct(g.box); err != nil {
		return nil, err
	}
	return g, nil
}

// Generate walks the target table in order and returns the generated stations together
// with the per-city outcome. Identifiers are assigned sequentially from ZES0001.
func (g *Generator) Generate(ctx context.Context) ([]stations.Station, []stations.CityResult, error) {
	targets := g.catalog.Targets()
	records := make([]stations.Station, 0, totalTarget(targets))
	results := make([]stations.CityResult, 0, len(targets))
	seq := 0

	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		if g.observer != nil {
			g.observer.CityStarted(ctx, target.Name, target.Target)
		}

		var (
			batch []stations.Station
			err   error
		)
		locations := g.catalog.Locations(target.Name)
		result := stations.CityResult{City: target.Name, Target: target.Target, Locations: len(locations)}
		if len(locations) > 0 {
			result.Source = stations.SourceDetailed
			batch, err = g.expandLocations(target, locations, &seq)
		} else {
			result.Source = stations.SourceFallback
			batch, err = g.scatter(target, &seq)
		}
		if err != nil {
			return nil, nil, err
		}

		for _, st := range batch {
			result.ACSockets += st.ACSockets
			result.DCSockets += st.DCSockets
		}
		result.Generated = len(batch)
		records = append(records, batch...)
		results = append(results, result)
		if g.observer != nil {
			g.observer.CityCompleted(ctx, result)
		}
	}
	return records, results, nil
}

// expandLocations emits max(1, target/len(locations)) copies per base location and stops
// once the city's counter reaches the target. The integer-division remainder is dropped.
func (g *Generator) expandLocations(target masterdata.CityTarget, locations []masterdata.BaseLocation, seq *int) ([]stations.Station, error) {
	perLocation := max(1, target.Target/len(locations))
	batch := make([]stations.Station, 0, min(target.Target, perLocation*len(locations)))
	count := 0

	for _, loc := range locations {
		for copyNo := 1; copyNo <= perLocation && count < target.Target; copyNo++ {
			tierIdx, err := WeightedChoice(g.rng, g.weights)
			if err != nil {
				return nil, err
			}
			coords := stations.Coordinates{
				Lat: RoundCoordinate(loc.Latitude + Uniform(g.rng, -g.jitter, g.jitter)),
				Lng: RoundCoordinate(loc.Longitude + Uniform(g.rng, -g.jitter, g.jitter)),
			}
			stationType := stations.StationTypes[UniformChoice(g.rng, len(stations.StationTypes))]
			locationName := stations.LocationName(loc.Name, copyNo)

			*seq++
			batch = append(batch, stations.NewStation(
				*seq,
				stations.ComposeName(target.Name, loc.District, locationName),
				stations.ComposeAddress(target.Name, loc.District, locationName),
				coords,
				stations.PowerTiers[tierIdx],
				stationType,
			))
			count++
		}
		if count >= target.Target {
			break
		}
	}
	return batch, nil
}

// scatter emits exactly target stations with coordinates uniform in the fallback box.
func (g *Generator) scatter(target masterdata.CityTarget, seq *int) ([]stations.Station, error) {
	batch := make([]stations.Station, 0, target.Target)
	for n := 1; n <= target.Target; n++ {
		coords := stations.Coordinates{
			Lat: RoundCoordinate(Uniform(g.rng, g.box.MinLat, g.box.MaxLat)),
			Lng: RoundCoordinate(Uniform(g.rng, g.box.MinLng, g.box.MaxLng)),
		}
		tier := stations.PowerTiers[UniformChoice(g.rng, len(stations.PowerTiers))]

		*seq++
		batch = append(batch, stations.NewStation(
			*seq,
			stations.FallbackName(target.Name, n),
			stations.FallbackAddress(target.Name),
			coords,
			tier,
			stations.TypeCity,
		))
	}
	return batch, nil
}

func totalTarget(targets []masterdata.CityTarget) int {
	total := 0
	for _, t := range targets {
		total += t.Target
	}
	return total
}
