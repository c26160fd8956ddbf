package application

import (
	"sort"

	stations "zes-stations/internal/stations/domain"
)

// CityCount is the number of generated stations of a city.
type CityCount struct {
	City  string
	Count int
}

// Summary is the statistics printed and exported after a run.
type Summary struct {
	RunID      string
	Seed       uint64
	Total      int
	Target     int
	ACSockets  int
	DCSockets  int
	ByPower    map[string]int
	ByType     map[stations.StationType]int
	Cities     []CityCount
	Top        []CityCount
	SampleCity string
	Samples    []string
}

// Options controls the summary selection.
type Options struct {
	TopCities  int
	SampleCity string
	SampleSize int
}

// Summarize computes distribution statistics of a run. Cities are counted by the first
// name segment and listed in first-appearance order; Top orders them by count descending
// with ties kept in first-appearance order.
func Summarize(run stations.Run, opts Options) Summary {
	summary := Summary{
		RunID:      run.ID,
		Seed:       run.Seed,
		Total:      len(run.Stations),
		ByPower:    make(map[string]int),
		ByType:     make(map[stations.StationType]int),
		SampleCity: opts.SampleCity,
	}
	for _, city := range run.Cities {
		summary.Target += city.Target
	}

	index := make(map[string]int)
	for _, st := range run.Stations {
		summary.ACSockets += st.ACSockets
		summary.DCSockets += st.DCSockets
		summary.ByPower[st.Power]++
		summary.ByType[st.Type]++

		city := st.City()
		i, ok := index[city]
		if !ok {
			i = len(summary.Cities)
			index[city] = i
			summary.Cities = append(summary.Cities, CityCount{City: city})
		}
		summary.Cities[i].Count++

		if city == opts.SampleCity && len(summary.Samples) < opts.SampleSize {
			summary.Samples = append(summary.Samples, SampleLabel(st.Name))
		}
	}

	summary.Top = TopCities(summary.Cities, opts.TopCities)
	return summary
}

// TopCities returns the n largest cities, ties in input order.
func TopCities(cities []CityCount, n int) []CityCount {
	sorted := make([]CityCount, len(cities))
	copy(sorted, cities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// SampleLabel is the second name segment, or the whole name when there is none.
func SampleLabel(name string) string {
	if segment, ok := stations.NameSegment(name, 1); ok {
		return segment
	}
	return name
}
