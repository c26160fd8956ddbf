package application

import (
	"reflect"
	"testing"

	stations "zes-stations/internal/stations/domain"
)

func station(seq int, name string, tier stations.PowerTier) stations.Station {
	return stations.NewStation(seq, name, "", stations.Coordinates{}, tier, stations.TypeCity)
}

func TestSummarize(t *testing.T) {
	run := stations.Run{
		ID:   "run-1",
		Seed: 9,
		Stations: []stations.Station{
			station(1, "A - D1 - X", stations.TierHPC),
			station(2, "A - D2 - Y", stations.TierAC),
			station(3, "B - Z", stations.TierDC),
			station(4, "C - 1. Şarj İstasyonu", stations.TierDC),
			station(5, "C - 2. Şarj İstasyonu", stations.TierDC),
			station(6, "A - D1 - X 2. İstasyon", stations.TierDC),
			station(7, "D", stations.TierAC),
		},
		Cities: []stations.CityResult{{City: "A", Target: 4}, {City: "B", Target: 1}, {City: "C", Target: 2}},
	}

	summary := Summarize(run, Options{TopCities: 2, SampleCity: "A", SampleSize: 2})

	if summary.Total != 7 || summary.Target != 7 {
		t.Fatalf("unexpected totals: %+v", summary)
	}
	wantCities := []CityCount{{"A", 3}, {"B", 1}, {"C", 2}, {"D", 1}}
	if !reflect.DeepEqual(summary.Cities, wantCities) {
		t.Fatalf("expected %v, got %v", wantCities, summary.Cities)
	}
	wantTop := []CityCount{{"A", 3}, {"C", 2}}
	if !reflect.DeepEqual(summary.Top, wantTop) {
		t.Fatalf("expected %v, got %v", wantTop, summary.Top)
	}
	if !reflect.DeepEqual(summary.Samples, []string{"D1", "D2"}) {
		t.Fatalf("unexpected samples: %v", summary.Samples)
	}
	if summary.ByPower["150 kW"] != 4 || summary.ByType[stations.TypeCity] != 7 {
		t.Fatalf("unexpected breakdown: %v %v", summary.ByPower, summary.ByType)
	}
	if summary.ACSockets != 8+4+6*4+4 || summary.DCSockets != 6+2+4*4+2 {
		t.Fatalf("unexpected sockets: ac=%d dc=%d", summary.ACSockets, summary.DCSockets)
	}
}

func TestTopCitiesKeepsTieOrder(t *testing.T) {
	cities := []CityCount{{"x", 1}, {"y", 5}, {"z", 1}, {"w", 5}}
	got := TopCities(cities, 10)
	want := []CityCount{{"y", 5}, {"w", 5}, {"x", 1}, {"z", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if cities[0].City != "x" {
		t.Fatalf("input was reordered")
	}
}

func TestSampleLabel(t *testing.T) {
	cases := map[string]string{
		"İstanbul - Şişli - Cevahir AVM": "Şişli",
		"Çanakkale - 3. Şarj İstasyonu":  "3. Şarj İstasyonu",
		"Bare":                           "Bare",
	}
	for name, want := range cases {
		if got := SampleLabel(name); got != want {
			t.Fatalf("%q: expected %q, got %q", name, want, got)
		}
	}
}
