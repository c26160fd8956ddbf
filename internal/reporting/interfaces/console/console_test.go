package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	reportapp "zes-stations/internal/reporting/application"
	stations "zes-stations/internal/stations/domain"
)

func TestProgressLines(t *testing.T) {
	var out bytes.Buffer
	progress := NewProgress(&out)
	progress.Banner()
	progress.CityStarted(context.Background(), "İzmir", 120)
	progress.CityCompleted(context.Background(), stations.CityResult{City: "İzmir"})

	want := banner + "\n\nİzmir: generating 120 stations...\n"
	if out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}

func TestSummaryReporter(t *testing.T) {
	run := stations.Run{
		ID: "run-1",
		Stations: []stations.Station{
			stations.NewStation(1, "İzmir - Konak - Kordon", "", stations.Coordinates{}, stations.TierAC, stations.TypeCity),
			stations.NewStation(2, "Ankara - Çankaya - Kızılay", "", stations.Coordinates{}, stations.TierAC, stations.TypeCity),
			stations.NewStation(3, "Ankara - Yenimahalle - Batıkent", "", stations.Coordinates{}, stations.TierAC, stations.TypeCity),
			stations.NewStation(4, "İzmir - 2. Şarj İstasyonu", "", stations.Coordinates{}, stations.TierAC, stations.TypeCity),
			stations.NewStation(5, "Bursa - Nilüfer - Görükle", "", stations.Coordinates{}, stations.TierAC, stations.TypeCity),
		},
	}
	var out bytes.Buffer
	reporter := NewSummaryReporter(&out, reportapp.Options{TopCities: 2, SampleCity: "İzmir", SampleSize: 15})
	if err := reporter.Report(context.Background(), run); err != nil {
		t.Fatalf("report: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"Generated and saved 5 stations in total.",
		"CITY DISTRIBUTION:\n  İzmir: 2 stations\n  Ankara: 2 stations\n\n",
		"İZMİR SAMPLES (first 15):\n  - Konak\n  - 2. Şarj İstasyonu\n",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Bursa") {
		t.Fatalf("expected top list limited to 2 cities:\n%s", text)
	}
}
