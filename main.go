package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"zes-stations/internal/masterdata/infrastructure/memory"
	"zes-stations/internal/masterdata/infrastructure/static"
	"zes-stations/internal/masterdata/infrastructure/yamlfile"
	"zes-stations/internal/observability/metrics"
	reportapp "zes-stations/internal/reporting/application"
	"zes-stations/internal/reporting/interfaces/console"
	"zes-stations/internal/reporting/interfaces/export"
	stationsapp "zes-stations/internal/stations/application"
	"zes-stations/internal/stations/infrastructure/jsonfile"
)

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	cfg, err := stationsapp.LoadConfig()
	if err != nil {
		logger.Fatalf("config error: %v", err)
	}

	catalog, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		logger.Fatalf("catalog error: %v", err)
	}

	seed := cfg.ResolveSeed(time.Now())
	if cfg.Seed == 0 {
		logger.Printf("seed: derived from clock seed=%d", seed)
	}

	collector, err := metrics.New(prometheus.NewRegistry(), cfg.Reports.MetricsPath)
	if err != nil {
		logger.Fatalf("metrics error: %v", err)
	}

	progress := console.NewProgress(os.Stdout)
	generator, err := stationsapp.NewGenerator(catalog, stationsapp.NewRand(seed),
		stationsapp.WithObserver(stationsapp.NewMultiObserver(progress, collector)),
		stationsapp.WithJitter(cfg.Jitter),
		stationsapp.WithFallbackBox(cfg.FallbackBox),
		stationsapp.WithTierWeights(cfg.TierWeights),
	)
	if err != nil {
		logger.Fatalf("generator error: %v", err)
	}

	summaryOpts := reportapp.Options{
		TopCities:  cfg.Summary.TopCities,
		SampleCity: cfg.Summary.SampleCity,
		SampleSize: cfg.Summary.SampleSize,
	}
	exporters, err := buildExporters(cfg.Reports, summaryOpts)
	if err != nil {
		logger.Fatalf("export error: %v", err)
	}

	pipeline, err := stationsapp.NewPipeline(generator, jsonfile.NewStore(), cfg.OutputPath, seed,
		stationsapp.WithReporter(console.NewSummaryReporter(os.Stdout, summaryOpts)),
		stationsapp.WithExporters(exporters...),
		stationsapp.WithRunMetrics(collector),
		stationsapp.WithLogger(logger),
	)
	if err != nil {
		logger.Fatalf("pipeline error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	progress.Banner()
	if _, err := pipeline.Run(ctx); err != nil {
		stop()
		logger.Fatalf("run error: %v", err)
	}
}

func loadCatalog(path string) (*memory.Catalog, error) {
	if path == "" {
		return static.NewDefaultCatalog()
	}
	return yamlfile.LoadCatalog(path)
}

func buildExporters(cfg stationsapp.ReportsConfig, opts reportapp.Options) ([]stationsapp.RunExporter, error) {
	var exporters []stationsapp.RunExporter
	if cfg.XLSXPath != "" {
		exporter, err := export.NewXLSXExporter(cfg.XLSXPath, opts)
		if err != nil {
			return nil, err
		}
		exporters = append(exporters, exporter)
	}
	if cfg.PDFPath != "" {
		exporter, err := export.NewPDFExporter(cfg.PDFPath, opts)
		if err != nil {
			return nil, err
		}
		exporters = append(exporters, exporter)
	}
	return exporters, nil
}
