package application

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	stations "zes-stations/internal/stations/domain"
)

// DatasetWriter persists the generated records.
type DatasetWriter interface {
	WriteStations(ctx context.Context, path string, records []stations.Station) error
}

// RunReporter presents a finished run, e.g. on the console.
type RunReporter interface {
	Report(ctx context.Context, run stations.Run) error
}

// RunExporter writes an optional artifact describing a run.
type RunExporter interface {
	Format() string
	Export(ctx context.Context, run stations.Run) error
}

// RunMetrics records run timings and flushes them at the end of the run.
type RunMetrics interface {
	ObserveGenerate(result string, duration time.Duration)
	ObserveExport(format, result string, duration time.Duration)
	Flush() error
}

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock uses time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

const (
	resultSuccess = "success"
	resultError   = "error"
)

// Pipeline runs generate, write, report and export in that order.
type Pipeline struct {
	generator  *Generator
	writer     DatasetWriter
	outputPath string
	seed       uint64
	reporter   RunReporter
	exporters  []RunExporter
	metrics    RunMetrics
	logger     *log.Logger
	clock      Clock
}

// PipelineOption configures the pipeline.
type PipelineOption func(*Pipeline)

// WithReporter sets the run reporter.
func WithReporter(reporter RunReporter) PipelineOption {
	return func(p *Pipeline) {
		p.reporter = reporter
	}
}

// WithExporters appends optional exporters.
func WithExporters(exporters ...RunExporter) PipelineOption {
	return func(p *Pipeline) {
		for _, exporter := range exporters {
			if exporter != nil {
				p.exporters = append(p.exporters, exporter)
			}
		}
	}
}

// WithRunMetrics sets the metrics sink.
func WithRunMetrics(metrics RunMetrics) PipelineOption {
	return func(p *Pipeline) {
		p.metrics = metrics
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) PipelineOption {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithClock sets the clock.
func WithClock(clock Clock) PipelineOption {
	return func(p *Pipeline) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// NewPipeline constructs the run pipeline.
func NewPipeline(generator *Generator, writer DatasetWriter, outputPath string, seed uint64, opts ...PipelineOption) (*Pipeline, error) {
	if generator == nil {
		return nil, ErrNilGenerator
	}
	if writer == nil {
		return nil, ErrNilWriter
	}
	if outputPath == "" {
		outputPath = DefaultOutputPath
	}
	p := &Pipeline{
		generator:  generator,
		writer:     writer,
		outputPath: outputPath,
		seed:       seed,
		logger:     log.Default(),
		clock:      SystemClock{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run executes one generation run. The dataset is written before anything is reported;
// exporters run concurrently afterwards and metrics are flushed last.
func (p *Pipeline) Run(ctx context.Context) (stations.Run, error) {
	run := stations.Run{
		ID:         uuid.NewString(),
		Seed:       p.seed,
		StartedAt:  p.clock.Now(),
		OutputPath: p.outputPath,
	}
	p.logger.Printf("run %s: start seed=%d output=%s", run.ID, run.Seed, run.OutputPath)

	records, results, err := p.generator.Generate(ctx)
	run.Duration = p.clock.Now().Sub(run.StartedAt)
	p.observeGenerate(err, run.Duration)
	if err != nil {
		p.flush(run.ID)
		return run, err
	}
	run.Stations = records
	run.Cities = results
	for _, city := range results {
		if city.Shortfall() > 0 {
			p.logger.Printf("run %s: city=%s target=%d generated=%d shortfall=%d", run.ID, city.City, city.Target, city.Generated, city.Shortfall())
		}
	}

	if err := p.writer.WriteStations(ctx, run.OutputPath, run.Stations); err != nil {
		p.flush(run.ID)
		return run, err
	}
	p.logger.Printf("run %s: wrote %d stations to %s in %s", run.ID, len(run.Stations), run.OutputPath, run.Duration)

	if p.reporter != nil {
		if err := p.reporter.Report(ctx, run); err != nil {
			p.flush(run.ID)
			return run, err
		}
	}

	err = p.export(ctx, run)
	p.flush(run.ID)
	return run, err
}

func (p *Pipeline) export(ctx context.Context, run stations.Run) error {
	if len(p.exporters) == 0 {
		return nil
	}
	group, groupCtx := errgroup.WithContext(ctx)
	for _, exporter := range p.exporters {
		group.Go(func() error {
			start := p.clock.Now()
			err := exporter.Export(groupCtx, run)
			result := resultSuccess
			if err != nil {
				result = resultError
				p.logger.Printf("run %s: export format=%s error: %v", run.ID, exporter.Format(), err)
			} else {
				p.logger.Printf("run %s: export format=%s done", run.ID, exporter.Format())
			}
			if p.metrics != nil {
				p.metrics.ObserveExport(exporter.Format(), result, p.clock.Now().Sub(start))
			}
			return err
		})
	}
	return group.Wait()
}

func (p *Pipeline) observeGenerate(err error, duration time.Duration) {
	if p.metrics == nil {
		return
	}
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	p.metrics.ObserveGenerate(result, duration)
}

func (p *Pipeline) flush(runID string) {
	if p.metrics == nil {
		return
	}
	if err := p.metrics.Flush(); err != nil {
		p.logger.Printf("run %s: metrics flush error: %v", runID, err)
	}
}
