package metrics

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	stations "zes-stations/internal/stations/domain"
)

const (
	metricPrefix = "zes_"

	resultSuccess = "success"
	resultError   = "error"
)

// Collector records generation metrics on a registry and optionally flushes them to a
// node-exporter textfile.
type Collector struct {
	gatherer    prometheus.Gatherer
	textfile    string
	registerErr error

	generatedStations *prometheus.CounterVec
	citySockets       *prometheus.CounterVec
	cityShortfall     *prometheus.GaugeVec
	generateTotal     *prometheus.CounterVec
	generateLatency   prometheus.Histogram
	exportTotal       *prometheus.CounterVec
	exportLatency     *prometheus.HistogramVec
}

// New registers generation metrics against reg (the default registerer when nil).
// Flush writes them to textfile when it is not empty.
func New(reg prometheus.Registerer, textfile string) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{
		gatherer: gatherer,
		textfile: textfile,
		generatedStations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "generated_stations_total",
				Help: "Total generated stations by city and placement source",
			},
			[]string{"city", "source"},
		),
		citySockets: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "generated_sockets_total",
				Help: "Total generated sockets by city and current type",
			},
			[]string{"city", "current"},
		),
		cityShortfall: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: metricPrefix + "city_shortfall",
				Help: "Stations below the city target in the last run",
			},
			[]string{"city"},
		),
		generateTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "generate_total",
				Help: "Total generation runs by result",
			},
			[]string{"result"},
		),
		generateLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "generate_duration_seconds",
				Help:    "Generation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		exportTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "export_total",
				Help: "Total report exports by format and result",
			},
			[]string{"format", "result"},
		),
		exportLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "export_duration_seconds",
				Help:    "Report export duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format", "result"},
		),
	}

	for _, collector := range []prometheus.Collector{
		c.generatedStations,
		c.citySockets,
		c.cityShortfall,
		c.generateTotal,
		c.generateLatency,
		c.exportTotal,
		c.exportLatency,
	} {
		if err := reg.Register(collector); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}
	return c, nil
}

// Gatherer returns the gatherer associated with the collector.
func (c *Collector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// CityStarted is a no-op; cities are recorded on completion.
func (c *Collector) CityStarted(context.Context, string, int) {}

// CityCompleted records the generated stations, sockets and shortfall of a city.
func (c *Collector) CityCompleted(_ context.Context, result stations.CityResult) {
	if c == nil {
		return
	}
	source := string(result.Source)
	if source == "" {
		source = "unknown"
	}
	c.generatedStations.WithLabelValues(result.City, source).Add(float64(result.Generated))
	c.citySockets.WithLabelValues(result.City, "dc").Add(float64(result.DCSockets))
	c.citySockets.WithLabelValues(result.City, "ac").Add(float64(result.ACSockets))
	c.cityShortfall.WithLabelValues(result.City).Set(float64(result.Shortfall()))
}

// ObserveGenerate records generation latency and result.
func (c *Collector) ObserveGenerate(result string, duration time.Duration) {
	if c == nil {
		return
	}
	if result == "" {
		result = resultSuccess
	}
	c.generateTotal.WithLabelValues(result).Inc()
	c.generateLatency.Observe(duration.Seconds())
}

// ObserveExport records export latency and result.
func (c *Collector) ObserveExport(format, result string, duration time.Duration) {
	if c == nil {
		return
	}
	if format == "" {
		format = "unknown"
	}
	if result == "" {
		result = resultSuccess
	}
	c.exportTotal.WithLabelValues(format, result).Inc()
	c.exportLatency.WithLabelValues(format, result).Observe(duration.Seconds())
}

// Flush writes the gathered metrics to the textfile. It does nothing without a textfile.
func (c *Collector) Flush() error {
	if c == nil || c.textfile == "" {
		return nil
	}
	if dir := filepath.Dir(c.textfile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("metrics: create dir: %w", err)
		}
	}
	if err := prometheus.WriteToTextfile(c.textfile, c.gatherer); err != nil {
		return fmt.Errorf("metrics: write textfile: %w", err)
	}
	return nil
}

// Exported constants for callers.
const (
	ResultSuccess = resultSuccess
	ResultError   = resultError
)
