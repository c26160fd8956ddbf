package application

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultOutputPath is where the dataset is written when nothing overrides it.
const DefaultOutputPath = "real_zes_stations.json"

var validate = validator.New(validator.WithRequiredStructEnabled())

// BoundingBox is the region cities without a base-location table are scattered in.
type BoundingBox struct {
	MinLat float64 `yaml:"min_lat" validate:"gte=-90,lte=90"`
	MaxLat float64 `yaml:"max_lat" validate:"gte=-90,lte=90,gtfield=MinLat"`
	MinLng float64 `yaml:"min_lng" validate:"gte=-180,lte=180"`
	MaxLng float64 `yaml:"max_lng" validate:"gte=-180,lte=180,gtfield=MinLng"`
}

// Contains reports whether the point lies inside the box, edges included.
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// TierWeights are the categorical weights of the HPC, DC and AC power tiers.
type TierWeights struct {
	HPC float64 `yaml:"hpc" validate:"gte=0"`
	DC  float64 `yaml:"dc" validate:"gte=0"`
	AC  float64 `yaml:"ac" validate:"gte=0"`
}

// Slice returns the weights in power tier order.
func (w TierWeights) Slice() []float64 {
	return []float64{w.HPC, w.DC, w.AC}
}

// SummaryConfig controls the printed statistics.
type SummaryConfig struct {
	TopCities  int    `yaml:"top_cities" validate:"gte=0"`
	SampleCity string `yaml:"sample_city"`
	SampleSize int    `yaml:"sample_size" validate:"gte=0"`
}

// ReportsConfig names optional report artifacts. Empty paths disable them.
type ReportsConfig struct {
	XLSXPath    string `yaml:"xlsx_path"`
	PDFPath     string `yaml:"pdf_path"`
	MetricsPath string `yaml:"metrics_path"`
}

// Config defines a generation run.
type Config struct {
	OutputPath  string        `yaml:"output_path" validate:"required"`
	Seed        uint64        `yaml:"seed"`
	CatalogFile string        `yaml:"catalog_file"`
	Jitter      float64       `yaml:"jitter" validate:"gte=0,lt=1"`
	FallbackBox BoundingBox   `yaml:"fallback_box"`
	TierWeights TierWeights   `yaml:"tier_weights"`
	Summary     SummaryConfig `yaml:"summary"`
	Reports     ReportsConfig `yaml:"reports"`
}

// DefaultConfig returns the embedded constants.
func DefaultConfig() Config {
	return Config{
		OutputPath: DefaultOutputPath,
		Jitter:     0.005,
		FallbackBox: BoundingBox{
			MinLat: 37.0,
			MaxLat: 43.0,
			MinLng: 27.0,
			MaxLng: 37.0,
		},
		TierWeights: TierWeights{HPC: 0.3, DC: 0.5, AC: 0.2},
		Summary: SummaryConfig{
			TopCities:  10,
			SampleCity: "İstanbul",
			SampleSize: 15,
		},
	}
}

// LoadConfig loads config from the yaml file named by ZES_CONFIG, then env overrides.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv("ZES_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	cfg.OutputPath = getenvDefault("ZES_OUTPUT", cfg.OutputPath)
	cfg.CatalogFile = getenvDefault("ZES_CATALOG", cfg.CatalogFile)
	cfg.Summary.SampleCity = getenvDefault("ZES_SAMPLE_CITY", cfg.Summary.SampleCity)
	cfg.Reports.XLSXPath = getenvDefault("ZES_REPORT_XLSX", cfg.Reports.XLSXPath)
	cfg.Reports.PDFPath = getenvDefault("ZES_REPORT_PDF", cfg.Reports.PDFPath)
	cfg.Reports.MetricsPath = getenvDefault("ZES_METRICS_FILE", cfg.Reports.MetricsPath)
	if raw := os.Getenv("ZES_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: ZES_SEED=%q", ErrInvalidSeed, raw)
		}
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the config invariants.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := ValidateWeights(c.TierWeights.Slice()); err != nil {
		return fmt.Errorf("%w: tier weights: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ResolveSeed returns the configured seed, or one derived from now when unset.
func (c Config) ResolveSeed(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(now.UnixNano())
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
