package application

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ZES_CONFIG", "ZES_OUTPUT", "ZES_SEED", "ZES_SAMPLE_CITY", "ZES_CATALOG",
		"ZES_REPORT_XLSX", "ZES_REPORT_PDF", "ZES_METRICS_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.OutputPath != DefaultOutputPath {
		t.Fatalf("expected %s, got %s", DefaultOutputPath, cfg.OutputPath)
	}
	if cfg.Jitter != 0.005 || cfg.Seed != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Summary.TopCities != 10 || cfg.Summary.SampleSize != 15 || cfg.Summary.SampleCity != "İstanbul" {
		t.Fatalf("unexpected summary defaults: %+v", cfg.Summary)
	}
	if cfg.Reports != (ReportsConfig{}) {
		t.Fatalf("expected reports disabled, got %+v", cfg.Reports)
	}
}

func TestLoadConfigFileAndEnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "zes.yaml")
	content := []byte(`output_path: from-file.json
seed: 12
jitter: 0.01
tier_weights: {hpc: 1, dc: 0, ac: 0}
summary: {top_cities: 5, sample_city: Ankara, sample_size: 3}
reports: {xlsx_path: report.xlsx}
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ZES_CONFIG", path)
	t.Setenv("ZES_OUTPUT", "from-env.json")
	t.Setenv("ZES_SEED", "34")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.OutputPath != "from-env.json" || cfg.Seed != 34 {
		t.Fatalf("env did not override file: %+v", cfg)
	}
	if cfg.Jitter != 0.01 || cfg.TierWeights.HPC != 1 || cfg.Summary.SampleCity != "Ankara" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Reports.XLSXPath != "report.xlsx" {
		t.Fatalf("expected xlsx path from file, got %q", cfg.Reports.XLSXPath)
	}
	if cfg.FallbackBox != DefaultConfig().FallbackBox {
		t.Fatalf("expected default box to survive partial file, got %+v", cfg.FallbackBox)
	}
}

func TestLoadConfigRejectsBadSeed(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ZES_SEED", "-1")

	if _, err := LoadConfig(); !errors.Is(err, ErrInvalidSeed) {
		t.Fatalf("expected ErrInvalidSeed, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty output", mutate: func(c *Config) { c.OutputPath = "" }},
		{name: "negative jitter", mutate: func(c *Config) { c.Jitter = -0.1 }},
		{name: "inverted box", mutate: func(c *Config) { c.FallbackBox.MaxLat = 30 }},
		{name: "zero weights", mutate: func(c *Config) { c.TierWeights = TierWeights{} }},
		{name: "negative top", mutate: func(c *Config) { c.Summary.TopCities = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestResolveSeed(t *testing.T) {
	now := time.Unix(0, 123456789)
	if got := (Config{Seed: 5}).ResolveSeed(now); got != 5 {
		t.Fatalf("expected configured seed, got %d", got)
	}
	if got := (Config{}).ResolveSeed(now); got != 123456789 {
		t.Fatalf("expected clock seed, got %d", got)
	}
}
