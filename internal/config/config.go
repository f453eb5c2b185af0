package config

import (
	"embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/akeane/grantsheet/internal/parse"
	"github.com/akeane/grantsheet/internal/scrape"
)

//go:embed default.yaml
var defaultYAML embed.FS

// Config is the whole application configuration: the parsing reference
// date and exchange rates, plus the scraper's source registry.
type Config struct {
	// ReferenceDate anchors deadline status windows. Empty means "today".
	ReferenceDate string `yaml:"reference_date,omitempty"`

	// Rates maps currency code to AUD conversion multiplier. AUD is
	// always forced to 1.0.
	Rates map[string]float64 `yaml:"exchange_rates"`

	Sources []scrape.SourceConfig `yaml:"sources,omitempty"`
}

// Load reads configuration from path, falling back to the embedded
// default when the path is empty or missing. Environment variables in
// the YAML (e.g. ${API_KEY}) are expanded.
func Load(path string) (*Config, error) {
	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
	}
	if path == "" || err != nil {
		data, err = defaultYAML.ReadFile("default.yaml")
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded config: %w", err)
		}
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// RateTable builds the engine's rate table from the configured rates.
// An empty rates map falls back to the built-in defaults.
func (c *Config) RateTable() parse.RateTable {
	if len(c.Rates) == 0 {
		return parse.DefaultRateTable()
	}
	rates := make(map[parse.Currency]float64, len(c.Rates))
	for code, rate := range c.Rates {
		rates[parse.Currency(code)] = rate
	}
	return parse.NewRateTable(rates)
}

// ParsedReferenceDate resolves the configured reference date, using the
// current day when none is set.
func (c *Config) ParsedReferenceDate() (time.Time, error) {
	if c.ReferenceDate == "" {
		return time.Now(), nil
	}
	ref, err := time.Parse("2006-01-02", c.ReferenceDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reference_date %q: %w", c.ReferenceDate, err)
	}
	return ref, nil
}
