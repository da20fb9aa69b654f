package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/gdrcalc/internal/game/cost"
)

// Calculator holds all configuration for the gdrcalc CLI.
type Calculator struct {
	LogLevel string `yaml:"log_level"` // debug | info | warn | error

	// CatalogPath points to a YAML catalog that replaces the built-in tables.
	// Empty means built-in.
	CatalogPath string `yaml:"catalog_path"`

	Currency cost.Config `yaml:"currency"`
	Export   Export      `yaml:"export"`
}

// Export holds price sheet export settings.
type Export struct {
	SheetName string `yaml:"sheet_name"`
	StatsName string `yaml:"stats_sheet_name"`
	Workers   int    `yaml:"workers"` // concurrent material rows, <= 0 means one per CPU
}

// DefaultCalculator returns Calculator config with sensible defaults.
func DefaultCalculator() Calculator {
	return Calculator{
		LogLevel: "info",
		Currency: cost.DefaultConfig(),
		Export: Export{
			SheetName: "Listino",
			StatsName: "Statistiche",
		},
	}
}

// LoadCalculator loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadCalculator(path string) (Calculator, error) {
	cfg := DefaultCalculator()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that yaml cannot check by type.
func (c Calculator) Validate() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if c.Currency.MinorPerMajor < 2 {
		return fmt.Errorf("currency.minor_per_major must be >= 2, got %d", c.Currency.MinorPerMajor)
	}
	if strings.TrimSpace(c.Currency.Conjunction) == "" {
		return fmt.Errorf("currency.conjunction must not be empty")
	}
	if c.Export.SheetName == "" || c.Export.StatsName == "" {
		return fmt.Errorf("export sheet names must not be empty")
	}
	if c.Export.SheetName == c.Export.StatsName {
		return fmt.Errorf("export sheet names must differ, both are %q", c.Export.SheetName)
	}
	return nil
}
