// Package config loads analysis configuration from YAML or JSON files.
package config

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultThreshold is the blocking score used when no configuration or
// flag overrides it.
const DefaultThreshold = 30

// Config customizes an analysis run: the blocking threshold, the output
// format, and which rules are active.
type Config struct {
	// Threshold is the total score at or above which the run is blocked.
	Threshold int `yaml:"threshold" json:"threshold"`

	// Format selects the report renderer: table, json or yaml.
	Format string `yaml:"format" json:"format"`

	// NoDjango disables the Django-migration rules (IDs MS1xx).
	NoDjango bool `yaml:"no_django" json:"no_django"`

	// DisabledRules lists rule IDs excluded from the analysis.
	DisabledRules []string `yaml:"disabled_rules" json:"disabled_rules"`
}

// Default returns the built-in configuration: threshold 30, table output,
// all rules active.
func Default() *Config {
	return &Config{
		Threshold: DefaultThreshold,
		Format:    "table",
	}
}

// LoadFromFile loads configuration from a YAML or JSON file. YAML is
// tried first, then JSON, matching the file conventions of migration
// tooling configs.
func LoadFromFile(filename string) (*Config, error) {
	slog.Debug("loading config from file", "filename", filename)
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", filename)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		slog.Debug("YAML unmarshal failed, trying JSON", "error", err)
		config = Default()
		if err := json.Unmarshal(data, config); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config file: %s", filename)
		}
	}

	if config.Threshold <= 0 {
		config.Threshold = DefaultThreshold
	}
	if config.Format == "" {
		config.Format = "table"
	}

	slog.Debug("loaded config", "threshold", config.Threshold, "disabled_rules", len(config.DisabledRules))
	return config, nil
}
