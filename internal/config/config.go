package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file written by `ducat init`.
const FileName = "ducat.yaml"

// EnvConfigPath names the environment variable (settable via .env)
// that overrides the config file location.
const EnvConfigPath = "DUCAT_CONFIG"

// Config represents the top-level ducat.yaml configuration.
type Config struct {
	Ledger  LedgerConfig  `yaml:"ledger"`
	Imports ImportsConfig `yaml:"imports"`
}

// LedgerConfig identifies the ledger and its report presentation.
type LedgerConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"` // label used in report output, e.g. "ducats"
}

// ImportsConfig controls default import behavior.
type ImportsConfig struct {
	Verbose bool `yaml:"verbose"` // report every skipped record
}

// Load reads a ducat.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger.
func Default(ledgerName string) *Config {
	return &Config{
		Ledger: LedgerConfig{
			Name:     ledgerName,
			Currency: "ducats",
		},
	}
}
