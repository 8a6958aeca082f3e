// Package config loads the listingscan CLI's runtime configuration: which
// reference-table overrides to merge in, which feature flags are active,
// how many workers to run, where to persist parsed listings, and how to
// log (SPEC_FULL.md §4.17).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/theatomus/listingscanner/internal/logging"
	"gopkg.in/yaml.v3"
)

// Config holds all listingscan configuration.
type Config struct {
	ReferenceTables ReferenceTablesConfig `yaml:"reference_tables"`
	Features        FeaturesConfig        `yaml:"features"`
	Workers         WorkersConfig         `yaml:"workers"`
	Store           StoreConfig           `yaml:"store"`
	Logging         LoggingConfig         `yaml:"logging"`
}

// ReferenceTablesConfig points at an optional override file merged over the
// built-in reftables literals.
type ReferenceTablesConfig struct {
	OverridePath string `yaml:"override_path"`
}

// FeaturesConfig toggles optional classifier behavior.
type FeaturesConfig struct {
	// EnableTonerCartridges mirrors the distilled spec's feature-flagged-off
	// toner-cartridge classifier step; off by default since it is a rarely
	// used device-type bucket prone to false positives against printers.
	EnableTonerCartridges bool `yaml:"enable_toner_cartridges"`
}

// WorkersConfig sizes the CLI's parallel scan dispatch.
type WorkersConfig struct {
	// Count is the worker-pool size for `listingscan scan`. 0 means
	// runtime.NumCPU().
	Count int `yaml:"count"`
}

// StoreConfig configures the SQLite persistence layer.
type StoreConfig struct {
	DSN string `yaml:"dsn"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	DebugMode  bool     `yaml:"debug_mode"`
	Categories []string `yaml:"categories"`
	Level      string   `yaml:"level"`
	JSONFormat bool     `yaml:"json_format"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ReferenceTables: ReferenceTablesConfig{OverridePath: ""},
		Features:        FeaturesConfig{EnableTonerCartridges: false},
		Workers:         WorkersConfig{Count: 0},
		Store:           StoreConfig{DSN: "file:listingscan.db"},
		Logging: LoggingConfig{
			DebugMode:  false,
			Categories: []string{"tokenizer", "context", "extract", "classify", "brand", "postprocess", "store", "cli"},
			Level:      "info",
			JSONFormat: false,
		},
	}
}

// WorkerCount resolves Workers.Count to a concrete goroutine-pool size.
func (c *Config) WorkerCount() int {
	if c.Workers.Count > 0 {
		return c.Workers.Count
	}
	return runtime.NumCPU()
}

// Load loads configuration from a YAML file, falling back to defaults when
// the file does not exist, then applies LISTINGSCAN_* environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	logging.BootDebug("loading config from: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Boot("config file not found, using defaults: %s", path)
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		logging.BootError("failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		logging.BootError("failed to parse config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	logging.Boot("config loaded: dsn=%s workers=%d", cfg.Store.DSN, cfg.WorkerCount())
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies LISTINGSCAN_* environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("LISTINGSCAN_STORE_DSN"); v != "" {
		c.Store.DSN = v
	}
	if v := os.Getenv("LISTINGSCAN_WORKERS"); v != "" {
		if n := atoiOrZero(v); n > 0 {
			c.Workers.Count = n
		}
	}
	if v := os.Getenv("LISTINGSCAN_REFERENCE_OVERRIDE"); v != "" {
		c.ReferenceTables.OverridePath = v
	}
	if v := os.Getenv("LISTINGSCAN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LISTINGSCAN_DEBUG"); v == "1" || v == "true" {
		c.Logging.DebugMode = true
	}
	if v := os.Getenv("LISTINGSCAN_ENABLE_TONER"); v == "1" || v == "true" {
		c.Features.EnableTonerCartridges = true
	}
}

func atoiOrZero(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
