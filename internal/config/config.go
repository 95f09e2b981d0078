package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Scenario struct {
		Path string `yaml:"path"`
	} `yaml:"scenario"`
	Journal struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"journal"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Presentation struct {
		Deterministic bool `yaml:"deterministic"`
	} `yaml:"presentation"`
}

// Load reads config from a YAML file, then applies .env and environment
// variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// .env never overrides variables that are already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("parse .env: %w", err)
	}

	// Environment variable overrides
	if v := os.Getenv("SIM_SCENARIO_PATH"); v != "" {
		cfg.Scenario.Path = v
	}
	if v := os.Getenv("SIM_JOURNAL_PATH"); v != "" {
		cfg.Journal.SQLitePath = v
	}
	if v := os.Getenv("SIM_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SIM_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("SIM_DETERMINISTIC"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("SIM_DETERMINISTIC %q is not a boolean: %w", v, err)
		}
		cfg.Presentation.Deterministic = b
	}

	// Defaults
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "pretty"
	}

	return cfg, nil
}

// Validate checks that enumerated fields hold known values.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error, disabled", c.Log.Level)
	}
	switch c.Log.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("log.format %q is not one of pretty, json", c.Log.Format)
	}
	return nil
}
