// Package config loads structcall configuration from YAML with environment
// overrides. Configuration only selects among the fixed provider profiles and
// tunes timeouts/logging; it cannot define new invocation profiles.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment overrides, applied after the file is read.
const (
	EnvProvider = "STRUCTCALL_PROVIDER"
	EnvTimeout  = "STRUCTCALL_TIMEOUT"
)

// Config holds all structcall configuration.
type Config struct {
	// Provider is the default provider identifier. Free-form: it is resolved
	// by case-insensitive substring match against the known families.
	Provider string `yaml:"provider"`

	// TimeoutSeconds bounds each CLI invocation (default 300).
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Logging controls diagnostic output.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls the zap logger built by the CLI.
type LoggingConfig struct {
	Verbose bool `yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Provider:       "anthropic",
		TimeoutSeconds: 300,
	}
}

// Load reads the YAML file at path, fills unset fields with defaults and
// applies environment overrides. A missing file is not an error; defaults
// plus environment apply.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	applyEnv(cfg)
	if cfg.Provider == "" {
		cfg.Provider = "anthropic"
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 300
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvProvider); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.TimeoutSeconds = secs
		}
	}
}
