// Package config loads the optional poline configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment overrides. TEMPLATES_DIR is read by the template search
// path, not here.
const (
	EnvOutputDir = "POLINE_OUTPUT_DIR"
	EnvLookup    = "POLINE_LOOKUP"
)

// DefaultFile is the config file looked up in the user config directory.
const DefaultFile = "poline/config.yaml"

// Config is the poline configuration.
type Config struct {
	TemplatesDir    string       `yaml:"templates_dir,omitempty"`
	OutputDir       string       `yaml:"output_dir,omitempty"`
	FilenamePattern string       `yaml:"filename_pattern,omitempty"`
	Currency        string       `yaml:"currency,omitempty"`
	ReceiptLeadDays int          `yaml:"receipt_lead_days,omitempty"`
	Lookup          LookupConfig `yaml:"lookup,omitempty"`
	Log             LogConfig    `yaml:"log,omitempty"`
}

// LookupConfig controls the bibliographic pre-fill.
type LookupConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`
	Timeout string `yaml:"timeout,omitempty"` // e.g., "10s"
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// DefaultPath returns the per-user config file path, empty when the user
// config directory cannot be resolved.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, DefaultFile)
}

// Load reads path, applies defaults and then environment overrides. A
// missing file is not an error unless explicit is set.
func Load(path string, explicit bool) (*Config, error) {
	cfg := &Config{}
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if _, err := cfg.LookupTimeout(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills in missing configuration values.
func (c *Config) applyDefaults() {
	if c.Currency == "" {
		c.Currency = "USD"
	}
	if c.ReceiptLeadDays == 0 {
		c.ReceiptLeadDays = 30
	}
	if c.Lookup.Enabled == nil {
		enabled := true
		c.Lookup.Enabled = &enabled
	}
	if c.Lookup.Timeout == "" {
		c.Lookup.Timeout = "10s"
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

func (c *Config) applyEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvOutputDir); ok && strings.TrimSpace(v) != "" {
		c.OutputDir = strings.TrimSpace(v)
	}
	if v, ok := lookupEnv(EnvLookup); ok && strings.TrimSpace(v) != "" {
		enabled, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvLookup, err)
		}
		c.Lookup.Enabled = &enabled
	}
	return nil
}

// LookupEnabled reports whether the metadata lookup should be offered.
func (c *Config) LookupEnabled() bool {
	return c.Lookup.Enabled == nil || *c.Lookup.Enabled
}

// LookupTimeout parses the lookup timeout.
func (c *Config) LookupTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Lookup.Timeout)
	if err != nil {
		return 0, fmt.Errorf("config: lookup.timeout: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: lookup.timeout must be positive, got %s", c.Lookup.Timeout)
	}
	return d, nil
}
