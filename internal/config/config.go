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

	"primefinder/internal/primes"
)

// DefaultPath is where the CLI looks for a config file when --config is not given.
const DefaultPath = "primes.yaml"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all primefinder configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Enumeration method used by the demo and list commands (sieve, trial)
	Method string `yaml:"method"`

	// Demo sections, printed in order
	Sections []SectionConfig `yaml:"sections"`

	// Row layout
	Format FormatConfig `yaml:"format"`

	// Input limits
	Limits LimitsConfig `yaml:"limits"`

	// Agreement sweep
	Verify VerifyConfig `yaml:"verify"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// SectionConfig is one block of the demo output.
type SectionConfig struct {
	Bound int    `yaml:"bound"`
	Title string `yaml:"title,omitempty"` // empty = derived from bound
}

// FormatConfig configures row rendering.
type FormatConfig struct {
	Columns int `yaml:"columns"` // entries per row (default: 10)
	Width   int `yaml:"width"`   // field width (default: 3)
}

// VerifyConfig configures the agreement sweep.
type VerifyConfig struct {
	From    int    `yaml:"from"`
	To      int    `yaml:"to"`
	Workers int    `yaml:"workers"`
	Timeout string `yaml:"timeout"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "primefinder",
		Version: "1.0.0",
		Method:  string(primes.MethodSieve),

		Sections: []SectionConfig{
			{Bound: 100},
			{Bound: 50},
		},

		Format: FormatConfig{
			Columns: 10,
			Width:   3,
		},

		Limits: LimitsConfig{
			MaxBound: 10000000,
		},

		Verify: VerifyConfig{
			From:    0,
			To:      1000,
			Workers: 4,
			Timeout: "30s",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Defaults if config file doesn't exist
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
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

// YAML returns the configuration as YAML text.
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// applyEnvOverrides applies environment variable overrides.
// Unparseable numbers are ignored.
func (c *Config) applyEnvOverrides() {
	if m := os.Getenv("PRIMES_METHOD"); m != "" {
		c.Method = m
	}
	if v := os.Getenv("PRIMES_COLUMNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Format.Columns = n
		}
	}
	if v := os.Getenv("PRIMES_MAX_BOUND"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Limits.MaxBound = n
		}
	}
	if lvl := os.Getenv("PRIMES_LOG_LEVEL"); lvl != "" {
		c.Logging.Level = lvl
	}
}

// GetMethod returns the configured enumeration method.
func (c *Config) GetMethod() (primes.Method, error) {
	return primes.ParseMethod(c.Method)
}

// GetVerifyTimeout returns the verify timeout as a duration.
func (c *Config) GetVerifyTimeout() time.Duration {
	d, err := time.ParseDuration(c.Verify.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var problems []string

	if _, err := c.GetMethod(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(c.Sections) == 0 {
		problems = append(problems, "at least one section is required")
	}
	for i, s := range c.Sections {
		if err := c.CheckBound(s.Bound); err != nil {
			problems = append(problems, fmt.Sprintf("sections[%d]: %v", i, err))
		}
	}

	if c.Format.Columns < 0 || c.Format.Width < 0 {
		problems = append(problems, "format columns and width must be >= 0")
	}

	if err := c.ValidateLimits(); err != nil {
		problems = append(problems, err.Error())
	}

	if c.Verify.From < 0 || c.Verify.To < c.Verify.From {
		problems = append(problems, fmt.Sprintf("verify range [%d, %d] is empty or negative", c.Verify.From, c.Verify.To))
	}
	if c.Verify.Workers < 1 {
		problems = append(problems, "verify workers must be >= 1")
	}

	if err := c.Logging.Validate(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
