package config

import "fmt"

// LimitsConfig bounds user input. The sieve allocates one bool per integer up
// to the bound, so MaxBound caps memory.
type LimitsConfig struct {
	MaxBound int `yaml:"max_bound"`
}

// ValidateLimits checks that limits are within acceptable ranges.
func (c *Config) ValidateLimits() error {
	if c.Limits.MaxBound < 2 {
		return fmt.Errorf("max_bound must be >= 2")
	}
	return nil
}

// CheckBound reports whether bound is usable as an enumeration bound.
func (c *Config) CheckBound(bound int) error {
	if bound < 0 {
		return fmt.Errorf("bound %d is negative", bound)
	}
	if c.Limits.MaxBound > 0 && bound > c.Limits.MaxBound {
		return fmt.Errorf("bound %d exceeds max_bound %d", bound, c.Limits.MaxBound)
	}
	return nil
}
