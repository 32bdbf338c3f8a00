// SPDX-License-Identifier: MIT

// Package config holds the settings of the mytrix command-line tool.
// The library packages take no configuration; everything here only shapes
// how the CLI reads, builds and prints containers.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mytrix/scalar"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Defaults - single source of truth for zero-value behavior.
const (
	DefaultFormat   = FormatText
	DefaultLogLevel = "info"
	// DefaultKind empty means the domain is inferred from the data.
	DefaultKind = ""
)

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds all CLI configuration.
type Config struct {
	// Output format for printed containers: text | yaml.
	Format string `yaml:"format"`

	// Log level: debug | info | warn | error.
	LogLevel string `yaml:"log_level"`

	// Domain used for documents that do not name one. Empty = infer.
	DefaultKind string `yaml:"default_kind"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Format:      DefaultFormat,
		LogLevel:    DefaultLogLevel,
		DefaultKind: DefaultKind,
	}
}

// Load reads a YAML configuration file over the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Format != FormatText && c.Format != FormatYAML {
		return fmt.Errorf("format %q: %w", c.Format, ErrInvalidConfig)
	}

	switch strings.ToLower(c.LogLevel) {
	case "":
		c.LogLevel = DefaultLogLevel
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalidConfig)
	}

	if _, err := c.Kind(); err != nil {
		return fmt.Errorf("default_kind %q: %w", c.DefaultKind, ErrInvalidConfig)
	}

	return nil
}

// Kind resolves DefaultKind; scalar.Invalid means "infer".
// Reserved kinds parse successfully here and are rejected when a
// container is built.
func (c *Config) Kind() (scalar.Kind, error) {
	if strings.TrimSpace(c.DefaultKind) == "" {
		return scalar.Invalid, nil
	}
	return scalar.ParseKind(c.DefaultKind)
}
