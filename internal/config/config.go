// Package config loads arith settings from an optional .arith.yaml
// file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory
// when no explicit path is given.
const DefaultFile = ".arith.yaml"

// Output format names.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// MaxPrecision is the largest precision accepted. 17 significant
// digits are enough to round-trip any float64.
const MaxPrecision = 17

// Config is the root of .arith.yaml.
type Config struct {
	Output OutputConfig `yaml:"output"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `yaml:"format"`

	// Precision is the digits after the decimal point for division
	// values in text output. -1 selects the shortest representation.
	Precision int `yaml:"precision"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:    FormatText,
			Precision: -1,
		},
	}
}

// Load reads path and overlays it on DefaultConfig. An empty path
// means DefaultFile, which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every setting is in range.
func (c *Config) Validate() error {
	if err := ValidateFormat(c.Output.Format); err != nil {
		return err
	}
	return ValidatePrecision(c.Output.Precision)
}

// ValidateFormat reports whether format names a supported output.
func ValidateFormat(format string) error {
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", format)
	}
	return nil
}

// ValidatePrecision reports whether p is -1 or within [0, MaxPrecision].
func ValidatePrecision(p int) error {
	if p < -1 || p > MaxPrecision {
		return fmt.Errorf("invalid precision %d: must be -1 or in [0, %d]", p, MaxPrecision)
	}
	return nil
}
