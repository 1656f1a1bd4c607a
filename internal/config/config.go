// Package config loads run files for the keypad CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rybkr/keypad/internal/batch"
	"github.com/rybkr/keypad/internal/logging"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// MaxWorkers caps Config.Workers.
const MaxWorkers = 256

// Config holds one run: which codes to score and how.
type Config struct {
	// Depth is the number of directional keypads between the human and the
	// door keypad.
	Depth int `toml:"depth" json:"depth" yaml:"depth"`

	// Workers is the number of codes scored concurrently.
	Workers int `toml:"workers" json:"workers" yaml:"workers"`

	// Codes are the door codes to score, e.g. "029A".
	Codes []string `toml:"codes" json:"codes" yaml:"codes"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" json:"level" yaml:"level"`

	// Format is text or json.
	Format string `toml:"format" json:"format" yaml:"format"`
}

// DefaultConfig returns the configuration used when no run file is given.
func DefaultConfig() *Config {
	return &Config{
		Depth:   batch.DefaultDepth,
		Workers: batch.DefaultWorkers,
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatText,
		},
	}
}

// Load reads a TOML or YAML run file on top of DefaultConfig and validates
// the result. The format is chosen by file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse TOML config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse YAML config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q (use .toml, .yaml or .yml)", ErrUnsupportedFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks field ranges and that every code is well formed.
func (c *Config) Validate() error {
	var errs []error

	if c.Depth < 0 {
		errs = append(errs, fmt.Errorf("depth: must not be negative, got %d", c.Depth))
	}
	if c.Workers < 1 || c.Workers > MaxWorkers {
		errs = append(errs, fmt.Errorf("workers: must be between 1 and %d, got %d", MaxWorkers, c.Workers))
	}
	if _, ok := logging.ParseLevel(c.Logging.Level); !ok {
		errs = append(errs, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}
	if !logging.ValidFormat(c.Logging.Format) {
		errs = append(errs, fmt.Errorf("logging.format: must be text or json, got %q", c.Logging.Format))
	}
	for i, code := range c.Codes {
		if _, err := batch.ParseCode(code); err != nil {
			errs = append(errs, fmt.Errorf("codes[%d]: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

// RunnerOptions converts the config into batch runner options.
func (c *Config) RunnerOptions() *batch.Options {
	return &batch.Options{
		Depth:   c.Depth,
		Workers: c.Workers,
	}
}
