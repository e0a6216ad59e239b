// Package config loads game settings from embedded defaults and an optional YAML file.
package config

import (
	_ "embed"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/termsnake/constants"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var (
	ErrInvalidGridSize = errors.New("grid_size out of range")
	ErrInvalidTick     = errors.New("tick out of range")
)

// Config holds all game settings
type Config struct {
	GridSize      int           `yaml:"grid_size"`
	Tick          time.Duration `yaml:"tick"`
	AspectCorrect bool          `yaml:"aspect_correct"`
	Checkerboard  bool          `yaml:"checkerboard"`
	Debug         bool          `yaml:"debug"`
}

// Default returns the embedded defaults
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(errors.Wrap(err, "[Default] embedded defaults"))
	}
	return cfg
}

// Load reads the embedded defaults, overlays path when non-empty and validates the result
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "[Load] failed to read file: %s", path)
		}
		// Only keys present in the file overwrite defaults
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "[Load] failed to parse file: %s", path)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.GridSize < constants.MinGridSize || c.GridSize > constants.MaxGridSize {
		return errors.Wrapf(ErrInvalidGridSize, "[Validate] grid_size %d not in [%d, %d]",
			c.GridSize, constants.MinGridSize, constants.MaxGridSize)
	}
	if c.Tick < constants.MinFrameDuration || c.Tick > constants.MaxFrameDuration {
		return errors.Wrapf(ErrInvalidTick, "[Validate] tick %v not in [%v, %v]",
			c.Tick, constants.MinFrameDuration, constants.MaxFrameDuration)
	}
	return nil
}
