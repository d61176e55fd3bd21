package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/keilerkonzept/countmin"
	"github.com/keilerkonzept/countmin/internal/trace"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid")

// SketchConfig holds the sketch dimensions and hashing setup.
type SketchConfig struct {
	Rows     int    `yaml:"rows"`
	Columns  int    `yaml:"columns"`
	Seed     uint64 `yaml:"seed"`
	Hash     string `yaml:"hash"`
	Saturate bool   `yaml:"saturate"`
}

// TraceConfig holds the synthetic trace parameters.
type TraceConfig struct {
	Flows    int     `yaml:"flows"`
	MaxSize  uint32  `yaml:"max_size"`
	Exponent float64 `yaml:"exponent"`
	Seed     uint64  `yaml:"seed"`
}

// OutputConfig controls where the error distribution goes.
type OutputConfig struct {
	Path string `yaml:"path"`
	Gzip bool   `yaml:"gzip"`
	Top  int    `yaml:"top"`
}

// Config is the top-level configuration of a benchmark run.
type Config struct {
	Sketch SketchConfig `yaml:"sketch"`
	Trace  TraceConfig  `yaml:"trace"`
	Output OutputConfig `yaml:"output"`
}

// Default returns a 3x10000 sketch over 100000 Zipf(2) flows of size at most 10000.
func Default() *Config {
	return &Config{
		Sketch: SketchConfig{
			Rows:    3,
			Columns: 10000,
			Seed:    countmin.DefaultSeed,
			Hash:    "xxhash",
		},
		Trace: TraceConfig{
			Flows:    trace.DefaultFlows,
			MaxSize:  trace.DefaultMaxSize,
			Exponent: trace.DefaultExponent,
			Seed:     1,
		},
		Output: OutputConfig{
			Path: "are_distribution.json",
			Top:  10,
		},
	}
}

// LoadConfig reads a YAML file on top of the defaults and validates the result.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Sketch.Rows < 1 || c.Sketch.Columns < 1 {
		return fmt.Errorf("%w: sketch dimensions must be positive, got %dx%d", ErrInvalid, c.Sketch.Rows, c.Sketch.Columns)
	}
	if _, err := c.HashFamily(); err != nil {
		return err
	}
	if err := c.TraceConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Output.Top < 0 {
		return fmt.Errorf("%w: top must not be negative, got %d", ErrInvalid, c.Output.Top)
	}
	return nil
}

// HashFamily maps the configured hash name to a sketch hash family.
func (c *Config) HashFamily() (countmin.HashFamily, error) {
	switch c.Sketch.Hash {
	case "", "xxhash":
		return countmin.XXHash{}, nil
	case "metro":
		return countmin.MetroHash{}, nil
	}
	return nil, fmt.Errorf("%w: unknown hash %q", ErrInvalid, c.Sketch.Hash)
}

// SketchOptions returns the options for countmin.New.
func (c *Config) SketchOptions() ([]countmin.Option, error) {
	family, err := c.HashFamily()
	if err != nil {
		return nil, err
	}
	opts := []countmin.Option{countmin.WithSeed(c.Sketch.Seed), countmin.WithHashFamily(family)}
	if c.Sketch.Saturate {
		opts = append(opts, countmin.WithSaturation())
	}
	return opts, nil
}

func (c *Config) TraceConfig() trace.Config {
	return trace.Config{Flows: c.Trace.Flows, MaxSize: c.Trace.MaxSize, Exponent: c.Trace.Exponent}
}
