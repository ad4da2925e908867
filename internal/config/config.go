package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Run and view defaults. Physics constants are compile-time in the chain
// package; this layer only covers how a run is driven and displayed.
const (
	DefaultDt       = 0.01
	DefaultDuration = 10.0
	DefaultLinks    = 1
	DefaultFPS      = 60
	DefaultDataDir  = ".pendulums"
)

type Config struct {
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`
	Links    int     `yaml:"links"`
	FPS      int     `yaml:"fps"`
	DataDir  string  `yaml:"data_dir"`
	Seed     int64   `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Links:    DefaultLinks,
		FPS:      DefaultFPS,
		DataDir:  DefaultDataDir,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first invalid run parameter.
func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	if c.Links < 1 {
		return fmt.Errorf("links must be at least 1, got %d", c.Links)
	}
	if c.FPS < 1 {
		return fmt.Errorf("fps must be at least 1, got %d", c.FPS)
	}
	return nil
}
