package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pkt.systems/steadylog"
)

// Config is the YAML file layout. Keys mirror the STEADYLOG_* variables.
type Config struct {
	Clock      string      `yaml:"clock"`
	TimeFormat string      `yaml:"time_format"`
	UTC        bool        `yaml:"utc"`
	Output     string      `yaml:"output"`
	Color      ColorConfig `yaml:"color"`
}

// ColorConfig groups the colour settings.
type ColorConfig struct {
	Disable bool   `yaml:"disable"`
	Force   bool   `yaml:"force"`
	Palette string `yaml:"palette"`
}

func defaultConfig() *Config {
	return &Config{Clock: "monotonic"}
}

func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings the logger cannot honour.
func (c *Config) Validate() error {
	switch c.Clock {
	case "", "none", "null", "off", "monotonic", "elapsed", "wall":
	default:
		return fmt.Errorf("clock %q: want none, monotonic or wall", c.Clock)
	}
	if c.Color.Disable && c.Color.Force {
		return fmt.Errorf("color.disable and color.force are mutually exclusive")
	}
	return nil
}

// EnvSettings converts the file into the settings steadylog.Build takes.
func (c *Config) EnvSettings() steadylog.EnvSettings {
	return steadylog.EnvSettings{
		Clock:      c.Clock,
		TimeFormat: c.TimeFormat,
		UTC:        c.UTC,
		NoColor:    c.Color.Disable,
		ForceColor: c.Color.Force,
		Palette:    c.Color.Palette,
		Output:     c.Output,
	}
}
