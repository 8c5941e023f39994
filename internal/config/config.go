// Package config handles conversion settings: defaults, YAML file, CLI
// flags, merged in that priority order.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds all configurable conversion settings.
type Config struct {
	// Conversion defaults
	Pose    string `yaml:"pose"`
	Model   string `yaml:"model"` // classic, slim, or auto
	Palette string `yaml:"palette"`
	Solid   bool   `yaml:"solid"`
	Dither  bool   `yaml:"dither"`

	// Output
	OutputDir   string `yaml:"output_dir"`
	Preview     bool   `yaml:"preview"`
	PreviewSize int    `yaml:"preview_size"`
	Supersample int    `yaml:"supersample"`

	// Batch
	Workers int `yaml:"workers"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Pose      string
	Model     string
	Palette   string
	Solid     bool
	Dither    bool
	OutputDir string
	Workers   int
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Pose:        "standing",
		Model:       "auto",
		Palette:     "mixed",
		OutputDir:   ".",
		Preview:     true,
		PreviewSize: 512,
		Supersample: 2,
		Workers:     runtime.NumCPU(),
		Logging:     LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies CLI flags over the config and clamps invalid values.
func (c *Config) Resolve(f Flags) {
	if f.Pose != "" {
		c.Pose = f.Pose
	}
	if f.Model != "" {
		c.Model = f.Model
	}
	if f.Palette != "" {
		c.Palette = f.Palette
	}
	if f.Solid {
		c.Solid = true
	}
	if f.Dither {
		c.Dither = true
	}
	if f.OutputDir != "" {
		c.OutputDir = f.OutputDir
	}
	if f.Workers > 0 {
		c.Workers = f.Workers
	}

	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.PreviewSize <= 0 {
		c.PreviewSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
}
