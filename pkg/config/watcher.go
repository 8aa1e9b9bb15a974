package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WatcherConfig configures the watch-folder pipeline runner.
type WatcherConfig struct {
	Paths       WatcherPathsConfig `yaml:"paths"`
	Summary     SummaryConfig      `yaml:"summary"`
	Performance PerformanceConfig  `yaml:"performance"`
}

type WatcherPathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type SummaryConfig struct {
	MaxLen       int      `yaml:"max_len"`
	MinLen       int      `yaml:"min_len"`
	Participants []string `yaml:"participants"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// LoadWatcherConfig reads and validates the yaml config file.
func LoadWatcherConfig(path string) (*WatcherConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg WatcherConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks required fields and fills defaults.
func (c *WatcherConfig) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
