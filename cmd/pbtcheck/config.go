package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional --config file's shape: default seed,
// sample budget, and metrics address. check applies Seed and
// MetricsAddr; NSamples is parsed but not applied, since each
// property's sample budget is fixed when its tree is built.
type fileConfig struct {
	Seed        uint64 `yaml:"seed"`
	NSamples    int    `yaml:"n_samples"`
	MetricsAddr string `yaml:"metrics_addr"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
