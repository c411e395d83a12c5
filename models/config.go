package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AnalyzeConfig holds runtime configuration for an analyze run. Values come
// from CLI flags, optionally seeded from a YAML config file; flags win.
type AnalyzeConfig struct {
	Dir        string `yaml:"dir"`
	Profession string `yaml:"profession"`
	Workers    int    `yaml:"workers"`
	RatesPath  string `yaml:"rates"`
}

// LoadConfig reads an AnalyzeConfig from a YAML file.
func LoadConfig(path string) (*AnalyzeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &AnalyzeConfig{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
