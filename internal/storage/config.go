package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigFile is the name of the user configuration file.
	ConfigFile = ".tasksconfig.yaml"

	// DefaultColor is the color setting used when the config leaves it out.
	DefaultColor = true
)

// Config represents user configuration from .tasksconfig.yaml.
// This file is user-managed and never written by the task manager.
type Config struct {
	// DataFile is the backing JSON file for the task store.
	DataFile string `yaml:"data_file"`

	// Color enables colored output when stdout is a terminal.
	Color bool `yaml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DataFile: DefaultDataFile,
		Color:    DefaultColor,
	}
}

// LoadConfig loads .tasksconfig.yaml from dir if it exists, otherwise returns
// defaults. Partial config files are merged with defaults.
// A relative DataFile is resolved against dir.
func LoadConfig(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			cfg.DataFile = filepath.Join(dir, cfg.DataFile)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}
	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFile
	}

	// Relative data files live next to the config file.
	if !filepath.IsAbs(cfg.DataFile) {
		cfg.DataFile = filepath.Join(dir, cfg.DataFile)
	}

	return cfg, nil
}
