// Package config loads the task store settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the settings for a task store
type Config struct {
	// directory holding the store file
	DataDir string `yaml:"data_dir"`
	// name of the store file inside DataDir
	FileName string `yaml:"file_name"`
	// directory snapshots are written to, empty disables backups
	BackupDir string `yaml:"backup_dir"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		DataDir:  "data",
		FileName: "tasks.txt",
	}
}

// Load reads a YAML config file from path. Fields not present in the
// file keep their default values.
func Load(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(d, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if c.FileName == "" {
		return fmt.Errorf("file_name must not be empty")
	}
	if strings.ContainsAny(c.FileName, `/\`) {
		return fmt.Errorf("file_name must not contain path separators: %q", c.FileName)
	}
	return nil
}
