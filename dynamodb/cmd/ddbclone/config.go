package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFilename = "ddbclone.yaml"

// Config holds defaults for ddbclone commands.
// Loaded from ddbclone.yaml if present. Flags set on the command line win.
type Config struct {
	// Region is the AWS region to target.
	Region string `yaml:"region"`

	// Profile is the shared credentials profile to use.
	Profile string `yaml:"profile"`

	// Endpoint overrides the DynamoDB endpoint, e.g. DynamoDB Local.
	Endpoint string `yaml:"endpoint"`

	// LocalDir is where the BadgerDB table catalog lives. Setting it
	// switches commands to the local catalog instead of AWS.
	LocalDir string `yaml:"localDir"`

	// WaitTimeout bounds how long clone waits for the new table, e.g. "10m".
	WaitTimeout time.Duration `yaml:"waitTimeout"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel"`

	// LogFile additionally writes logs to a rotated file.
	LogFile string `yaml:"logFile"`
}

// LoadConfig searches for ddbclone.yaml starting from dir and walking up to
// the filesystem root. Returns empty config if not found.
func LoadConfig(dir string) (Config, error) {
	var cfg Config

	configPath := findConfigFile(dir)
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", configPath, err)
	}
	return cfg, nil
}

// findConfigFile searches for ddbclone.yaml walking up from dir.
func findConfigFile(dir string) string {
	for {
		path := filepath.Join(dir, configFilename)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return ""
		}
		dir = parent
	}
}
