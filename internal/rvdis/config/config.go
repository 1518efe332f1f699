// Package config loads optional tool configuration from a YAML file, with
// environment-variable fallbacks for individual settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// File is the default config file name, looked up in the working directory
// and then in the user config directory.
const File = ".rvdis.yaml"

// Config holds the settings the CLI reads before flags are applied.
type Config struct {
	Demangle bool   `yaml:"demangle"` // demangle symbol names in listings
	NoColor  bool   `yaml:"no_color"` // disable terminal colors
	LogLevel string `yaml:"log_level"`
}

// GetEnvBool returns an environment variable as bool or a default value.
func GetEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

// Load reads the config file if one exists. A missing file yields the
// defaults; a malformed file is an error.
func Load() (*Config, error) {
	cfg := &Config{
		NoColor:  GetEnvBool("RVDIS_NO_COLOR", false),
		LogLevel: os.Getenv("RVDIS_LOG_LEVEL"),
	}
	path := File
	if _, err := os.Stat(path); err != nil {
		dir, derr := os.UserConfigDir()
		if derr != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "rvdis", File)
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
