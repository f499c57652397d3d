package matrixio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the matscale configuration file.
// Pointer fields distinguish "not set" from zero values.
type Config struct {
	Factor    *float32 `yaml:"factor"`
	Format    string   `yaml:"format"`
	SizeCheck *bool    `yaml:"size_check"`
	Kernel    string   `yaml:"kernel"`
	LogLevel  string   `yaml:"log_level"`
}

// DefaultConfigPath returns ~/.config/matscale/config.yaml, or "" if the
// user config directory is unknown.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "matscale", "config.yaml")
}

// LoadConfig reads a YAML config file. A missing file yields an empty Config
// when optional is true.
func LoadConfig(path string, optional bool) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("matrixio: read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("matrixio: parse config %s: %w", path, err)
	}
	return cfg, nil
}
