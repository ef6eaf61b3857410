// Package config loads the CLI's YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/textable"
)

// EnvPath names the environment variable consulted when no --config flag is
// given.
const EnvPath = "TEXTABLE_CONFIG"

// Config holds defaults that command-line flags override.
type Config struct {
	// Format used when neither a flag nor the file extension decides.
	Format textable.Format `yaml:"format,omitempty"`

	// Default output file for convert. Empty means stdout.
	Output string `yaml:"output,omitempty"`

	Debug bool `yaml:"debug,omitempty"`

	// Log format: text or json.
	LogFormat string `yaml:"log_format,omitempty"`
}

// Load reads the config at path, falling back to $TEXTABLE_CONFIG. With
// neither set it returns an empty Config. A path that was named explicitly
// must exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %s not found", path)
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML config data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid config file: log_format %q is not text or json", cfg.LogFormat)
	}
	return &cfg, nil
}
