// Package config loads client configuration from, in increasing precedence:
// built-in defaults, the YAML config file, then environment variables. A
// .env file in the working directory is folded into the environment first.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultBaseURL  = "http://localhost:8000/api"
	defaultLogLevel = "warn"
	defaultTimeout  = 30 * time.Second
)

// Config holds everything the client and CLI need to run.
type Config struct {
	// BaseURL is the API root.
	BaseURL string `yaml:"base_url" env:"STAFFSYNC_BASE_URL"`

	// SessionFile overrides where the session is stored on disk.
	SessionFile string `yaml:"session_file" env:"STAFFSYNC_SESSION_FILE"`

	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level" env:"STAFFSYNC_LOG_LEVEL"`

	// Timeout bounds each API request.
	Timeout time.Duration `yaml:"timeout" env:"STAFFSYNC_TIMEOUT"`
}

// DefaultFilePath returns the standard config file location,
// $XDG_CONFIG_HOME/staffsync/config.yaml with the usual ~/.config fallback.
func DefaultFilePath() (string, error) {
	if configDir := os.Getenv("XDG_CONFIG_HOME"); configDir != "" {
		return filepath.Join(configDir, "staffsync", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("[config.DefaultFilePath] %w", err)
	}
	return filepath.Join(home, ".config", "staffsync", "config.yaml"), nil
}

// Load builds the effective configuration. path may be empty to use the
// default location; a missing file at either is not an error.
func Load(path string) (Config, error) {
	// Best effort only: most setups have no .env file.
	_ = godotenv.Load()

	config := Config{}

	if path == "" {
		defaultPath, err := DefaultFilePath()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}
	if err := readFile(path, &config); err != nil {
		return Config{}, err
	}

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("[config.Load] parsing environment: %w", err)
	}

	config.applyDefaults()
	return config, nil
}

func readFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("[config.Load] reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("[config.Load] parsing %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}
