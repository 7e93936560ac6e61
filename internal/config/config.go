// Package config resolves where the client talks to and how it presents
// itself. Sources, lowest to highest precedence: defaults, config file,
// environment, command-line flags.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const appName = "aitodo"

// Config is the resolved client configuration.
type Config struct {
	API   string    `yaml:"api" toml:"api"`
	Theme string    `yaml:"theme" toml:"theme"`
	Log   LogConfig `yaml:"log" toml:"log"`

	// Path of the file the values were read from, empty when none was found.
	Source string `yaml:"-" toml:"-"`
}

// LogConfig controls the charmbracelet logger.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
	File   string `yaml:"file" toml:"file"`
}

// Overrides carry flag values; empty fields leave the config untouched.
type Overrides struct {
	API      string
	Theme    string
	LogLevel string
}

var ErrMissingAPI = errors.New("missing API base URL: set AITODO_API, pass --api, or add `api:` to the config file")

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme: "classic",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load resolves the configuration. An explicit path must exist; the default
// locations are optional.
func Load(path string, ov Overrides) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	} else if found := findConfigFile(); found != "" {
		if err := loadFile(cfg, found); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	loadFromEnv(cfg)
	cfg.apply(ov)
	cfg.API = normalizeBaseURL(cfg.API)
	return cfg, nil
}

func (c *Config) apply(ov Overrides) {
	if ov.API != "" {
		c.API = ov.API
	}
	if ov.Theme != "" {
		c.Theme = ov.Theme
	}
	if ov.LogLevel != "" {
		c.Log.Level = ov.LogLevel
	}
}

func loadFromEnv(cfg *Config) {
	// AITODO_API wins over the bare API variable the web frontend used.
	if v := strings.TrimSpace(os.Getenv("AITODO_API")); v != "" {
		cfg.API = v
	} else if v := strings.TrimSpace(os.Getenv("API")); v != "" {
		cfg.API = v
	}
	if v := strings.TrimSpace(os.Getenv("AITODO_THEME")); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("AITODO_LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("AITODO_LOG_FILE")); v != "" {
		cfg.Log.File = v
	}
}

// Validate checks that the base URL is usable.
func (c *Config) Validate() error {
	if c.API == "" {
		return ErrMissingAPI
	}
	u, err := url.Parse(c.API)
	if err != nil {
		return fmt.Errorf("invalid API base URL %q: %w", c.API, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid API base URL %q: scheme must be http or https", c.API)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid API base URL %q: missing host", c.API)
	}
	return nil
}

// LogFile returns where the interactive client writes its log.
func (c *Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	dir, err := Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName+".log")
}

// Dir is the per-user configuration directory.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

func normalizeBaseURL(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), "/")
}
