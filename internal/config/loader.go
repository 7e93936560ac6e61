package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var candidateNames = []string{"config.yaml", "config.yml", "config.toml"}

// findConfigFile returns the first existing config file in Dir, or "".
func findConfigFile() string {
	dir, err := Dir()
	if err != nil {
		return ""
	}
	for _, name := range candidateNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// loadFile decodes path into cfg, picking the format from the extension.
// Environment variables in the file are expanded first.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	expanded := os.ExpandEnv(string(data))

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(expanded, cfg); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
	cfg.Source = path
	return nil
}

// Save writes cfg as YAML to path, creating the directory owner-only.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// DefaultPath is where Save writes when no config file exists yet.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, candidateNames[0]), nil
}

// ReadFile returns the defaults overlaid with path alone, ignoring the
// environment. A missing file yields the defaults.
func ReadFile(path string) (*Config, error) {
	cfg := Default()
	if err := loadFile(cfg, path); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return cfg, nil
}
