// Package config reads and writes ~/.exsearch/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the in-memory representation of ~/.exsearch/config.yaml.
type Config struct {
	// CatalogPath points at a YAML catalog file; empty means the catalog
	// bundled with the binary.
	CatalogPath  string `yaml:"catalog_path,omitempty"`
	DefaultLimit int    `yaml:"default_limit,omitempty"`
	HistorySize  int    `yaml:"history_size,omitempty"`
}

// Dir returns the absolute path to ~/.exsearch/.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".exsearch"), nil
}

// Path returns the absolute path to ~/.exsearch/config.yaml.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// Default returns the Config written on first exsearch init.
func Default() *Config {
	return &Config{
		DefaultLimit: 20,
		HistorySize:  50,
	}
}

// Load reads ~/.exsearch/config.yaml. A missing file is not an error: read
// commands fall back to the defaults, only init writes the file.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	cfg.CatalogPath, err = ExpandPath(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save marshals cfg and writes it to ~/.exsearch/config.yaml, creating the
// directory if needed.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
