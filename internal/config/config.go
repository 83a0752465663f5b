// Package config holds tool-wide configuration for the balance simulator:
// where catalog data lives, the optional catalog database, and the default
// simulation parameters.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/emberforge/encounterlab/internal/catalog"
)

// AppConfig holds simulator-wide configuration settings.
type AppConfig struct {
	Catalog    CatalogConfig     `yaml:"catalog"`
	Database   DatabaseConfig    `yaml:"database"`
	Simulation catalog.SimConfig `yaml:"simulation"`
}

// CatalogConfig controls where static combat data is loaded from. The
// compiled-in defaults always load first; files and the database merge over
// them.
type CatalogConfig struct {
	// DataDir is a directory of YAML catalog files. Empty disables file
	// loading.
	DataDir string `yaml:"data_dir"`
}

// DatabaseConfig holds catalog database settings.
type DatabaseConfig struct {
	// Driver selects the backend: "sqlite" or "postgres". Empty disables
	// database loading.
	Driver string `yaml:"driver"`

	// Path is the SQLite database file path.
	Path string `yaml:"path"`

	// DSN is the PostgreSQL connection string.
	DSN string `yaml:"dsn"`
}

// DefaultConfig returns an AppConfig with the standard defaults: compiled-in
// catalog only, no database, and the engine's default run parameters.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Catalog:    CatalogConfig{},
		Database:   DatabaseConfig{Path: "data/encounterlab.db"},
		Simulation: catalog.DefaultConfig(),
	}
}

// LoadConfig loads simulator configuration from a YAML file.
// If the file doesn't exist, returns the default config.
func LoadConfig(path string) (*AppConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}
