// Package config loads the application configuration from environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	// DataDir is the directory holding the snapshot database. Empty means
	// a per-user default under the OS config directory.
	DataDir string `env:"ECOQUEST_DATA_DIR"`

	// DataFile is the snapshot database filename inside DataDir.
	DataFile string `env:"ECOQUEST_DATA_FILE" envDefault:"ecoquest.db"`

	// Seed fixes the random draws of every mini-game round. Zero means a
	// fresh seed per launch.
	Seed int64 `env:"ECOQUEST_SEED"`
}

// Load reads the configuration from environment variables and fills in the
// per-user defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user config dir: %w", err)
		}
		cfg.DataDir = filepath.Join(base, "ecoquest")
	}
	return &cfg, nil
}

// DataPath returns the full path of the snapshot database.
func (c *Config) DataPath() string {
	return filepath.Join(c.DataDir, c.DataFile)
}
