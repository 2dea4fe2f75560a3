// Package config loads dashboard client configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the full client configuration.
type Config struct {
	// APIRoot is the primary backend API root, e.g. https://api.example.com/api.
	APIRoot string `yaml:"api_root" env:"MEDADMIN_API_ROOT"`

	// AdminAPIRoot is the legacy admin backend API root. Defaults to APIRoot.
	AdminAPIRoot string `yaml:"admin_api_root" env:"MEDADMIN_ADMIN_API_ROOT"`

	// Timeout bounds every HTTP request.
	Timeout time.Duration `yaml:"timeout" env:"MEDADMIN_TIMEOUT" env-default:"15s"`

	// SearchDebounce is the list-screen search debounce delay.
	SearchDebounce time.Duration `yaml:"search_debounce" env:"MEDADMIN_SEARCH_DEBOUNCE" env-default:"500ms"`

	// StatePath is where the session snapshot persists. Empty means the
	// platform default under the user config directory.
	StatePath string `yaml:"state_path" env:"MEDADMIN_STATE_PATH"`

	// MetricsEnabled toggles Prometheus metric registration.
	MetricsEnabled bool `yaml:"metrics_enabled" env:"MEDADMIN_METRICS_ENABLED" env-default:"false"`

	// ListenAddr is where the example dashboard shell serves. Only the
	// example binary reads it.
	ListenAddr string `yaml:"listen_addr" env:"MEDADMIN_LISTEN_ADDR" env-default:":8080"`
}

// Load reads configuration from the given YAML file, then applies
// environment overrides. An empty path or a missing file falls back to
// environment variables alone.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("config: read %s: %w", path, err)
			}
			return validate(&cfg)
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read environment: %w", err)
	}
	return validate(&cfg)
}

func validate(cfg *Config) (*Config, error) {
	if cfg.APIRoot == "" {
		return nil, fmt.Errorf("config: api_root is required")
	}
	if cfg.AdminAPIRoot == "" {
		cfg.AdminAPIRoot = cfg.APIRoot
	}
	return cfg, nil
}
