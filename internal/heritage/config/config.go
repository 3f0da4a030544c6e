package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds runtime options for the heritage web front end.
type Config struct {
	// Address is the HTTP listen address.
	Address string `yaml:"address"`
	// BasePath prefixes all routes when the app is mounted behind a proxy.
	BasePath string `yaml:"base_path"`
	// BackendURL is the base URL of the heritage data API. Empty enables
	// the built-in static dataset for local development.
	BackendURL string `yaml:"backend_url"`
	// AdminPageSize is the fixed page size of the admin record list.
	AdminPageSize int `yaml:"admin_page_size"`
	// SessionHashKey signs the admin browser session cookie.
	SessionHashKey string `yaml:"session_hash_key"`
	// SessionLifetime bounds how long an admin browser session stays valid.
	SessionLifetime time.Duration `yaml:"session_lifetime"`
	// FallbackImages overrides the default card image table.
	FallbackImages []string `yaml:"fallback_images"`
}

// Default returns the configuration used when no file or env overrides
// are present.
func Default() Config {
	return Config{
		Address:         ":8080",
		BasePath:        "/",
		AdminPageSize:   10,
		SessionLifetime: 12 * time.Hour,
	}
}

// Load reads an optional YAML file and applies environment overrides.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("config: read %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if cfg.AdminPageSize <= 0 {
		cfg.AdminPageSize = Default().AdminPageSize
	}
	if cfg.SessionLifetime <= 0 {
		cfg.SessionLifetime = Default().SessionLifetime
	}
	if cfg.Address == "" {
		cfg.Address = Default().Address
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("HERITAGE_HTTP_ADDR"); v != "" {
		cfg.Address = v
	}
	if v := os.Getenv("PORT"); v != "" && os.Getenv("HERITAGE_HTTP_ADDR") == "" {
		cfg.Address = ":" + v
	}
	if v := os.Getenv("HERITAGE_BASE_PATH"); v != "" {
		cfg.BasePath = v
	}
	if v := os.Getenv("HERITAGE_BACKEND_URL"); v != "" {
		cfg.BackendURL = v
	}
	if v := os.Getenv("HERITAGE_ADMIN_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.AdminPageSize = n
		}
	}
	if v := os.Getenv("HERITAGE_SESSION_HASH_KEY"); v != "" {
		cfg.SessionHashKey = v
	}
	if v := os.Getenv("HERITAGE_SESSION_LIFETIME"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.SessionLifetime = d
		}
	}
}
