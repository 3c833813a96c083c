package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Config holds all service, router and client configuration values.
type Config struct {
	Listen        string `json:"listen"`
	MetricsListen string `json:"metrics_listen"`
	WebListen     string `json:"web_listen"`
	ProxyAPIURL   string `json:"proxy_api_url"`
	APIPrefix     string `json:"api_prefix"`
	StoreDriver   string `json:"store_driver"`
	StorePath     string `json:"store_path"`
	SeedFile      string `json:"seed_file"`
	TimeoutSec    int    `json:"timeout_sec"`

	// Environment configuration (loaded from env vars)
	Env *EnvConfig `json:"-"`
}

// Store drivers understood by store.Open.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
)

// Load reads configuration with sensible defaults, then config.json if
// present, then environment overrides.
func Load() *Config {
	return LoadFrom("config.json")
}

// LoadFrom is Load with an explicit config file path.
func LoadFrom(path string) *Config {
	cfg := &Config{
		Listen:        ":5001",
		MetricsListen: ":9090",
		WebListen:     ":3000",
		ProxyAPIURL:   "http://localhost:5001",
		APIPrefix:     "/api",
		StoreDriver:   DriverMemory,
		StorePath:     "colors.json",
		TimeoutSec:    10,
		Env:           LoadEnv(),
	}

	if file, err := os.Open(path); err == nil {
		defer file.Close()
		json.NewDecoder(file).Decode(cfg)
	}

	// PORT wins over LISTEN so the service runs unchanged under PaaS-style env
	cfg.Listen = getEnvOrDefault("LISTEN", cfg.Listen)
	if port := os.Getenv("PORT"); port != "" {
		cfg.Listen = ":" + strings.TrimPrefix(port, ":")
	}
	cfg.MetricsListen = getEnvOrDefault("METRICS_LISTEN", cfg.MetricsListen)
	cfg.WebListen = getEnvOrDefault("WEB_LISTEN", cfg.WebListen)
	cfg.ProxyAPIURL = getEnvOrDefault("PROXY_API_URL", cfg.ProxyAPIURL)
	cfg.APIPrefix = getEnvOrDefault("API_PREFIX", cfg.APIPrefix)
	cfg.StoreDriver = strings.ToLower(getEnvOrDefault("STORE_DRIVER", cfg.StoreDriver))
	cfg.StorePath = getEnvOrDefault("STORE_PATH", cfg.StorePath)
	cfg.SeedFile = getEnvOrDefault("SEED_FILE", cfg.SeedFile)
	cfg.TimeoutSec = parseIntOrDefault(os.Getenv("TIMEOUT_SEC"), cfg.TimeoutSec)

	if !strings.HasPrefix(cfg.APIPrefix, "/") {
		cfg.APIPrefix = "/" + cfg.APIPrefix
	}
	cfg.APIPrefix = strings.TrimSuffix(cfg.APIPrefix, "/")

	return cfg
}

// Validate checks the configuration for errors and returns helpful messages.
func (c *Config) Validate() error {
	var errs []string

	if c.Listen == "" {
		errs = append(errs, "listen address is required")
	}
	if c.TimeoutSec <= 0 {
		errs = append(errs, "timeout_sec must be positive")
	}

	switch c.StoreDriver {
	case DriverMemory:
	case DriverFile:
		if c.StorePath == "" {
			errs = append(errs, "store_path is required for the file driver")
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown store driver: %s (want memory or file)", c.StoreDriver))
	}

	if c.SeedFile != "" {
		if _, err := os.Stat(c.SeedFile); os.IsNotExist(err) {
			errs = append(errs, fmt.Sprintf("seed file not found: %s", c.SeedFile))
		}
	}

	if c.APIPrefix == "" {
		errs = append(errs, "api_prefix must not be the root path")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}

	return nil
}

// ValidateRouter checks the settings used by the web front and its router.
func (c *Config) ValidateRouter() error {
	var errs []string

	if c.WebListen == "" {
		errs = append(errs, "web_listen address is required")
	}
	u, err := url.Parse(c.ProxyAPIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("proxy_api_url must be an absolute URL: %q", c.ProxyAPIURL))
	}
	if c.APIPrefix == "" {
		errs = append(errs, "api_prefix must not be the root path")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}

	return nil
}
