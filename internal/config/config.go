package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Execution modes.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
	ModeTest        = "test"
)

// Bearer tokens are opaque but have a known shape: url-safe characters and
// enough length that a truncated paste is caught before the first request.
var keyShape = regexp.MustCompile(`^[A-Za-z0-9._-]{20,}$`)

type Config struct {
	API   APIConfig   `toml:"api"`
	Cache CacheConfig `toml:"cache"`
}

type APIConfig struct {
	URL  string `toml:"url"`
	Key  string `toml:"key"`
	Mode string `toml:"mode"`
}

type CacheConfig struct {
	Persistent bool   `toml:"persistent"`
	Path       string `toml:"path"` // Defaults next to the config file.
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "forja")
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the TOML config file if present, then applies environment
// overrides (FORJA_API_URL, FORJA_API_KEY, FORJA_MODE) and validates the
// result. A .env in the working directory is loaded first. Validation
// failures are fatal to the caller: nothing should proceed on a
// half-configured client.
func Load() (*Config, error) {
	_ = godotenv.Load() // optional

	cfg := &Config{}

	path, err := GetConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(cfg)

	if cfg.API.Mode == "" {
		cfg.API.Mode = ModeDevelopment
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FORJA_API_URL"); v != "" {
		cfg.API.URL = v
	}
	if v := os.Getenv("FORJA_API_KEY"); v != "" {
		cfg.API.Key = v
	}
	if v := os.Getenv("FORJA_MODE"); v != "" {
		cfg.API.Mode = v
	}
}

func (c *Config) validate() error {
	if c.API.URL == "" {
		return fmt.Errorf("FORJA_API_URL is required")
	}
	u, err := url.Parse(c.API.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("FORJA_API_URL %q is not a valid http(s) URL", c.API.URL)
	}

	if c.API.Key == "" {
		return fmt.Errorf("FORJA_API_KEY is required")
	}
	if !keyShape.MatchString(c.API.Key) {
		return fmt.Errorf("FORJA_API_KEY does not look like an access key")
	}

	switch c.API.Mode {
	case ModeDevelopment, ModeProduction, ModeTest:
	default:
		return fmt.Errorf("FORJA_MODE %q must be one of development, production, test", c.API.Mode)
	}

	if c.API.Mode == ModeProduction && isLoopback(u.Hostname()) {
		return fmt.Errorf("FORJA_API_URL points at %s in production mode", u.Hostname())
	}

	return nil
}

func isLoopback(host string) bool {
	if strings.EqualFold(host, "localhost") {
		return true
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback()
	}
	return false
}

// CachePath resolves the persistent cache location, defaulting to the
// config directory.
func (c *Config) CachePath() (string, error) {
	if c.Cache.Path != "" {
		return c.Cache.Path, nil
	}
	path, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(path), "query_cache.db"), nil
}
