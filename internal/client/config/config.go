// Package config holds runtime settings for the Orwel client and the logic
// to assemble them from defaults, an optional JSON file, and the process
// environment (optionally seeded from a .env file). Later sources override
// earlier ones, so the effective precedence is:
//
//	environment > JSON config file > built-in defaults
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the Orwel CLI.
type Config struct {
	// BackendBaseURL is the base URL of the primary REST backend,
	// including the API prefix (e.g. "http://localhost:8080/api").
	BackendBaseURL string

	// DirectSourceURL and DirectSourceKey configure the direct
	// PostgREST data source. Both empty means the direct tier is
	// disabled and every content query goes straight to the backend.
	DirectSourceURL string
	DirectSourceKey string

	// CacheDBPath is the SQLite file backing the local cache store.
	CacheDBPath string

	// Network timeouts shared by all remote clients. Kept short so a hung
	// source degrades to the next tier promptly.
	ConnectTimeout time.Duration
	RequestTimeout time.Duration

	// OnlineCheckInterval is how often the client probes backend
	// reachability.
	OnlineCheckInterval time.Duration

	// Optional third-party service keys.
	GeocodingAPIURL string
	GeocodingAPIKey string
	NewsAPIKey      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendBaseURL = "http://localhost:8080/api"
	c.DirectSourceURL = ""
	c.DirectSourceKey = ""
	c.CacheDBPath = defaultCacheDBPath()
	c.ConnectTimeout = 2 * time.Second
	c.RequestTimeout = 5 * time.Second
	c.OnlineCheckInterval = 30 * time.Second
	c.GeocodingAPIURL = "https://nominatim.openstreetmap.org"
	c.GeocodingAPIKey = ""
	c.NewsAPIKey = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a -c/-config file is given) and the environment. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	return cfg
}

// defaultCacheDBPath places the cache in a fixed per-user application
// directory, ~/.orwel/orwel.db.
func defaultCacheDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".orwel", "orwel.db")
	}
	return filepath.Join(home, ".orwel", "orwel.db")
}
