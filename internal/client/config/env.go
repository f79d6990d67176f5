package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with values from the process environment. A .env
// file in the working directory is loaded first via godotenv, which never
// overrides variables already set in the real environment, so real
// environment variables keep the highest precedence.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if v := os.Getenv(key); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				*dst = d
			}
		}
	}

	setString("BACKEND_API_URL", &cfg.BackendBaseURL)
	setString("SUPABASE_URL", &cfg.DirectSourceURL)
	setString("SUPABASE_ANON_KEY", &cfg.DirectSourceKey)
	setString("ORWEL_DB_PATH", &cfg.CacheDBPath)
	setDuration("ORWEL_CONNECT_TIMEOUT", &cfg.ConnectTimeout)
	setDuration("ORWEL_REQUEST_TIMEOUT", &cfg.RequestTimeout)
	setDuration("ORWEL_ONLINE_CHECK_INTERVAL", &cfg.OnlineCheckInterval)
	setString("LOCATION_API_URL", &cfg.GeocodingAPIURL)
	setString("LOCATION_API_KEY", &cfg.GeocodingAPIKey)
	setString("NEWS_API_KEY", &cfg.NewsAPIKey)
}
