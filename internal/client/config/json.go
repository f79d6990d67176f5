package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/orwel/orwel-cli/internal/flagx"
	"github.com/orwel/orwel-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "3s"
// or as integer nanoseconds.
type JsonConfig struct {
	BackendBaseURL      string         `json:"backend_base_url"`
	DirectSourceURL     string         `json:"direct_source_url"`
	DirectSourceKey     string         `json:"direct_source_key"`
	CacheDBPath         string         `json:"cache_db_path"`
	ConnectTimeout      timex.Duration `json:"connect_timeout"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	GeocodingAPIURL     string         `json:"geocoding_api_url"`
	GeocodingAPIKey     string         `json:"geocoding_api_key"`
	NewsAPIKey          string         `json:"news_api_key"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flag. If no flag is given, nothing is loaded. Only fields
// present in the file override defaults; zero values are left alone.
//
// Read or unmarshal errors panic; a broken explicit config file should stop
// the program rather than silently fall back.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BackendBaseURL != "" {
		cfg.BackendBaseURL = jc.BackendBaseURL
	}
	if jc.DirectSourceURL != "" {
		cfg.DirectSourceURL = jc.DirectSourceURL
	}
	if jc.DirectSourceKey != "" {
		cfg.DirectSourceKey = jc.DirectSourceKey
	}
	if jc.CacheDBPath != "" {
		cfg.CacheDBPath = jc.CacheDBPath
	}
	if jc.ConnectTimeout.Duration != 0 {
		cfg.ConnectTimeout = time.Duration(jc.ConnectTimeout.Duration)
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
	if jc.GeocodingAPIURL != "" {
		cfg.GeocodingAPIURL = jc.GeocodingAPIURL
	}
	if jc.GeocodingAPIKey != "" {
		cfg.GeocodingAPIKey = jc.GeocodingAPIKey
	}
	if jc.NewsAPIKey != "" {
		cfg.NewsAPIKey = jc.NewsAPIKey
	}
}
