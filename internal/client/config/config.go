package config

import "time"

// Config holds runtime settings for the Ember CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - CredentialDBPath: path of the local sqlite file holding the
//     persisted credential.
//   - FeedPageSize: candidates requested per feed page.
//   - SwipesPerSecond: remote swipe-recording rate cap.
type Config struct {
	ServerBaseURL    string
	RequestTimeout   time.Duration
	CredentialDBPath string
	FeedPageSize     int
	SwipesPerSecond  float64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080/api/v1"
	c.RequestTimeout = 10 * time.Second
	c.CredentialDBPath = "ember.db"
	c.FeedPageSize = 10
	c.SwipesPerSecond = 4
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
