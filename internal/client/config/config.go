package config

import "time"

// Config holds runtime settings for the Photoshare CLI.
//
// Fields:
//   - BaseURL: root URL of the backend REST API.
//   - RequestTimeout: client-side bound for a single request; zero disables it.
//   - DatabaseFile: path of the local SQLite store holding the session slot.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabaseFile   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080"
	c.RequestTimeout = 15 * time.Second
	c.DatabaseFile = "photoshare.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
