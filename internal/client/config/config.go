package config

import "time"

// Config holds runtime settings for the Linkfo CLI.
//
// Fields:
//   - ServerURL: base URL of the REST API, including the /api prefix.
//   - TokenStorePath: SQLite file that keeps the session token.
//   - RequestTimeout: upper bound for a single API call.
//   - OnlineCheckInterval: how often the REPL probes the health endpoint.
type Config struct {
	ServerURL           string
	TokenStorePath      string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000/api"
	c.TokenStorePath = "linkfo.db"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 30 * time.Second
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
