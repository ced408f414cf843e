// Package config handles configuration for the CLI client.
package config

import "time"

// Config holds runtime settings for the CodeRefine CLI client.
type Config struct {
	ServerEndpointAddr  string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates Config with development defaults. The request
// timeout is generous: one analysis call waits on the LLM provider.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:8080"
	c.RequestTimeout = 3 * time.Minute
	c.OnlineCheckInterval = 30 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
