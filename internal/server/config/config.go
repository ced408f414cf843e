// Package config handles configuration for the server component,
// including defaults, environment, JSON overlay, and command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the CodeRefine server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP API.
//   - DatabaseDSN: PostgreSQL DSN (pgx); empty selects the JSON-file backend.
//   - DataDir: directory holding the JSON-file stores.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - AccessTokenValidityDuration / RefreshTokenValidityDuration: token lifetimes.
//   - GroqAPIKey / GroqBaseURL: credentials and endpoint for the LLM provider.
//   - LLMTimeout: upper bound on one completion HTTP exchange.
type Config struct {
	EndpointAddrHTTP             string
	DatabaseDSN                  string
	DataDir                      string
	SecretKey                    string
	AccessTokenValidityDuration  time.Duration
	RefreshTokenValidityDuration time.Duration
	GroqAPIKey                   string
	GroqBaseURL                  string
	LLMTimeout                   time.Duration
}

// LoadDefaults populates Config with development defaults. The Groq API key
// is taken from the GROQ_API_KEY environment variable (main loads .env
// first), never from a compiled-in default.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.DatabaseDSN = ""
	c.DataDir = "data"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 15 * time.Minute
	c.RefreshTokenValidityDuration = 24 * time.Hour
	c.GroqAPIKey = os.Getenv("GROQ_API_KEY")
	c.GroqBaseURL = ""
	c.LLMTimeout = 2 * time.Minute
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
