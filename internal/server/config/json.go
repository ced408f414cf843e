package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/coderefine/internal/flagx"
	"github.com/dmitrijs2005/coderefine/internal/timex"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files. It uses timex.Duration for interval fields, which
// parses both string values such as "15m" and integer nanoseconds. After
// unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrHTTP             string         `json:"endpoint_addr_http"`
	DatabaseDSN                  string         `json:"database_dsn"`
	DataDir                      string         `json:"data_dir"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	GroqAPIKey                   string         `json:"groq_api_key"`
	GroqBaseURL                  string         `json:"groq_base_url"`
	LLMTimeout                   timex.Duration `json:"llm_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; when absent, no JSON file is loaded. An unreadable or invalid file
// panics: a config file that was explicitly pointed at must be usable.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.DataDir = c.DataDir
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	config.RefreshTokenValidityDuration = time.Duration(c.RefreshTokenValidityDuration.Duration)
	config.GroqAPIKey = c.GroqAPIKey
	config.GroqBaseURL = c.GroqBaseURL
	config.LLMTimeout = time.Duration(c.LLMTimeout.Duration)
}
