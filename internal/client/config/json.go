package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/coderefine/internal/flagx"
	"github.com/dmitrijs2005/coderefine/internal/timex"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; when absent, no JSON file is loaded.
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

	config.ServerEndpointAddr = c.ServerEndpointAddr
	config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
	config.OnlineCheckInterval = time.Duration(c.OnlineCheckInterval.Duration)
}
