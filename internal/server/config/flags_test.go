package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_OverridesDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin",
		"-a", "localhost:9090",
		"-d", "postgres://localhost/coderefine",
		"-f", "/tmp/coderefine",
		"-s", "another_secret",
		"-t", "30",
		"-r", "2880",
		"-k", "gsk_flag",
		"-e", "http://localhost:1234/v1",
	}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "localhost:9090", cfg.EndpointAddrHTTP)
	assert.Equal(t, "postgres://localhost/coderefine", cfg.DatabaseDSN)
	assert.Equal(t, "/tmp/coderefine", cfg.DataDir)
	assert.Equal(t, "another_secret", cfg.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 2880*time.Minute, cfg.RefreshTokenValidityDuration)
	assert.Equal(t, "gsk_flag", cfg.GroqAPIKey)
	assert.Equal(t, "http://localhost:1234/v1", cfg.GroqBaseURL)
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-config", "somefile.json", "-a", ":7070"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":7070", cfg.EndpointAddrHTTP)
}
