package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"KAMION_BASE_URL", "KAMION_TIMEOUT", "KAMION_RETRY_ATTEMPTS", "KAMION_DEBOUNCE",
		"KAMION_PER_PAGE", "KAMION_LOG_LEVEL", "KAMION_TOKEN", "KAMION_EMAIL",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "https://api.dev.kamion.co/api", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Search.DebounceDelay)
	assert.Equal(t, 2*time.Second, cfg.UI.SplashDelay)
	require.NoError(t, cfg.Validate())
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "kamion.yaml")
	yamlDoc := `
api:
  base_url: http://localhost:8080
  timeout: 3s
search:
  debounce_delay: 250ms
  per_page: 20
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o600))

	t.Setenv("KAMION_PER_PAGE", "50")
	t.Setenv("KAMION_TOKEN", "tok-1")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Search.DebounceDelay)
	assert.Equal(t, 50, cfg.Search.PerPage, "env wins over file")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "tok-1", cfg.Session.Token)
	// untouched sections keep defaults
	assert.Equal(t, 2*time.Second, cfg.UI.SplashDelay)
}

func TestLoad_BadEnvDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("KAMION_TIMEOUT", "soon")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAMION_TIMEOUT")
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base url", func(c *Config) { c.API.BaseURL = " " }},
		{"relative base url", func(c *Config) { c.API.BaseURL = "/api" }},
		{"zero timeout", func(c *Config) { c.API.Timeout = 0 }},
		{"zero retry attempts", func(c *Config) { c.API.RetryAttempts = 0 }},
		{"zero debounce", func(c *Config) { c.Search.DebounceDelay = 0 }},
		{"per page too large", func(c *Config) { c.Search.PerPage = 101 }},
		{"negative splash", func(c *Config) { c.UI.SplashDelay = -time.Second }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestGet(t *testing.T) {
	t.Setenv("KAMION_TEST_KEY", "")
	assert.Equal(t, "fallback", Get("KAMION_TEST_KEY", "fallback"))
	t.Setenv("KAMION_TEST_KEY", "set")
	assert.Equal(t, "set", Get("KAMION_TEST_KEY", "fallback"))
}

func TestLoadEnvFile_Missing(t *testing.T) {
	require.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
}
