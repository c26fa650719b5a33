package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "FRM Case Management API", cfg.Service.Name)
	assert.Equal(t, "1.0.0", cfg.Service.Version)
	assert.Equal(t, "0.0.0.0:13000", cfg.HTTP.Addr())
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, DefaultAllowedOrigins, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 100, cfg.Mock.TotalItems)
	assert.Equal(t, 20, cfg.Mock.DefaultPageSize)
	assert.Equal(t, 100, cfg.Mock.MaxPageSize)
	assert.Equal(t, 5, cfg.Mock.SummarySize)
	assert.Zero(t, cfg.Mock.Seed)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MOCK_SEED", "42")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, int64(42), cfg.Mock.Seed)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mock.yaml")
	contents := []byte(`
server:
  port: 9000
  metrics_enabled: true
mock:
  total_items: 250
  max_page_size: 50
`)
	require.NoError(t, os.WriteFile(path, contents, 0o600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.True(t, cfg.HTTP.MetricsEnabled)
	assert.Equal(t, 250, cfg.Mock.TotalItems)
	assert.Equal(t, 50, cfg.Mock.MaxPageSize)
	assert.Equal(t, 20, cfg.Mock.DefaultPageSize)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.Error(t, err)
}

func TestLoadFlagsTakePrecedence(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", 0, "")
	flags.String("host", "", "")
	require.NoError(t, flags.Parse([]string{"--port", "7000"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.HTTP.Port)
	// Unset flags must not clobber defaults.
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "port too large", mutate: func(c *Config) { c.HTTP.Port = 70000 }},
		{name: "zero port", mutate: func(c *Config) { c.HTTP.Port = 0 }},
		{name: "zero page size", mutate: func(c *Config) { c.Mock.DefaultPageSize = 0 }},
		{name: "zero max page size", mutate: func(c *Config) { c.Mock.MaxPageSize = 0 }},
		{name: "negative total", mutate: func(c *Config) { c.Mock.TotalItems = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load("", nil)
			require.NoError(t, err)
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
