package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFrom(t *testing.T, dir string) *Config {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	return cfg
}

func TestLoad_Defaults(t *testing.T) {
	cfg := loadFrom(t, t.TempDir())

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "dinescout.db", cfg.Store.DatabaseURL)
	assert.Equal(t, "claude-3-5-sonnet-20241022", cfg.Anthropic.Model)
	assert.Equal(t, 1500, cfg.Anthropic.MaxTokens)
	assert.Equal(t, "https://places.googleapis.com/v1", cfg.Places.BaseURL)
	assert.Equal(t, 2.0, cfg.Places.LookupsPerSecond)
	assert.Equal(t, "Pittsburgh", cfg.Discover.City)
	assert.Equal(t, "PA", cfg.Discover.State)
	assert.Equal(t, []string{"llm", "scrape", "places"}, cfg.Discover.Strategies)
	assert.True(t, cfg.Discover.Enrich)
	assert.Equal(t, 15, cfg.Scrape.TimeoutSecs)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := `
store:
  driver: postgres
  database_url: postgres://localhost/dinescout
  pool:
    max_conns: 20
discover:
  city: Cleveland
  state: OH
server:
  port: 9090
`
	require.NoError(t, os.WriteFile(dir+"/config.yaml", []byte(file), 0o644))

	cfg := loadFrom(t, dir)

	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "postgres://localhost/dinescout", cfg.Store.DatabaseURL)
	require.NotNil(t, cfg.Store.Pool)
	assert.Equal(t, int32(20), cfg.Store.Pool.MaxConns)
	assert.Equal(t, "Cleveland", cfg.Discover.City)
	assert.Equal(t, 9090, cfg.Server.Port)
	// Untouched sections keep their defaults.
	assert.Equal(t, "claude-3-5-sonnet-20241022", cfg.Anthropic.Model)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DINESCOUT_STORE_DRIVER", "postgres")
	t.Setenv("DINESCOUT_LOG_LEVEL", "debug")

	cfg := loadFrom(t, t.TempDir())

	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ProviderKeyEnvVars(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("GOOGLE_PLACES_API_KEY", "places-test")

	cfg := loadFrom(t, t.TempDir())

	assert.Equal(t, "sk-ant-test", cfg.Anthropic.Key)
	assert.Equal(t, "places-test", cfg.Places.Key)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/config.yaml", []byte("store: ["), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read file")
}

func TestInitLogger(t *testing.T) {
	assert.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
	assert.Error(t, InitLogger(LogConfig{Level: "loud", Format: "json"}))
}
