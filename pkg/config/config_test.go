package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-dashboard-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 4000, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:4000", cfg.HTTP.Addr())
	assert.Equal(t, "*", cfg.HTTP.AllowOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Zero(t, cfg.KPI.Seed)
	assert.True(t, cfg.HTTP.Docs)
}

func TestLoad_DocsDeshabilitados(t *testing.T) {
	t.Setenv("SWAGGER_ENABLED", "false")
	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.False(t, cfg.HTTP.Docs)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("KPI_SEED", "42")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:5173")

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, int64(42), cfg.KPI.Seed)
	assert.Equal(t, "http://localhost:5173", cfg.HTTP.AllowOrigins)
}

func TestLoad_FlagsTienenPrioridad(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("HTTP_HOST", "10.0.0.1")

	cfg, err := config.Load([]string{"--port", "9090", "--log-level", "warn"})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "10.0.0.1", cfg.HTTP.Host, "sin flag se mantiene la variable de entorno")
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_PuertoInvalido(t *testing.T) {
	_, err := config.Load([]string{"--port", "70000"})
	assert.Error(t, err)
}

func TestLoad_FlagDesconocido(t *testing.T) {
	_, err := config.Load([]string{"--nope"})
	assert.Error(t, err)
}

func TestLoad_PuertoNoNumericoUsaDefault(t *testing.T) {
	t.Setenv("HTTP_PORT", "abc")
	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.HTTP.Port)
}
