package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturia/pkg/config"
)

func TestLoad_SinCredencialEsFatal(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := config.Load()

	require.Error(t, err, "sin GEMINI_API_KEY la aplicación no debe arrancar")
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "clave-de-prueba")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "clave-de-prueba", cfg.AI.APIKey)
	assert.Equal(t, "gemini-1.5-flash", cfg.AI.Model)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "facturia", cfg.App.Name)
	assert.Equal(t, "facturia.db", cfg.Store.Path)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PATH", "/var/lib/facturia/data.db")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "/var/lib/facturia/data.db", cfg.Store.Path)
}
