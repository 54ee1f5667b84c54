package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "./emprendeuni.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"8080\"\njwt_secret: desde-archivo\n"), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "desde-archivo", cfg.JWTSecret)
	// Lo no declarado en el archivo conserva el valor por defecto
	assert.Equal(t, "./emprendeuni.db", cfg.DBPath)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"8080\"\n"), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PORT", "9090")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadIgnoresMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/no/existe/config.yaml")
	t.Setenv("PORT", "")

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
}
