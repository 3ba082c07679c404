package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "127.0.0.1:8344", cfg.HTTP.Addr)
	assert.Equal(t, filepath.Join("data", "inventory.db"), cfg.DB.Path())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SHELFTRACK_ADDR", "127.0.0.1:9000")
	t.Setenv("SHELFTRACK_DATA_DIR", "/tmp/shelftrack")
	t.Setenv("SHELFTRACK_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, filepath.Join("/tmp/shelftrack", "inventory.db"), cfg.DB.Path())
}
