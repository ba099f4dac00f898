package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadAppliesDefaults(t *testing.T) {
	resetViper(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "data/entities.json", cfg.Graph.EntitiesPath)
	assert.Equal(t, uint32(3), cfg.Graph.ReloadMaxFailures)
	assert.Equal(t, 30, cfg.Graph.ReloadOpenTimeoutSeconds)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	resetViper(t)

	require.NoError(t, os.Setenv("KGQUERY_SERVER_HOST", "0.0.0.0"))
	require.NoError(t, os.Setenv("KGQUERY_LOG_LEVEL", "debug"))
	t.Cleanup(func() {
		os.Unsetenv("KGQUERY_SERVER_HOST")
		os.Unsetenv("KGQUERY_LOG_LEVEL")
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingConfigFileIsNotAnError(t *testing.T) {
	resetViper(t)
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	_, err = Load()
	assert.NoError(t, err)
}
