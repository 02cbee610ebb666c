package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Address)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load([]string{"-a", ":9090", "-l", "debug"})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvFallback(t *testing.T) {
	t.Setenv("RUN_ADDRESS", ":7070")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Address)
}

func TestLoad_FlagBeatsEnv(t *testing.T) {
	t.Setenv("RUN_ADDRESS", ":7070")

	cfg, err := Load([]string{"-a", ":9090"})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Address)
}
