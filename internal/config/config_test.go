package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 3001, cfg.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "./data", cfg.Data.Dir)
	assert.Equal(t, []string{"cse", "ece", "aids"}, cfg.Data.Branches)
	assert.Equal(t, ',', cfg.DelimiterRune())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TIMETABLE_ENV", EnvProduction)
	t.Setenv("TIMETABLE_PORT", "8080")
	t.Setenv("TIMETABLE_LOG_LEVEL", "debug")
	t.Setenv("TIMETABLE_DATA_DELIMITER", ";")
	t.Setenv("TIMETABLE_DATA_BRANCHES", "CSE, Mech ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ';', cfg.DelimiterRune())
	assert.Equal(t, []string{"cse", "mech"}, cfg.Data.Branches)
}

func TestDelimiterRuneFallback(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, ',', cfg.DelimiterRune())
}
