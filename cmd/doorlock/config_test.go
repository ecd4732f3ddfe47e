package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// missingEnvFile points at a file that does not exist so a local .env
// cannot influence the result
func missingEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), ".env")
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "1234", cfg.PIN)
	assert.False(t, cfg.StrictTransitions)
	assert.False(t, cfg.PrintGraph)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("DOORLOCK_PIN", "4321")
	t.Setenv("DOORLOCK_STRICT_TRANSITIONS", "true")
	t.Setenv("DOORLOCK_LOG_LEVEL", "debug")
	t.Setenv("DOORLOCK_LOG_FORMAT", "json")

	cfg, err := loadConfig(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "4321", cfg.PIN)
	assert.True(t, cfg.StrictTransitions)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	path := writeEnvFile(t, "DOORLOCK_PIN=9999\nDOORLOCK_PRINT_GRAPH=true\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.PIN)
	assert.True(t, cfg.PrintGraph)

	_, set := os.LookupEnv("DOORLOCK_PRINT_GRAPH")
	assert.False(t, set, "env file values must not leak into the process environment")
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	path := writeEnvFile(t, "DOORLOCK_PIN=9999\n")
	t.Setenv("DOORLOCK_PIN", "1111")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "1111", cfg.PIN)
}

func TestLoadConfig_InvalidFormat(t *testing.T) {
	t.Setenv("DOORLOCK_LOG_FORMAT", "xml")

	_, err := loadConfig(missingEnvFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")
}

func TestLoadConfig_InvalidBool(t *testing.T) {
	t.Setenv("DOORLOCK_STRICT_TRANSITIONS", "maybe")

	_, err := loadConfig(missingEnvFile(t))
	require.ErrorIs(t, err, errParsingConfig)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(config{LogLevel: slog.LevelInfo, LogFormat: "json"}, &buf)

	logger.Debug("hidden")
	logger.Info("shown", "k", "v")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}
