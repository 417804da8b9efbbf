package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/payref/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.False(t, cfg.Server.Debug)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "text", cfg.Logger.Format)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payref.yaml")
	content := `server:
  address: ":9090"
  read_timeout: 5s
logger:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payref.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  address: \":9090\"\n"), 0o600))

	t.Setenv("PAYREF_SERVER__ADDRESS", ":7070")
	t.Setenv("PAYREF_SERVER__WRITE_TIMEOUT", "1m")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Address)
	assert.Equal(t, time.Minute, cfg.Server.WriteTimeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidLoggerFormat(t *testing.T) {
	t.Setenv("PAYREF_LOGGER__FORMAT", "xml")

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate config")
}

func TestLoggerConfig_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, config.LoggerConfig{Level: "debug"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, config.LoggerConfig{Level: "WARN"}.SlogLevel())
	assert.Equal(t, slog.LevelError, config.LoggerConfig{Level: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, config.LoggerConfig{Level: ""}.SlogLevel())
}

func TestLoggerConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := config.LoggerConfig{Level: "info", Format: "json"}.NewLogger(&buf)

	logger.Debug("hidden")
	logger.Info("shown", "reference", "RF97C2H5OH")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"reference":"RF97C2H5OH"`)
}
