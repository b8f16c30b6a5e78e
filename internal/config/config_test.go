// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkcut/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lctreplay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.False(t, cfg.Replay.FailFast)
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: json
replay:
  fail_fast: true
`)
	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Replay.FailFast)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: debug\n")
	t.Setenv("LCTREPLAY_LOGGING_LEVEL", "error")
	t.Setenv("LCTREPLAY_REPLAY_FAIL_FAST", "true")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.Level)
	assert.True(t, cfg.Replay.FailFast)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err, "an explicit path must exist")

	_, err = config.LoadConfig(writeConfig(t, "logging:\n  level: loud\n"))
	require.ErrorIs(t, err, config.ErrInvalidLogLevel)

	_, err = config.LoadConfig(writeConfig(t, "logging:\n  format: xml\n"))
	require.ErrorIs(t, err, config.ErrInvalidLogFormat)

	_, err = config.LoadConfig(writeConfig(t, "logging: [unclosed\n"))
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := config.NewLogger(config.LoggingConfig{Level: "WARN", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	logger, err = config.NewLogger(config.LoggingConfig{Level: "debug", Format: "text"}, &buf)
	require.NoError(t, err)
	logger.Debug("trace")
	assert.Contains(t, buf.String(), "msg=trace")

	_, err = config.NewLogger(config.LoggingConfig{Level: "info", Format: "yaml"}, &buf)
	assert.ErrorIs(t, err, config.ErrInvalidLogFormat)
	_, err = config.NewLogger(config.LoggingConfig{Level: "", Format: "text"}, &buf)
	assert.ErrorIs(t, err, config.ErrInvalidLogLevel)
}
