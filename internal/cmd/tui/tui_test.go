package tui

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/louisbranch/renderdemo/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	require.NoError(t, err)
	assert.Equal(t, "/", cfg.Start)
	assert.Empty(t, cfg.LogFile)
	assert.False(t, cfg.Debug)
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("RENDERDEMO_TUI_START", "/dashboard")
	t.Setenv("RENDERDEMO_TUI_LOG_FILE", "/tmp/from-env.log")

	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-log-file", "/tmp/from-flag.log", "-debug"})
	require.NoError(t, err)
	assert.Equal(t, "/dashboard", cfg.Start)
	assert.Equal(t, "/tmp/from-flag.log", cfg.LogFile)
	assert.True(t, cfg.Debug)
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_, err := ParseConfig(fs, []string{"-nope"})
	assert.Error(t, err)
}

func TestNewLoggerWithoutFileIsNop(t *testing.T) {
	logger, err := NewLogger(Config{})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
}

func renderOnceToFile(t *testing.T, cfg Config) string {
	t.Helper()
	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	viewLogger, err := ViewLogger(logger)
	require.NoError(t, err)

	echo := view.NewEcho(view.WithLogger(viewLogger))
	echo.Render()
	logger.Info("rendered")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	return string(data)
}

func TestViewLoggerWritesRenderTraceWithDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tui.log")
	data := renderOnceToFile(t, Config{LogFile: path, Debug: true})
	assert.Contains(t, data, view.RenderTrace)
	assert.Contains(t, data, `"level":"debug"`)
	assert.Contains(t, data, `"logger":"view"`)
}

func TestViewLoggerDropsRenderTraceWithoutDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tui.log")
	data := renderOnceToFile(t, Config{LogFile: path})
	assert.NotContains(t, data, view.RenderTrace)
	assert.Contains(t, data, "rendered")
}

func TestRunRejectsUnknownStart(t *testing.T) {
	t.Setenv("RENDERDEMO_OTEL_ENABLED", "false")

	err := Run(context.Background(), Config{Start: "/missing"})
	assert.Error(t, err)
}
