package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Info("checkout completed")
	log.Warn("checkout rejected", "item_count", 150)

	out := buf.String()
	assert.NotContains(t, out, "checkout completed")
	assert.Contains(t, out, "checkout rejected")
	assert.Contains(t, out, "item_count=150")
	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.log")
	log := NewWithFile(path, "debug")
	log.Debug("operation saved", "operation", "add")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "operation saved")
}

func TestLogWriter_FallsBackToStderr(t *testing.T) {
	assert.Equal(t, os.Stderr, logWriter(""))
	assert.Equal(t, os.Stderr, logWriter(filepath.Join(t.TempDir(), "missing", "dir", "app.log")))
}
