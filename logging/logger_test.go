package logging

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogAdapterForwards(t *testing.T) {
	var buf bytes.Buffer

	logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logger.Debug("debug message", "key", "debug-value")
	logger.Info("info message", "key", "info-value")
	logger.Warn("warn message", "key", "warn-value")
	logger.Error("error message", "key", "error-value")

	out := buf.String()

	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "debug message")
	assert.Contains(t, out, "key=debug-value")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "key=info-value")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "key=error-value")
}

func TestSlogAdapterHonorsHandlerLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	logger.Debug("below threshold")
	logger.Info("below threshold")
	logger.Warn("at threshold")

	out := buf.String()

	assert.NotContains(t, out, "below threshold")
	assert.Contains(t, out, "at threshold")
}

func TestNewSlogLoggerFormats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{format: "text", want: "level=INFO"},
		{format: "json", want: `"level":"INFO"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			r, w, err := os.Pipe()
			require.NoError(t, err)

			prev := os.Stderr
			os.Stderr = w
			defer func() { os.Stderr = prev }()

			logger := NewSlogLogger(slog.LevelInfo, tt.format)
			logger.Info("formatted record", "key", "value")
			logger.Debug("below threshold")

			require.NoError(t, w.Close())

			out, err := io.ReadAll(r)
			require.NoError(t, err)

			assert.Contains(t, string(out), tt.want)
			assert.Contains(t, string(out), "formatted record")
			assert.NotContains(t, string(out), "below threshold")
		})
	}
}

func TestNewDefaultSlogLogger(t *testing.T) {
	var buf bytes.Buffer

	prev := slog.Default()
	defer slog.SetDefault(prev)

	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))

	NewDefaultSlogLogger().Info("through default", "key", "value")

	assert.Contains(t, buf.String(), "through default")
	assert.Contains(t, buf.String(), "key=value")
}

func TestNoOpLogger(t *testing.T) {
	var logger Logger = NoOpLogger{}

	assert.NotPanics(t, func() {
		logger.Debug("dropped", "key", "value")
		logger.Info("dropped")
		logger.Warn("dropped")
		logger.Error("dropped", "key", "value")
	})
}
