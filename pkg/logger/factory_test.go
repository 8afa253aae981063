package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/medverify/pkg/logger"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")

		entry := decodeEntry(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")
		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "msg=hello")
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("includes static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("msg")
		assert.Equal(t, "test", decodeEntry(t, buf)["svc"])
	})

	t.Run("nil output is ignored", func(t *testing.T) {
		assert.NotPanics(t, func() {
			logger.New(logger.WithOutput(nil))
		})
	})
}

func TestWithContextValue(t *testing.T) {
	type runIDKey struct{}

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextValue("run_id", runIDKey{}),
	)

	t.Run("injects value present in context", func(t *testing.T) {
		buf.Reset()
		ctx := context.WithValue(context.Background(), runIDKey{}, "run-1")
		log.InfoContext(ctx, "msg")
		assert.Equal(t, "run-1", decodeEntry(t, buf)["run_id"])
	})

	t.Run("skips absent value", func(t *testing.T) {
		buf.Reset()
		log.InfoContext(context.Background(), "msg")
		_, ok := decodeEntry(t, buf)["run_id"]
		assert.False(t, ok)
	})

	t.Run("survives With", func(t *testing.T) {
		buf.Reset()
		ctx := context.WithValue(context.Background(), runIDKey{}, "run-2")
		log.With("component", "cli").WithGroup("g").InfoContext(ctx, "msg")
		entry := decodeEntry(t, buf)
		assert.Equal(t, "cli", entry["component"])
		assert.NotNil(t, entry["g"])
	})
}

func TestWithContextExtractors(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
			return slog.String("static", "yes"), true
		}),
	)
	log.Info("msg")
	assert.Equal(t, "yes", decodeEntry(t, buf)["static"])
}

func TestWithEnvironment(t *testing.T) {
	t.Run("development is debug text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("development", "medverify"), logger.WithOutput(buf))
		log.Debug("msg")
		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "service=medverify")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production is info json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("prod", "medverify"), logger.WithOutput(buf))
		log.Debug("dropped")
		assert.Empty(t, buf.String())

		log.Info("msg")
		entry := decodeEntry(t, buf)
		assert.Equal(t, "medverify", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("staging", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("STAGE", ""), logger.WithOutput(buf))
		log.Info("msg")
		entry := decodeEntry(t, buf)
		assert.Equal(t, "staging", entry["env"])
		_, ok := entry["service"]
		assert.False(t, ok)
	})

	t.Run("later options override environment defaults", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment("development", "medverify"),
			logger.WithFormat(logger.FormatJSON),
			logger.WithLevel(slog.LevelInfo),
			logger.WithOutput(buf),
		)
		log.Debug("dropped")
		log.Info("msg")
		assert.Equal(t, "development", decodeEntry(t, buf)["env"])
	})
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := logger.ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := logger.ParseLevel("loud")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := logger.ParseFormat("Text")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatText, f)

	f, err = logger.ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatJSON, f)

	_, err = logger.ParseFormat("xml")
	assert.Error(t, err)
}
