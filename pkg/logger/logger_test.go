package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugger/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json with extractor", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(&buf, logger.Config{Level: slog.LevelInfo}, logger.CommandExtractor)

		ctx := logger.WithCommand(context.Background(), "resolve")
		log.InfoContext(ctx, "slug resolved", slog.String("slug", "hello-world-2"))

		entry := decode(t, &buf)
		assert.Equal(t, "slug resolved", entry["msg"])
		assert.Equal(t, "hello-world-2", entry["slug"])
		assert.Equal(t, "resolve", entry["command"])
	})

	t.Run("extractor skipped without value", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(&buf, logger.Config{}, logger.CommandExtractor, nil)
		log.InfoContext(context.Background(), "hi")

		entry := decode(t, &buf)
		assert.NotContains(t, entry, "command")
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(&buf, logger.Config{Level: slog.LevelWarn})
		log.Info("dropped")
		assert.Zero(t, buf.Len())

		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(&buf, logger.Config{Format: "TEXT"})
		log.Info("hello", slog.Int("n", 2))
		assert.True(t, strings.Contains(buf.String(), "msg=hello"))
		assert.Contains(t, buf.String(), "n=2")
	})

	t.Run("attrs and groups keep extractors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(&buf, logger.Config{}, logger.CommandExtractor).
			With(slog.String("backend", "memory"))

		ctx := logger.WithCommand(context.Background(), "make")
		log.InfoContext(ctx, "done")

		entry := decode(t, &buf)
		assert.Equal(t, "memory", entry["backend"])
		assert.Equal(t, "make", entry["command"])
	})
}

func TestNewWithSentry_NoDSN(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithSentry(&buf, logger.Config{}, logger.CommandExtractor)
	log.ErrorContext(logger.WithCommand(context.Background(), "ping"), "backend down")

	entry := decode(t, &buf)
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "ping", entry["command"])
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	log.Error("discarded")
}
