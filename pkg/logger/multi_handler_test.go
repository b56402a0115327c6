package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiHandler(t *testing.T) {
	t.Parallel()

	var info, errs bytes.Buffer
	h := newMultiHandler(
		slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	log := slog.New(h).WithGroup("slug").With(slog.String("column", "slug"))

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))

	log.Info("generated")
	log.Error("query failed")

	assert.Contains(t, info.String(), "generated")
	assert.Contains(t, info.String(), "query failed")
	assert.NotContains(t, errs.String(), "generated")
	assert.Contains(t, errs.String(), "slug.column=slug")
}
