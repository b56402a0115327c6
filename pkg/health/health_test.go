package health_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugger/pkg/health"
)

func TestRun(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("no checks is healthy", func(t *testing.T) {
		t.Parallel()

		report, err := health.Run(ctx, nil)
		require.NoError(t, err)
		assert.True(t, report.Healthy())
		assert.Empty(t, report.Results)
	})

	t.Run("all pass", func(t *testing.T) {
		t.Parallel()

		report, err := health.Run(ctx, health.Checks{
			"redis":    func(context.Context) error { return nil },
			"postgres": func(context.Context) error { return nil },
		})
		require.NoError(t, err)
		assert.True(t, report.Healthy())
		require.Len(t, report.Results, 2)
		assert.Equal(t, "postgres", report.Results[0].Name)
		assert.Equal(t, "redis", report.Results[1].Name)
	})

	t.Run("one fails", func(t *testing.T) {
		t.Parallel()

		errRefused := errors.New("connection refused")
		report, err := health.Run(ctx, health.Checks{
			"mongo": func(context.Context) error { return errRefused },
			"redis": func(context.Context) error { return nil },
		})
		require.ErrorIs(t, err, health.ErrCheckFailed)
		require.ErrorIs(t, err, errRefused)
		assert.Contains(t, err.Error(), "mongo: connection refused")
		assert.False(t, report.Healthy())
		assert.Equal(t, health.StatusUnhealthy, report.Results[0].Status)
		assert.Equal(t, health.StatusHealthy, report.Results[1].Status)
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()

		report, err := health.Run(ctx, health.Checks{
			"dynamo": func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		}, health.WithTimeout(20*time.Millisecond))
		require.ErrorIs(t, err, health.ErrCheckTimeout)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.False(t, report.Healthy())
	})
}

func TestReport_WriteTo(t *testing.T) {
	t.Parallel()

	report := health.Report{
		Status: health.StatusUnhealthy,
		Results: []health.Result{
			{Name: "postgres", Status: health.StatusHealthy},
			{Name: "redis", Status: health.StatusUnhealthy, Error: "refused"},
		},
	}

	var buf bytes.Buffer
	n, err := report.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "postgres")
	assert.Contains(t, string(lines[1]), "refused")
}
