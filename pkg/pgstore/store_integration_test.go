//go:build integration

package pgstore_test

import (
	"context"
	"embed"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dmitrymomot/slugger"
	"github.com/dmitrymomot/slugger/pkg/db"
	"github.com/dmitrymomot/slugger/pkg/logger"
	"github.com/dmitrymomot/slugger/pkg/pgstore"
	"github.com/dmitrymomot/slugger/pkg/slug"
)

//go:embed testdata/migrations/*.sql
var migrations embed.FS

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("slugger"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(wait.ForListeningPort("5432/tcp").WithStartupTimeout(2*time.Minute)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	connString, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := db.Connect(ctx, db.Config{
		ConnectionString: connString,
		RetryAttempts:    5,
		RetryInterval:    time.Second,
		MaxOpenConns:     4,
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.Migrate(ctx, pool, migrations, "testdata/migrations", "slugger_migrations", logger.NewNope()))
	require.NoError(t, db.Healthcheck(pool)(ctx))
	return pool
}

func TestPostgres(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `INSERT INTO blogs (id, name) VALUES (1, 'one'), (2, 'two')`)
	require.NoError(t, err)

	store := pgstore.New(pool, "posts")
	s := slugger.New(store)

	insert := func(blogID int64, title string, unique slugger.Unique) string {
		t.Helper()

		rec := slugger.NewMap(map[string]any{"title": title, "blog_id": blogID}, "id")
		got, err := s.Build(ctx, rec, slugger.Config{
			Source:       "title",
			Unique:       unique,
			ParentColumn: "blog_id",
		})
		require.NoError(t, err)
		_, err = pool.Exec(ctx, `INSERT INTO posts (blog_id, title, slug) VALUES ($1, $2, $3)`, blogID, title, got)
		require.NoError(t, err)
		return got
	}

	t.Run("all", func(t *testing.T) {
		assert.Equal(t, "hello-world", insert(1, "Hello World", slugger.UniqueAll))
		assert.Equal(t, "hello-world-1", insert(2, "Hello World", slugger.UniqueAll))
		assert.Equal(t, "hello-world-2", insert(1, "Hello  World!", slugger.UniqueAll))
	})

	t.Run("parent", func(t *testing.T) {
		assert.Equal(t, "intro", insert(1, "Intro", slugger.UniqueParent))
		assert.Equal(t, "intro", insert(2, "Intro", slugger.UniqueParent))
		assert.Equal(t, "intro-1", insert(1, "Intro", slugger.UniqueParent))
	})

	t.Run("underscore is not a wildcard", func(t *testing.T) {
		_, err := pool.Exec(ctx, `INSERT INTO posts (blog_id, title, slug) VALUES (1, 'x', 'snake-case')`)
		require.NoError(t, err)

		n, err := store.CountSimilar(ctx, slugger.Query{Column: "slug", Slug: "snake_", Separator: "case"})
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("find by slug", func(t *testing.T) {
		row, err := store.FindBy(ctx, "slug", "hello-world-1")
		require.NoError(t, err)
		assert.Equal(t, int64(2), row["blog_id"])

		_, err = store.FindBy(ctx, "slug", "missing")
		require.ErrorIs(t, err, pgstore.ErrNotFound)
	})

	t.Run("backfill", func(t *testing.T) {
		_, err := pool.Exec(ctx, `INSERT INTO posts (blog_id, title, slug) VALUES
			(1, 'Release Notes', NULL), (1, 'Release Notes', ''), (2, 'Release Notes', NULL)`)
		require.NoError(t, err)

		cfg, err := slugger.DefaultDefaults().Resolve(slugger.Config{
			Source:       "title",
			Unique:       slugger.UniqueParent,
			ParentColumn: "blog_id",
		})
		require.NoError(t, err)

		n, err := pgstore.Backfill{
			Table:     "posts",
			KeyColumn: "id",
			Config:    cfg,
			Normalize: slug.Normalize,
		}.Run(ctx, pool)
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		rows, err := pool.Query(ctx, `SELECT slug FROM posts WHERE title = 'Release Notes' ORDER BY id`)
		require.NoError(t, err)
		var got []string
		for rows.Next() {
			var s string
			require.NoError(t, rows.Scan(&s))
			got = append(got, s)
		}
		require.NoError(t, rows.Err())
		assert.Equal(t, []string{"release-notes", "release-notes-1", "release-notes"}, got)
	})
}
