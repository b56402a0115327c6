// Package db connects slugger to PostgreSQL.
//
// It wraps [github.com/jackc/pgx/v5/pgxpool] with startup retries, a ping-based
// healthcheck, a transaction helper used by the slug backfill and goose migrations
// ([github.com/pressly/goose/v3]).
//
// # Configuration
//
// [Config] is populated from the environment with caarlos0/env:
//
//	DATABASE_CONN_URL           - PostgreSQL connection URL (required)
//	DATABASE_MAX_OPEN_CONNS     - Maximum open connections (default: 4)
//	DATABASE_MIN_CONNS          - Minimum idle connections (default: 0)
//	DATABASE_HEALTHCHECK_PERIOD - Pool health check interval (default: 1m)
//	DATABASE_MAX_CONN_IDLE_TIME - Maximum connection idle time (default: 10m)
//	DATABASE_MAX_CONN_LIFETIME  - Maximum connection lifetime (default: 30m)
//	DATABASE_RETRY_ATTEMPTS     - Connection attempts (default: 3)
//	DATABASE_RETRY_INTERVAL     - Base retry interval (default: 2s)
//	DATABASE_MIGRATIONS_TABLE   - Goose version table (default: slugger_migrations)
//
// # Usage
//
//	pool, err := db.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer db.Shutdown(pool)(ctx)
//
//	err = db.WithTx(ctx, pool, func(tx pgx.Tx) error {
//		store := pgstore.New(tx, "posts")
//		_, err := slugger.Resolve(ctx, store, "hello-world", rec, cfg)
//		return err
//	})
//
// # Migrations
//
//	//go:embed migrations/*.sql
//	var migrations embed.FS
//
//	err := db.Migrate(ctx, pool, migrations, "migrations", cfg.MigrationsTable, log)
//
// # Errors
//
// Failures are reported as sentinel errors joined with the driver error using
// [errors.Join]: [ErrFailedToParseDBConfig], [ErrFailedToOpenDBConnection],
// [ErrHealthcheckFailed], [ErrBeginTx], [ErrCommitTx], [ErrSetDialect] and
// [ErrApplyMigrations].
package db
