package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/slugger"
	"github.com/dmitrymomot/slugger/pkg/db"
	"github.com/dmitrymomot/slugger/pkg/dynamostore"
	"github.com/dmitrymomot/slugger/pkg/health"
	"github.com/dmitrymomot/slugger/pkg/memstore"
	"github.com/dmitrymomot/slugger/pkg/mongo"
	"github.com/dmitrymomot/slugger/pkg/mongostore"
	"github.com/dmitrymomot/slugger/pkg/pgstore"
	"github.com/dmitrymomot/slugger/pkg/redis"
	"github.com/dmitrymomot/slugger/pkg/redisstore"
)

const (
	backendMemory   = "memory"
	backendPostgres = "postgres"
	backendMongo    = "mongo"
	backendRedis    = "redis"
	backendDynamo   = "dynamo"
)

// ErrUnknownBackend is returned for a --backend value the CLI cannot open.
var ErrUnknownBackend = errors.New("cli: unknown backend")

// backend is an opened uniqueness store and the hook that releases it.
type backend struct {
	counter slugger.Counter
	close   func(context.Context) error
	// register stores a resolved slug; nil when the backend reads host-owned data.
	register func(ctx context.Context, q slugger.Query, owner any) error
}

func noClose(context.Context) error { return nil }

// openBackend connects to name using its environment configuration.
// The memory backend is seeded with rows keyed by keyColumn.
func openBackend(ctx context.Context, name, table, keyColumn string, rows []map[string]any) (*backend, error) {
	switch name {
	case backendMemory:
		store := memstore.New(keyColumn)
		for _, row := range rows {
			store.Save(row)
		}
		return &backend{counter: store, close: noClose}, nil

	case backendPostgres:
		cfg, err := env.ParseAs[db.Config]()
		if err != nil {
			return nil, err
		}
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &backend{counter: pgstore.New(pool, table), close: db.Shutdown(pool)}, nil

	case backendMongo:
		cfg, err := env.ParseAs[mongo.Config]()
		if err != nil {
			return nil, err
		}
		client, err := mongo.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		coll := client.Database(cfg.Database).Collection(table)
		return &backend{counter: mongostore.New(coll), close: mongo.Shutdown(client)}, nil

	case backendRedis:
		cfg, err := env.ParseAs[redis.Config]()
		if err != nil {
			return nil, err
		}
		client, err := redis.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		store := redisstore.New(client, table)
		return &backend{counter: store, close: redis.Shutdown(client), register: store.Put}, nil

	case backendDynamo:
		cfg, err := env.ParseAs[dynamostore.Config]()
		if err != nil {
			return nil, err
		}
		client, err := dynamostore.NewClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &backend{counter: dynamostore.New(client, table), close: noClose}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// healthChecks opens every named backend and returns its check with a combined close hook.
func healthChecks(ctx context.Context, names []string, table string) (health.Checks, func(context.Context) error, error) {
	checks := health.Checks{}
	var closers []func(context.Context) error
	closeAll := func(ctx context.Context) error {
		var errs []error
		for _, c := range closers {
			errs = append(errs, c(ctx))
		}
		return errors.Join(errs...)
	}

	for _, name := range names {
		switch name {
		case backendPostgres:
			cfg, err := env.ParseAs[db.Config]()
			if err != nil {
				return nil, closeAll, err
			}
			cfg.RetryAttempts = 1
			pool, err := db.Connect(ctx, cfg)
			if err != nil {
				checks[name] = failed(err)
				continue
			}
			closers = append(closers, db.Shutdown(pool))
			checks[name] = db.Healthcheck(pool)

		case backendRedis:
			cfg, err := env.ParseAs[redis.Config]()
			if err != nil {
				return nil, closeAll, err
			}
			cfg.RetryAttempts = 1
			client, err := redis.Open(ctx, cfg)
			if err != nil {
				checks[name] = failed(err)
				continue
			}
			closers = append(closers, redis.Shutdown(client))
			checks[name] = redis.Healthcheck(client)

		case backendMongo:
			cfg, err := env.ParseAs[mongo.Config]()
			if err != nil {
				return nil, closeAll, err
			}
			cfg.RetryAttempts = 1
			client, err := mongo.New(ctx, cfg)
			if err != nil {
				checks[name] = failed(err)
				continue
			}
			closers = append(closers, mongo.Shutdown(client))
			checks[name] = mongo.Healthcheck(client)

		case backendDynamo:
			cfg, err := env.ParseAs[dynamostore.Config]()
			if err != nil {
				return nil, closeAll, err
			}
			client, err := dynamostore.NewClient(ctx, cfg)
			if err != nil {
				checks[name] = failed(err)
				continue
			}
			checks[name] = dynamostore.Healthcheck(client, table)

		case backendMemory:
			checks[name] = func(context.Context) error { return nil }

		default:
			return nil, closeAll, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
		}
	}

	return checks, closeAll, nil
}

func failed(err error) health.CheckFunc {
	return func(context.Context) error { return err }
}
