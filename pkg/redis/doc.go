// Package redis opens the go-redis client used by the Redis slug registry.
//
// [Config] is populated from REDIS_* environment variables with caarlos0/env.
// [Open] pings the server and retries with linear backoff; [Healthcheck] and
// [Shutdown] plug into the CLI's ping command and teardown.
//
//	client, err := redis.Open(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer redis.Shutdown(client)(ctx)
//
//	registry := redisstore.New(client, "posts")
//
// Errors are sentinels joined with the driver error: [ErrEmptyConnectionURL],
// [ErrFailedToParseURL], [ErrConnectionFailed] and [ErrHealthcheckFailed].
package redis
