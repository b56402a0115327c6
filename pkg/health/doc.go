// Package health runs named backend checks in parallel with a shared timeout.
//
// The slugger CLI's ping command builds [Checks] from the configured backends and
// prints the [Report]:
//
//	report, err := health.Run(ctx, health.Checks{
//		"postgres": db.Healthcheck(pool),
//		"redis":    redis.Healthcheck(client),
//	}, health.WithTimeout(3*time.Second), health.WithLogger(log))
//	report.WriteTo(os.Stdout)
//
// A failed run returns [ErrCheckFailed] joined with each check's error, prefixed by
// its name. Checks interrupted by the timeout also carry [ErrCheckTimeout].
package health
