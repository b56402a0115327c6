// Package logger builds the slog loggers used by slugger and its CLI.
//
// [New] writes JSON or text records at the configured level. [NewWithSentry] also
// forwards warnings and errors to Sentry when SENTRY_DSN is set and falls back to
// local output otherwise. Library code defaults to [NewNope].
//
// A [ContextExtractor] adds request-scoped attributes on every call:
//
//	log := logger.New(os.Stderr, cfg, logger.CommandExtractor)
//	ctx := logger.WithCommand(ctx, "resolve")
//	log.InfoContext(ctx, "slug resolved", slog.String("slug", s))
//	// {"level":"INFO","msg":"slug resolved","slug":"hello-world-2","command":"resolve"}
//
// [Config] is loaded from LOG_LEVEL, LOG_FORMAT, SENTRY_DSN, SENTRY_ENVIRONMENT and
// SENTRY_MIN_LEVEL.
package logger
