package logger

import (
	"context"
	"log/slog"
)

type commandKey struct{}

// WithCommand stores the running CLI command name in ctx.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey{}, name)
}

// CommandExtractor adds the command stored by WithCommand to every record.
func CommandExtractor(ctx context.Context) (slog.Attr, bool) {
	name, ok := ctx.Value(commandKey{}).(string)
	if !ok || name == "" {
		return slog.Attr{}, false
	}
	return slog.String("command", name), true
}
