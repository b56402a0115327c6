package logger

import "log/slog"

// NewNope creates a logger that discards all output. It is the library default.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
