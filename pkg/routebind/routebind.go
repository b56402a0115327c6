// Package routebind resolves a chi URL parameter to a record through its route
// key, which is the slug column when route binding is enabled and the primary key
// otherwise.
//
//	column := s.RouteKey(slugger.Config{Source: "title", RouteBinding: true}, "id")
//	r.With(routebind.Middleware("post", column, findPost,
//		routebind.WithNotFound(pgstore.ErrNotFound),
//	)).Get("/posts/{post}", func(w http.ResponseWriter, r *http.Request) {
//		post, _ := routebind.From[Post](r.Context())
//		...
//	})
package routebind

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/slugger/pkg/logger"
)

// ErrNotFound can be returned by a LookupFunc to produce a 404.
var ErrNotFound = errors.New("routebind: record not found")

// LookupFunc loads the record whose column equals value.
type LookupFunc[T any] func(ctx context.Context, column, value string) (T, error)

// ErrorHandler writes the response for a failed lookup. status is 404 or 500.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, status int, err error)

type config struct {
	notFound []error
	onError  ErrorHandler
	logger   *slog.Logger
}

// Option configures Middleware.
type Option func(*config)

// WithNotFound adds errors that mean the record does not exist.
func WithNotFound(errs ...error) Option {
	return func(c *config) {
		c.notFound = append(c.notFound, errs...)
	}
}

// WithErrorHandler replaces the default plain-text error response.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *config) {
		if h != nil {
			c.onError = h
		}
	}
}

// WithLogger sets the logger lookup failures are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

type recordKey struct{}

// Middleware loads the record named by URL parameter param and stores it in the
// request context. An empty parameter or a not-found error responds 404; any
// other lookup error responds 500.
func Middleware[T any](param, column string, lookup LookupFunc[T], opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		notFound: []error{ErrNotFound},
		onError:  defaultErrorHandler,
		logger:   logger.NewNope(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			value := chi.URLParam(r, param)
			if value == "" {
				cfg.onError(w, r, http.StatusNotFound, ErrNotFound)
				return
			}

			rec, err := lookup(r.Context(), column, value)
			if err != nil {
				if cfg.isNotFound(err) {
					cfg.onError(w, r, http.StatusNotFound, err)
					return
				}
				cfg.logger.ErrorContext(r.Context(), "route binding lookup failed",
					slog.String("param", param),
					slog.String("column", column),
					slog.String("error", err.Error()),
				)
				cfg.onError(w, r, http.StatusInternalServerError, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), recordKey{}, rec)))
		})
	}
}

// From returns the record stored by Middleware.
func From[T any](ctx context.Context) (T, bool) {
	rec, ok := ctx.Value(recordKey{}).(T)
	return rec, ok
}

func (c *config) isNotFound(err error) bool {
	for _, target := range c.notFound {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, status int, _ error) {
	http.Error(w, http.StatusText(status), status)
}
