package slugger

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/slugger/pkg/logger"
	"github.com/dmitrymomot/slugger/pkg/slug"
)

// Slugger binds the defaults, normalizer and uniqueness query a host uses for one record type.
// It holds no per-call state and is safe for concurrent use.
type Slugger struct {
	counter   Counter
	normalize Normalizer
	logger    *slog.Logger
	defaults  Defaults
}

// New creates a Slugger that checks collisions with counter.
// counter may be nil when every Config uses UniqueNone.
func New(counter Counter, opts ...Option) *Slugger {
	s := &Slugger{
		counter:   counter,
		normalize: slug.Normalize,
		logger:    logger.NewNope(),
		defaults:  DefaultDefaults(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Defaults returns the configured defaults.
func (s *Slugger) Defaults() Defaults {
	return s.defaults
}

// Config merges c over the defaults.
func (s *Slugger) Config(c Config) (SlugConfig, error) {
	return s.defaults.Resolve(c)
}

// Make returns the slug rec would get without modifying it.
func (s *Slugger) Make(ctx context.Context, rec Record, c Config) (string, error) {
	cfg, err := s.defaults.Resolve(c)
	if err != nil {
		return "", err
	}
	return Make(ctx, rec, cfg, s.normalize, s.counter)
}

// Build resolves the slug for rec and writes it into the slug column.
func (s *Slugger) Build(ctx context.Context, rec Record, c Config) (string, error) {
	cfg, err := s.defaults.Resolve(c)
	if err != nil {
		return "", err
	}

	v, err := Build(ctx, rec, cfg, s.normalize, s.counter)
	if err != nil {
		return "", err
	}

	s.logger.DebugContext(ctx, "slug generated",
		slog.String("column", cfg.Column()),
		slog.String("slug", v),
		slog.String("unique", cfg.Unique().String()),
	)
	return v, nil
}

// BeforeSave is the pre-persistence callback. Hosts call it right before inserting or
// updating rec; any error must abort the save.
//
//	func (r *PostRepo) Save(ctx context.Context, p *Post) error {
//		rec, _ := slugger.Struct(p, "id")
//		if err := r.slugs.BeforeSave(ctx, rec, postSlug); err != nil {
//			return err
//		}
//		return r.insert(ctx, p)
//	}
func (s *Slugger) BeforeSave(ctx context.Context, rec Record, c Config) error {
	_, err := s.Build(ctx, rec, c)
	return err
}

// RouteKey returns the column external lookups should match on: the slug column when
// route binding is enabled, otherwise primaryKey.
func (s *Slugger) RouteKey(c Config, primaryKey string) string {
	if !c.RouteBinding {
		return primaryKey
	}
	return firstNonEmpty(c.Column, s.defaults.Column, primaryKey)
}
