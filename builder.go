package slugger

import (
	"context"
	"errors"
	"fmt"
)

// Normalizer turns text into a separator-joined, URL-safe token.
// It must be deterministic; see pkg/slug.Normalize for the default.
type Normalizer func(text, separator string) string

// SourceText reads the source field of rec as text. A missing field is a configuration
// error; a nil value reads as empty text.
func SourceText(rec Record, cfg SlugConfig) (string, error) {
	if isNilRecord(rec) {
		return "", configError(ErrNilRecord)
	}
	v, ok := rec.Field(cfg.Source())
	if !ok {
		return "", configError(fmt.Errorf("%w: %s", ErrFieldNotFound, cfg.Source()))
	}
	return text(v), nil
}

// Make normalizes the source text of rec and resolves it against existing records
// without touching rec.
func Make(ctx context.Context, rec Record, cfg SlugConfig, normalize Normalizer, counter Counter) (string, error) {
	raw, err := SourceText(rec, cfg)
	if err != nil {
		return "", err
	}
	if normalize == nil {
		return "", fmt.Errorf("%w: normalizer is nil", ErrInvalidConfig)
	}
	return Resolve(ctx, counter, normalize(raw, cfg.Separator()), rec, cfg)
}

// Build computes the slug for rec and writes it into the configured column.
// The column write is the only mutation; on error rec is left untouched.
func Build(ctx context.Context, rec Record, cfg SlugConfig, normalize Normalizer, counter Counter) (string, error) {
	if isNilRecord(rec) {
		return "", configError(ErrNilRecord)
	}
	if fc, ok := rec.(FieldChecker); ok && !fc.HasField(cfg.Column()) {
		return "", configError(fmt.Errorf("%w: %s", ErrFieldNotFound, cfg.Column()))
	}

	s, err := Make(ctx, rec, cfg, normalize, counter)
	if err != nil {
		return "", err
	}
	if err := rec.SetField(cfg.Column(), s); err != nil {
		if errors.Is(err, ErrFieldNotFound) {
			return "", configError(err)
		}
		return "", err
	}
	return s, nil
}
