package slugger

import (
	"context"
	"errors"
	"strconv"
)

// Candidate is a normalized slug together with the number of records it collides with.
type Candidate struct {
	Slug      string
	Separator string
	Conflicts int
}

// String returns the final slug: the candidate itself when nothing collides,
// otherwise the candidate followed by the separator and the conflict count.
//
// The count is used as the suffix as is. With "foo" and "foo-5" stored the next
// value is "foo-2", not "foo-6".
func (c Candidate) String() string {
	if c.Conflicts <= 0 {
		return c.Slug
	}
	return c.Slug + c.Separator + strconv.Itoa(c.Conflicts)
}

// BuildQuery assembles the uniqueness query for rec under cfg.
// It fails with a configuration error when parent scoping is requested but
// rec has no value in the parent column.
func BuildQuery(normalized string, rec Record, cfg SlugConfig) (Query, error) {
	q := Query{
		Column:    cfg.Column(),
		Slug:      normalized,
		Separator: cfg.Separator(),
	}

	if cfg.Unique() == UniqueParent {
		col := cfg.ParentColumn()
		if col == "" {
			return Query{}, configError(ErrMissingParent)
		}
		v, ok := rec.Field(col)
		if !ok || isZero(v) {
			return Query{}, configError(ErrMissingParentValue)
		}
		q.ParentColumn = col
		q.ParentValue = v
	}

	if col, v, ok := primaryKey(rec); ok {
		q.KeyColumn = col
		q.KeyValue = v
	}

	return q, nil
}

// Count runs the uniqueness query for normalized and returns the resulting candidate.
// With UniqueNone no query is issued.
func Count(ctx context.Context, counter Counter, normalized string, rec Record, cfg SlugConfig) (Candidate, error) {
	c := Candidate{Slug: normalized, Separator: cfg.Separator()}
	if cfg.Unique() == UniqueNone {
		return c, nil
	}
	if isNilRecord(rec) {
		return Candidate{}, configError(ErrNilRecord)
	}
	if counter == nil {
		return Candidate{}, configError(ErrNilCounter)
	}

	q, err := BuildQuery(normalized, rec, cfg)
	if err != nil {
		return Candidate{}, err
	}

	n, err := counter.CountSimilar(ctx, q)
	if err != nil {
		return Candidate{}, errors.Join(ErrQueryFailed, err)
	}
	c.Conflicts = n
	return c, nil
}

// Resolve returns the collision-free form of normalized for rec.
//
// Count and append are not atomic: two concurrent saves with the same source text can
// both see zero conflicts and produce the same slug. Hosts that need strict uniqueness
// must add a storage-level unique constraint and retry the save on violation.
func Resolve(ctx context.Context, counter Counter, normalized string, rec Record, cfg SlugConfig) (string, error) {
	c, err := Count(ctx, counter, normalized, rec, cfg)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}
