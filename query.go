package slugger

import (
	"context"
	"fmt"
	"strings"
)

// Query describes the records a candidate slug collides with: those whose Column equals Slug
// or starts with Slug+Separator, optionally restricted to one parent and excluding one record.
type Query struct {
	// Column holds existing slugs.
	Column string
	// Slug is the normalized candidate.
	Slug string
	// Separator precedes any disambiguation suffix.
	Separator string

	// ParentColumn and ParentValue scope the query when ParentColumn is set.
	ParentColumn string
	ParentValue  any

	// KeyColumn and KeyValue identify the record being saved, excluded when KeyColumn is set.
	KeyColumn string
	KeyValue  any
}

// Prefix returns the "starts with" part of the predicate: Slug followed by Separator.
func (q Query) Prefix() string {
	return q.Slug + q.Separator
}

// Scoped reports whether the query is restricted to a parent.
func (q Query) Scoped() bool {
	return q.ParentColumn != ""
}

// Excludes reports whether a record identity must be left out of the count.
func (q Query) Excludes() bool {
	return q.KeyColumn != ""
}

// Matches applies the slug predicate to a stored value. Backends without a query
// language (memory, key-value stores) use it to filter candidates.
func (q Query) Matches(value string) bool {
	return value == q.Slug || strings.HasPrefix(value, q.Prefix())
}

// SameValue compares two field values the way stores compare keys: by their string form.
func SameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

// Counter answers the uniqueness query. Implementations are read-only and are
// owned by the host persistence layer.
type Counter interface {
	CountSimilar(ctx context.Context, q Query) (int, error)
}

// CounterFunc adapts a function to the Counter interface.
type CounterFunc func(ctx context.Context, q Query) (int, error)

// CountSimilar implements Counter.
func (f CounterFunc) CountSimilar(ctx context.Context, q Query) (int, error) {
	return f(ctx, q)
}
