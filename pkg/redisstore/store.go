// Package redisstore keeps a slug registry in Redis and answers the slugger
// uniqueness query from it.
//
// Every scope (table, column and, for parent scoping, the parent value) is a
// sorted set of slugs with score 0, so prefix matches are lexicographic range
// reads. A companion hash maps each slug to the key of the record that owns it.
// The host registers slugs with [Store.Put] after saving a record and drops them
// with [Store.Remove] on delete.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/slugger"
)

const defaultPrefix = "slugger"

var (
	ErrEmptySlug = errors.New("redisstore: slug is required")
	ErrNotFound  = errors.New("redisstore: slug not registered")
)

// Option configures a Store.
type Option func(*Store)

// WithPrefix sets the namespace of all registry keys. Default: "slugger".
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// Store is a Redis-backed slug registry for one table.
type Store struct {
	client redis.Cmdable
	prefix string
	table  string
}

// New returns a registry for table.
func New(client redis.Cmdable, table string, opts ...Option) *Store {
	s := &Store{client: client, prefix: defaultPrefix, table: table}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the sorted set holding the slugs of q's scope:
// prefix:table:column[:parentColumn=value].
func (s *Store) Key(q slugger.Query) string {
	parts := []string{s.prefix, s.table, q.Column}
	if q.Scoped() {
		parts = append(parts, q.ParentColumn+"="+fmt.Sprint(q.ParentValue))
	}
	return strings.Join(parts, ":")
}

func ownersKey(key string) string {
	return key + ":owners"
}

// Put registers q.Slug in q's scope as owned by owner.
func (s *Store) Put(ctx context.Context, q slugger.Query, owner any) error {
	if q.Slug == "" {
		return ErrEmptySlug
	}
	key := s.Key(q)
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.ZAdd(ctx, key, redis.Z{Member: q.Slug})
		p.HSet(ctx, ownersKey(key), q.Slug, fmt.Sprint(owner))
		return nil
	})
	return err
}

// Remove drops q.Slug from q's scope.
func (s *Store) Remove(ctx context.Context, q slugger.Query) error {
	key := s.Key(q)
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.ZRem(ctx, key, q.Slug)
		p.HDel(ctx, ownersKey(key), q.Slug)
		return nil
	})
	return err
}

// Owner returns the record key registered for q.Slug.
func (s *Store) Owner(ctx context.Context, q slugger.Query) (string, error) {
	owner, err := s.client.HGet(ctx, ownersKey(s.Key(q)), q.Slug).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return owner, err
}

// CountSimilar implements slugger.Counter.
func (s *Store) CountSimilar(ctx context.Context, q slugger.Query) (int, error) {
	key := s.Key(q)

	var (
		exact    *redis.FloatCmd
		prefixed *redis.StringSliceCmd
	)
	_, err := s.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		exact = p.ZScore(ctx, key, q.Slug)
		prefixed = p.ZRangeByLex(ctx, key, &redis.ZRangeBy{
			Min: "[" + q.Prefix(),
			Max: "[" + q.Prefix() + "\xff",
		})
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, err
	}

	members := prefixed.Val()
	switch {
	case exact.Err() == nil:
		// Without a separator the lex range already contains the exact slug.
		if q.Separator != "" {
			members = append(members, q.Slug)
		}
	case !errors.Is(exact.Err(), redis.Nil):
		return 0, exact.Err()
	}

	if !q.Excludes() || len(members) == 0 {
		return len(members), nil
	}

	owners, err := s.client.HMGet(ctx, ownersKey(key), members...).Result()
	if err != nil {
		return 0, err
	}
	self := fmt.Sprint(q.KeyValue)
	n := 0
	for _, owner := range owners {
		if o, ok := owner.(string); ok && o == self {
			continue
		}
		n++
	}
	return n, nil
}

var _ slugger.Counter = (*Store)(nil)
