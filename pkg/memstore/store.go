// Package memstore keeps records in memory and answers the slugger uniqueness query against them.
//
// It is meant for tests, prototypes and embedded use:
//
//	store := memstore.New("id")
//	s := slugger.New(store)
//
//	rec := slugger.NewMap(map[string]any{"title": "Hello World"}, "id")
//	if err := s.BeforeSave(ctx, rec, slugger.Config{Source: "title", Unique: slugger.UniqueAll}); err != nil {
//		return err
//	}
//	store.Save(rec.Fields)
package memstore

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/slugger"
)

// ErrNotFound is returned when no row has the requested key.
var ErrNotFound = errors.New("memstore: row not found")

// Row is a stored record.
type Row map[string]any

// Store is a concurrency-safe in-memory table.
type Store struct {
	rows      map[string]Row
	order     []string
	keyColumn string
	mu        sync.RWMutex
}

// New creates an empty table whose primary key lives in keyColumn.
func New(keyColumn string) *Store {
	return &Store{
		rows:      make(map[string]Row),
		keyColumn: keyColumn,
	}
}

// Save inserts or replaces a row. Rows without a key get a random UUID, which is
// also written back into fields. It returns the row key.
func (s *Store) Save(fields map[string]any) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := fields[s.keyColumn]
	if !ok || key == nil || key == "" {
		key = uuid.NewString()
		fields[s.keyColumn] = key
	}
	id := keyString(key)

	if _, exists := s.rows[id]; !exists {
		s.order = append(s.order, id)
	}
	s.rows[id] = maps.Clone(Row(fields))
	return id
}

// Get returns a copy of the row stored under key.
func (s *Store) Get(key any) (Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[keyString(key)]
	if !ok {
		return nil, ErrNotFound
	}
	return maps.Clone(row), nil
}

// FindBy returns the first row, in insertion order, whose column equals value.
func (s *Store) FindBy(_ context.Context, column string, value any) (Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		row := s.rows[id]
		if v, ok := row[column]; ok && slugger.SameValue(v, value) {
			return maps.Clone(row), nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes the row stored under key.
func (s *Store) Delete(key any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := keyString(key)
	if _, ok := s.rows[id]; !ok {
		return
	}
	delete(s.rows, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of stored rows.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// CountSimilar implements slugger.Counter.
func (s *Store) CountSimilar(ctx context.Context, q slugger.Query) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, row := range s.rows {
		v, ok := row[q.Column].(string)
		if !ok || !q.Matches(v) {
			continue
		}
		if q.Scoped() && !slugger.SameValue(row[q.ParentColumn], q.ParentValue) {
			continue
		}
		if q.Excludes() && slugger.SameValue(row[q.KeyColumn], q.KeyValue) {
			continue
		}
		n++
	}
	return n, nil
}

func keyString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

var _ slugger.Counter = (*Store)(nil)
