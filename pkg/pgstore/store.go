// Package pgstore answers the slugger uniqueness query with PostgreSQL.
//
// The store takes a [Querier], so it works with a *pgxpool.Pool as well as inside
// a pgx.Tx:
//
//	store := pgstore.New(pool, "posts")
//	s := slugger.New(store)
//
// Parent and key values are compared by their text form, matching the other
// backends. Rows whose slug column is empty can be filled in with [Backfill].
package pgstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/slugger"
)

var (
	ErrNotFound     = errors.New("pgstore: row not found")
	ErrInvalidTable = errors.New("pgstore: table name is required")
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Store counts similar slugs in one table.
type Store struct {
	q     Querier
	table string
	ident string
}

// New returns a store for table. A schema-qualified name ("blog.posts") is quoted per part.
func New(q Querier, table string) *Store {
	return &Store{q: q, table: table, ident: identifier(table)}
}

// Table returns the unquoted table name.
func (s *Store) Table() string {
	return s.table
}

// CountSimilar implements slugger.Counter.
func (s *Store) CountSimilar(ctx context.Context, q slugger.Query) (int, error) {
	if s.table == "" {
		return 0, ErrInvalidTable
	}

	sql, args := CountSQL(s.ident, q)

	var n int64
	if err := s.q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return int(n), nil
}

// FindBy returns the first row whose column equals value, as a column to value map.
func (s *Store) FindBy(ctx context.Context, column string, value any) (map[string]any, error) {
	if s.table == "" {
		return nil, ErrInvalidTable
	}

	sql := fmt.Sprintf("SELECT * FROM %s WHERE %s::text = $1 LIMIT 1",
		s.ident, pgx.Identifier{column}.Sanitize())

	rows, err := s.q.Query(ctx, sql, fmt.Sprint(value))
	if err != nil {
		return nil, err
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return row, err
}

// CountSQL renders the uniqueness query for the already quoted table ident.
//
//	SELECT count(*) FROM t WHERE ("slug" = $1 OR "slug" LIKE $2 ESCAPE '\')
//	  [AND "blog_id"::text = $3] [AND "id"::text <> $4]
func CountSQL(ident string, q slugger.Query) (string, []any) {
	col := pgx.Identifier{q.Column}.Sanitize()

	var b strings.Builder
	fmt.Fprintf(&b, `SELECT count(*) FROM %s WHERE (%s = $1 OR %s LIKE $2 ESCAPE '\')`, ident, col, col)
	args := []any{q.Slug, escapeLike(q.Prefix()) + "%"}

	if q.Scoped() {
		args = append(args, fmt.Sprint(q.ParentValue))
		fmt.Fprintf(&b, " AND %s::text = $%d", pgx.Identifier{q.ParentColumn}.Sanitize(), len(args))
	}
	if q.Excludes() {
		args = append(args, fmt.Sprint(q.KeyValue))
		fmt.Fprintf(&b, " AND %s::text <> $%d", pgx.Identifier{q.KeyColumn}.Sanitize(), len(args))
	}

	return b.String(), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func identifier(table string) string {
	if table == "" {
		return ""
	}
	return pgx.Identifier(strings.Split(table, ".")).Sanitize()
}

var _ slugger.Counter = (*Store)(nil)
