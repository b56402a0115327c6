package pgstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/slugger"
	"github.com/dmitrymomot/slugger/pkg/db"
	"github.com/dmitrymomot/slugger/pkg/logger"
	"github.com/dmitrymomot/slugger/pkg/slug"
)

// ErrBackfill wraps any failure that aborted a backfill.
var ErrBackfill = errors.New("pgstore: backfill failed")

// Backfill generates slugs for rows of Table whose slug column is NULL or empty.
type Backfill struct {
	Table     string
	KeyColumn string
	Config    slugger.SlugConfig
	Normalize slugger.Normalizer // default slug.Normalize
	Logger    *slog.Logger
}

// Run executes the backfill on a transaction started from b and returns the number
// of updated rows. Rows are locked and processed in key order, and every count runs
// on the same transaction, so slugs assigned earlier in the run are seen by later
// rows. On error nothing is committed.
func (bf Backfill) Run(ctx context.Context, b db.Beginner) (int, error) {
	if bf.Table == "" {
		return 0, ErrInvalidTable
	}
	if bf.KeyColumn == "" {
		bf.KeyColumn = "id"
	}
	if bf.Normalize == nil {
		bf.Normalize = slug.Normalize
	}
	log := bf.Logger
	if log == nil {
		log = logger.NewNope()
	}

	updated := 0
	err := db.WithTx(ctx, b, func(tx pgx.Tx) error {
		pending, err := bf.pending(ctx, tx)
		if err != nil {
			return err
		}

		store := New(tx, bf.Table)
		update := fmt.Sprintf("UPDATE %s SET %s = $1 WHERE %s = $2",
			store.ident,
			pgx.Identifier{bf.Config.Column()}.Sanitize(),
			pgx.Identifier{bf.KeyColumn}.Sanitize(),
		)

		for _, row := range pending {
			rec := slugger.NewMap(row, bf.KeyColumn)
			slug, err := slugger.Build(ctx, rec, bf.Config, bf.Normalize, store)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, update, slug, row[bf.KeyColumn]); err != nil {
				return err
			}
			updated++
			log.DebugContext(ctx, "slug backfilled",
				slog.String("table", bf.Table),
				slog.Any("key", row[bf.KeyColumn]),
				slog.String("slug", slug),
			)
		}
		return nil
	})
	if err != nil {
		return 0, errors.Join(ErrBackfill, err)
	}

	log.InfoContext(ctx, "backfill finished", slog.String("table", bf.Table), slog.Int("updated", updated))
	return updated, nil
}

func (bf Backfill) pending(ctx context.Context, tx pgx.Tx) ([]map[string]any, error) {
	key := pgx.Identifier{bf.KeyColumn}.Sanitize()
	col := pgx.Identifier{bf.Config.Column()}.Sanitize()

	selected := []string{key, pgx.Identifier{bf.Config.Source()}.Sanitize()}
	if bf.Config.Unique() == slugger.UniqueParent {
		selected = append(selected, pgx.Identifier{bf.Config.ParentColumn()}.Sanitize())
	}

	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s IS NULL OR %s = '' ORDER BY %s FOR UPDATE",
		strings.Join(selected, ", "), identifier(bf.Table), col, col, key)

	rows, err := tx.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToMap)
}
