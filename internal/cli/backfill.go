package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/slugger"
	"github.com/dmitrymomot/slugger/pkg/db"
	"github.com/dmitrymomot/slugger/pkg/pgstore"
	"github.com/dmitrymomot/slugger/pkg/slug"
)

func newBackfillCmd(a *app) *cobra.Command {
	var (
		table     string
		keyColumn string
		c         slugger.Config
		unique    string
		parent    string
		printOnly bool
	)

	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Fill empty slug columns of a PostgreSQL table",
		Long: `Generate slugs for every row whose slug column is NULL or empty.
Rows are processed in primary key order inside a single transaction, so the
slugs assigned during the run are unique among themselves.`,
		Example: `  slugger backfill --table posts --source title --unique parent --parent Blog`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			c.Unique = slugger.Unique(unique)
			if parent != "" {
				c.Parent = &slugger.Parent{Name: parent}
			}
			cfg, err := a.defaults.Resolve(c)
			if err != nil {
				return err
			}
			if printOnly {
				return printConfig(cmd, cfg)
			}

			dbCfg, err := env.ParseAs[db.Config]()
			if err != nil {
				return err
			}
			pool, err := db.Connect(ctx, dbCfg)
			if err != nil {
				return err
			}
			defer func() { _ = db.Shutdown(pool)(ctx) }()

			n, err := pgstore.Backfill{
				Table:     table,
				KeyColumn: keyColumn,
				Config:    cfg,
				Normalize: slug.Normalize,
				Logger:    a.log,
			}.Run(ctx, pool)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d rows updated\n", n)
			return err
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&table, "table", "", "Table to backfill (schema.table allowed)")
	fl.StringVar(&keyColumn, "key", "id", "Primary key column")
	fl.StringVar(&c.Source, "source", "", "Column the slug is derived from")
	fl.StringVar(&c.Column, "column", "", "Slug column (default from configuration)")
	fl.StringVar(&c.Separator, "separator", "", "Separator (default from configuration)")
	fl.StringVar(&unique, "unique", "", "Uniqueness scope: none, all or parent")
	fl.StringVar(&parent, "parent", "", "Parent record type, e.g. Blog (column blog_id)")
	fl.StringVar(&c.ParentColumn, "parent-column", "", "Explicit parent column")
	fl.BoolVar(&printOnly, "print-config", false, "Print the resolved configuration and exit")
	_ = cmd.MarkFlagRequired("table")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

var configKeys = []string{"source", "column", "separator", "unique", "parent", "parentColumn"}

func printConfig(cmd *cobra.Command, cfg slugger.SlugConfig) error {
	values := cfg.GetMany(configKeys...)
	for _, k := range configKeys {
		if v, ok := values[k]; ok {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, v); err != nil {
				return err
			}
		}
	}
	return nil
}
