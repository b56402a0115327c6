package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/slugger"
)

type resolveFlags struct {
	backend      string
	table        string
	source       string
	column       string
	separator    string
	unique       string
	parent       string
	parentColumn string
	parentValue  string
	keyColumn    string
	keyValue     string
	existing     []string
	register     bool
}

func newResolveCmd(a *app) *cobra.Command {
	f := &resolveFlags{}

	cmd := &cobra.Command{
		Use:   "resolve TEXT...",
		Short: "Generate a slug that is unique in a backend",
		Long: `Normalize TEXT and append the number of existing similar slugs when the
uniqueness scope requires it. Backends are configured through the environment
(DATABASE_CONN_URL, MONGODB_URL, REDIS_URL, AWS_REGION/DYNAMODB_ENDPOINT).`,
		Example: `  slugger resolve --unique all --existing hello-world "Hello World"
  slugger resolve --backend postgres --table posts --unique parent \
      --parent Blog --parent-value 7 "Hello World"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			text := strings.Join(args, " ")

			c := slugger.Config{
				Source:       f.source,
				Column:       f.column,
				Separator:    f.separator,
				Unique:       slugger.Unique(f.unique),
				ParentColumn: f.parentColumn,
			}
			if f.parent != "" {
				c.Parent = &slugger.Parent{Name: f.parent}
			}

			cfg, err := a.defaults.Resolve(c)
			if err != nil {
				return err
			}

			fields := map[string]any{cfg.Source(): text}
			if f.parentValue != "" && cfg.ParentColumn() != "" {
				fields[cfg.ParentColumn()] = f.parentValue
			}
			if f.keyValue != "" {
				fields[f.keyColumn] = f.keyValue
			}

			b, err := openBackend(ctx, f.backend, f.table, f.keyColumn, f.seedRows(cfg))
			if err != nil {
				return err
			}
			defer func() { _ = b.close(ctx) }()

			s := slugger.New(b.counter, slugger.WithDefaults(a.defaults), slugger.WithLogger(a.log))
			rec := slugger.NewMap(fields, f.keyColumn)
			result, err := s.Build(ctx, rec, c)
			if err != nil {
				return err
			}

			if f.register {
				if b.register == nil {
					return fmt.Errorf("backend %q does not keep a slug registry", f.backend)
				}
				q, err := slugger.BuildQuery(result, rec, cfg)
				if err != nil {
					return err
				}
				if err := b.register(ctx, q, f.keyValue); err != nil {
					return err
				}
			}

			a.log.InfoContext(ctx, "slug resolved",
				slog.String("backend", f.backend),
				slog.String("slug", result),
			)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.backend, "backend", backendMemory, "memory, postgres, mongo, redis or dynamo")
	fl.StringVar(&f.table, "table", "", "Table, collection or registry namespace")
	fl.StringVar(&f.source, "source", "title", "Field the text is stored in")
	fl.StringVar(&f.column, "column", "", "Slug column (default from configuration)")
	fl.StringVar(&f.separator, "separator", "", "Separator (default from configuration)")
	fl.StringVar(&f.unique, "unique", "", "Uniqueness scope: none, all or parent")
	fl.StringVar(&f.parent, "parent", "", "Parent record type, e.g. Blog (column blog_id)")
	fl.StringVar(&f.parentColumn, "parent-column", "", "Explicit parent column")
	fl.StringVar(&f.parentValue, "parent-value", "", "Parent key of the record")
	fl.StringVar(&f.keyColumn, "key", "id", "Primary key column")
	fl.StringVar(&f.keyValue, "key-value", "", "Primary key of an existing record, excluded from the count")
	fl.StringSliceVar(&f.existing, "existing", nil, "Existing slugs for the memory backend")
	fl.BoolVar(&f.register, "register", false, "Store the result in the redis registry")

	return cmd
}

// seedRows turns --existing into memory rows in the same scope as the record.
func (f *resolveFlags) seedRows(cfg slugger.SlugConfig) []map[string]any {
	rows := make([]map[string]any, 0, len(f.existing))
	for _, s := range f.existing {
		row := map[string]any{cfg.Column(): s}
		if f.parentValue != "" && cfg.ParentColumn() != "" {
			row[cfg.ParentColumn()] = f.parentValue
		}
		rows = append(rows, row)
	}
	return rows
}
