// Package cli implements the slugger command line tool.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/slugger"
	"github.com/dmitrymomot/slugger/pkg/logger"
)

// Config is the process configuration read from the environment.
type Config struct {
	Log          logger.Config
	DefaultsFile string `env:"SLUGGER_CONFIG"`
}

// app is the state shared by subcommands once the root pre-run has finished.
type app struct {
	log      *slog.Logger
	defaults slugger.Defaults
}

// NewRootCmd builds the command tree. Logs go to stderr, which tests may redirect.
func NewRootCmd(stderr io.Writer) *cobra.Command {
	a := &app{log: logger.NewNope(), defaults: slugger.DefaultDefaults()}

	var (
		envFile      string
		defaultsFile string
	)

	root := &cobra.Command{
		Use:   "slugger",
		Short: "Generate unique URL slugs",
		Long: `Generate URL-safe slugs and resolve collisions against PostgreSQL,
MongoDB, Redis, DynamoDB or an in-memory table.

Defaults come from a YAML file (--config or SLUGGER_CONFIG) and
SLUGGER_COLUMN, SLUGGER_SEPARATOR and SLUGGER_UNIQUE.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadEnvFile(envFile); err != nil {
				return err
			}

			cfg, err := env.ParseAs[Config]()
			if err != nil {
				return err
			}
			if defaultsFile == "" {
				defaultsFile = cfg.DefaultsFile
			}

			a.log = logger.NewWithSentry(stderr, cfg.Log, logger.CommandExtractor)
			cmd.SetContext(logger.WithCommand(cmd.Context(), cmd.Name()))

			a.defaults, err = slugger.LoadDefaults(defaultsFile)
			return err
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file loaded before reading the environment")
	root.PersistentFlags().StringVar(&defaultsFile, "config", "", "YAML file with slug defaults")

	root.AddCommand(
		newMakeCmd(),
		newResolveCmd(a),
		newBackfillCmd(a),
		newPingCmd(a),
	)
	return root
}

// loadEnvFile loads path into the environment without overriding set variables.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Execute runs the CLI with os.Args and returns the process exit code.
func Execute(ctx context.Context) int {
	root := NewRootCmd(os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
