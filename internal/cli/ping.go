package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/slugger/pkg/health"
)

func newPingCmd(a *app) *cobra.Command {
	var (
		backends []string
		table    string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:     "ping",
		Short:   "Check connectivity to the configured backends",
		Example: `  slugger ping --backend postgres --backend redis`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			checks, closeAll, err := healthChecks(ctx, backends, table)
			defer func() { _ = closeAll(ctx) }()
			if err != nil {
				return err
			}

			report, err := health.Run(ctx, checks,
				health.WithTimeout(timeout),
				health.WithLogger(a.log),
			)
			if _, werr := report.WriteTo(cmd.OutOrStdout()); werr != nil {
				return werr
			}
			return err
		},
	}

	cmd.Flags().StringSliceVar(&backends, "backend", []string{"postgres"}, "Backends to check")
	cmd.Flags().StringVar(&table, "table", "", "DynamoDB table to describe")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Timeout for all checks")

	return cmd
}
