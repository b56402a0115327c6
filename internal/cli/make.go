package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/slugger/pkg/slug"
)

func newMakeCmd() *cobra.Command {
	var (
		separator string
		maxLength int
		keepCase  bool
	)

	cmd := &cobra.Command{
		Use:   "make TEXT...",
		Short: "Normalize text into a slug",
		Example: `  slugger make "Hello World"
  slugger make --separator _ --max-length 20 "Crème Brûlée Recipes"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := slug.Make(strings.Join(args, " "),
				slug.Separator(separator),
				slug.MaxLength(maxLength),
				slug.Lowercase(!keepCase),
			)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}

	cmd.Flags().StringVar(&separator, "separator", "-", "Word separator")
	cmd.Flags().IntVar(&maxLength, "max-length", 0, "Truncate to this many characters (0 = no limit)")
	cmd.Flags().BoolVar(&keepCase, "keep-case", false, "Keep letter case")

	return cmd
}
