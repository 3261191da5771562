package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/abitype/internal/cli/render"
	"github.com/trebuchet-org/abitype/internal/usecase"
)

// NewEnumerateCmd creates the enumerate command
func NewEnumerateCmd() *cobra.Command {
	var (
		limit  int
		family string
	)

	cmd := &cobra.Command{
		Use:   "enumerate [base]",
		Short: "List every array form of a base type",
		Long: `List the base type followed by every array type that can be built from it
within the configured bounds. Enumeration needs a maximum array depth, so
set --array-max-depth or array_max_depth in abitype.toml.

With --family tuple or --family primitive, every form of every base in that
family is listed instead of a single base.`,
		Example: `  # All forms of address up to two array suffixes of length 1..3
  abitype enumerate address --array-max-depth 2 --fixed-array-max 3

  # Print everything, no matter how many forms there are
  abitype enumerate bytes32 --array-max-depth 1 --limit -1

  # Every non-tuple type up to one array suffix
  abitype enumerate --family primitive --array-max-depth 1 --fixed-array-max 2`,
		Args: func(cmd *cobra.Command, args []string) error {
			if family != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.EnumerateTypesParams{Family: family, Limit: limit}
			if len(args) > 0 {
				params.Base = args[0]
			}
			result, err := app.EnumerateTypes.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return renderResult(cmd, app, render.NewEnumerateRenderer(cmd.OutOrStdout()), result)
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "Enumerate a whole family instead of one base (tuple or primitive)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum forms to print (0 for the default of 1000, negative for no limit)")

	return cmd
}
