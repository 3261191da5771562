package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/abitype/internal/cli/render"
	"github.com/trebuchet-org/abitype/internal/usecase"
)

// NewClassifyCmd creates the classify command
func NewClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <type>...",
		Short: "Classify Solidity type strings",
		Long: `Parse each argument against the ABI type grammar and print its kind,
canonical form, array dimensions and the Go type it maps to. Types that are
not part of the grammar are listed with the reason they were rejected.`,
		Example: `  abitype classify uint256 'bytes32[2][]' 'uint7' '(address,uint)'`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ClassifyTypes.Run(cmd.Context(), usecase.ClassifyTypesParams{Types: args})
			if err != nil {
				return err
			}

			return renderResult(cmd, app, render.NewClassifyRenderer(cmd.OutOrStdout()), result)
		},
	}

	return cmd
}
