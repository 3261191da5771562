package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/abitype/internal/cli/render"
	"github.com/trebuchet-org/abitype/internal/usecase"
)

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file> [entry]",
		Short: "List ABI entries or show one in detail",
		Long: `Without an entry argument, list every entry of the ABI with its signature
and selector. With one, show the matching entry's parameters as a tree. The
entry may be a name, a full signature or a 4-byte selector. When a name
matches several overloads you are asked to pick one, unless
--non-interactive is set.`,
		Example: `  # List entries
  abitype inspect out/Token.sol/Token.json

  # Show one overload
  abitype inspect out/Token.sol/Token.json 'approve(address,uint256)'

  # Look up by selector
  abitype inspect out/Token.sol/Token.json 0xa9059cbb`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.InspectABIParams{
				Path:        args[0],
				Interactive: true,
			}
			if len(args) > 1 {
				params.Query = args[1]
			}

			result, err := app.InspectABI.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return renderResult(cmd, app, render.NewInspectRenderer(cmd.OutOrStdout()), result)
		},
	}

	return cmd
}
