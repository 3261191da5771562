package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/abitype/internal/cli/render"
	"github.com/trebuchet-org/abitype/internal/domain"
	"github.com/trebuchet-org/abitype/internal/usecase"
)

// NewTypedDataCmd creates the typed-data command
func NewTypedDataCmd() *cobra.Command {
	var primaryType string

	cmd := &cobra.Command{
		Use:     "typed-data <file>",
		Aliases: []string{"typeddata", "eip712"},
		Short:   "Validate EIP-712 typed data and show its struct graph",
		Long: `Validate the "types" of an EIP-712 payload and print every struct with the
structs it references. When the primary type resolves, the encodeType
string and its keccak256 type hash are printed as well.`,
		Example: `  # Validate a permit payload
  abitype typed-data permit.json

  # Compute the type hash of a different struct in the same file
  abitype typed-data mail.json --primary-type Person`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ValidateTypedData.Run(cmd.Context(), usecase.ValidateTypedDataParams{
				Path:        args[0],
				PrimaryType: primaryType,
			})
			if err != nil {
				return err
			}

			if err := renderResult(cmd, app, render.NewTypedDataRenderer(cmd.OutOrStdout()), result); err != nil {
				return err
			}

			if !result.Report.Valid() {
				return fmt.Errorf("%w: %d errors", domain.ErrInvalidDocument, len(result.Report.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&primaryType, "primary-type", "", "Struct to encode instead of the document's primaryType")

	return cmd
}
