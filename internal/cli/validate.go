package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/abitype/internal/cli/render"
	"github.com/trebuchet-org/abitype/internal/config"
	"github.com/trebuchet-org/abitype/internal/domain"
	"github.com/trebuchet-org/abitype/internal/usecase"
)

// NewValidateCmd creates the validate command
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate ABI and typed-data documents",
		Long: `Validate one or more documents. Each file may hold a JSON ABI array, a
compiler artifact with an "abi" field, or an EIP-712 payload with "types".
YAML files are converted to JSON first. Use "-" to read from stdin.

The command exits non-zero when any document fails to load or has errors.`,
		Example: `  # Validate a single ABI
  abitype validate out/Token.sol/Token.json

  # Validate several files and cross-check with go-ethereum
  abitype validate --geth abis/*.json

  # Validate typed data piped from another tool
  cat permit.json | abitype validate -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			geth, _ := cmd.Flags().GetBool(config.KeyGeth)
			result, err := app.ValidateDocuments.Run(cmd.Context(), usecase.ValidateDocumentsParams{
				Paths: args,
				Geth:  geth,
			})
			if err != nil {
				return err
			}

			if err := renderResult(cmd, app, render.NewValidationRenderer(cmd.OutOrStdout()), result); err != nil {
				return err
			}

			if !result.OK() {
				return fmt.Errorf("%w: %d of %d documents did not pass",
					domain.ErrInvalidDocument, result.Summary.Invalid+result.Summary.Failed, result.Summary.Documents)
			}
			return nil
		},
	}

	cmd.Flags().Bool(config.KeyGeth, false, "Cross-check ABIs with go-ethereum's parser")
	cmd.Flags().Int(config.KeyConcurrency, 0, "Number of documents validated in parallel (default 8)")

	return cmd
}
