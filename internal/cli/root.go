package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/abitype/internal/app"
	"github.com/trebuchet-org/abitype/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "abitype",
		Short: "Validate Ethereum ABIs and EIP-712 typed data",
		Long: `abitype checks Ethereum contract ABIs and EIP-712 typed data against the
Solidity type grammar and the structural rules of each entry kind.

Every problem in a document is reported with its path, for example
inputs[2].components[0], instead of stopping at the first one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			// Set up viper with every flag of the running command bound
			v := config.SetupViper(projectRoot, cmd)

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			appInstance.Log.Debug("configuration resolved",
				"project", appInstance.Config.ProjectRoot,
				"config", appInstance.Config.ConfigFile,
				"array_max_depth", appInstance.Config.Grammar.DepthString())

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool(config.KeyDebug, false, "Enable debug output")
	rootCmd.PersistentFlags().Bool(config.KeyNonInteractive, false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool(config.KeyJSON, false, "Output results as JSON")
	rootCmd.PersistentFlags().String(config.KeyConfig, "", "Path to an abitype.toml file (defaults to the nearest one)")
	rootCmd.PersistentFlags().String(config.KeyArrayMaxDepth, "", "Maximum number of array suffixes, or 'false' for unbounded")
	rootCmd.PersistentFlags().Int(config.KeyFixedArrayMin, 1, "Smallest fixed array length in bounded mode")
	rootCmd.PersistentFlags().Int(config.KeyFixedArrayMax, 99, "Largest fixed array length in bounded mode")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "validate",
		Title: "Validation Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "grammar",
		Title: "Type Grammar Commands",
	})

	validateCmd := NewValidateCmd()
	validateCmd.GroupID = "validate"
	rootCmd.AddCommand(validateCmd)

	typedDataCmd := NewTypedDataCmd()
	typedDataCmd.GroupID = "validate"
	rootCmd.AddCommand(typedDataCmd)

	inspectCmd := NewInspectCmd()
	inspectCmd.GroupID = "validate"
	rootCmd.AddCommand(inspectCmd)

	classifyCmd := NewClassifyCmd()
	classifyCmd.GroupID = "grammar"
	rootCmd.AddCommand(classifyCmd)

	enumerateCmd := NewEnumerateCmd()
	enumerateCmd.GroupID = "grammar"
	rootCmd.AddCommand(enumerateCmd)

	// Version command
	versionCmd := NewVersionCmd()
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
