package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/abitype/internal/domain"
	"github.com/trebuchet-org/abitype/internal/domain/config"
)

// EnvPrefix prefixes every environment variable read through viper
const EnvPrefix = "ABITYPE"

// Keys shared by flags, environment variables and viper lookups
const (
	KeyProjectRoot    = "project_root"
	KeyConfig         = "config"
	KeyDebug          = "debug"
	KeyNonInteractive = "non-interactive"
	KeyJSON           = "json"
	KeyArrayMaxDepth  = "array-max-depth"
	KeyFixedArrayMin  = "fixed-array-min"
	KeyFixedArrayMax  = "fixed-array-max"
	KeyGeth           = "geth"
	KeyConcurrency    = "concurrency"
)

// Provider creates RuntimeConfig for Wire dependency injection.
// Precedence is defaults, then abitype.toml, then environment and flags.
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString(KeyProjectRoot)
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	// .env must be loaded before any environment lookups below
	loadEnvFiles(projectRoot)

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		Debug:          v.GetBool(KeyDebug),
		NonInteractive: v.GetBool(KeyNonInteractive),
		JSON:           v.GetBool(KeyJSON),
		Grammar:        config.DefaultGrammarConfig(),
		Validate:       config.DefaultValidateConfig(),
	}

	cfg.ConfigFile = v.GetString(KeyConfig)
	if cfg.ConfigFile == "" {
		candidate := filepath.Join(projectRoot, ProjectFileName)
		if _, err := os.Stat(candidate); err == nil {
			cfg.ConfigFile = candidate
		}
	}
	if cfg.ConfigFile != "" {
		pf, err := loadProjectFile(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		if err := pf.apply(cfg); err != nil {
			return nil, err
		}
	}

	if err := applyOverrides(v, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Grammar.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	if cfg.Validate.Concurrency < 1 {
		return nil, fmt.Errorf("%w: concurrency must be at least 1, got %d", domain.ErrInvalidConfig, cfg.Validate.Concurrency)
	}

	return cfg, nil
}

// applyOverrides copies flag and environment values that were explicitly set
func applyOverrides(v *viper.Viper, cfg *config.RuntimeConfig) error {
	if v.IsSet(KeyArrayMaxDepth) {
		depth, err := config.ParseArrayMaxDepth(v.GetString(KeyArrayMaxDepth))
		if err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, KeyArrayMaxDepth, err)
		}
		cfg.Grammar.ArrayMaxDepth = depth
	}
	if v.IsSet(KeyFixedArrayMin) {
		cfg.Grammar.FixedArrayMinLength = v.GetInt(KeyFixedArrayMin)
	}
	if v.IsSet(KeyFixedArrayMax) {
		cfg.Grammar.FixedArrayMaxLength = v.GetInt(KeyFixedArrayMax)
	}
	if v.IsSet(KeyGeth) {
		cfg.Validate.Geth = v.GetBool(KeyGeth)
	}
	if v.IsSet(KeyConcurrency) {
		cfg.Validate.Concurrency = v.GetInt(KeyConcurrency)
	}
	return nil
}

// FindProjectRoot walks up from the current directory to find abitype.toml.
// Without one, the current directory is the project root.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyNonInteractive, false)
	v.SetDefault(KeyJSON, false)
	v.SetDefault(KeyProjectRoot, projectRoot)

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(f.Name, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}
