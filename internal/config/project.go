package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/abitype/internal/domain"
	"github.com/trebuchet-org/abitype/internal/domain/config"
)

// ProjectFileName is the optional per-project configuration file
const ProjectFileName = "abitype.toml"

// ProjectFile is the raw abitype.toml structure. Pointer fields are nil when omitted.
type ProjectFile struct {
	Grammar  GrammarSection  `toml:"grammar"`
	Validate ValidateSection `toml:"validate"`
}

// GrammarSection is the [grammar] table
type GrammarSection struct {
	AddressType   *string `toml:"address_type"`
	BytesType     *string `toml:"bytes_type"`
	FixedArrayMin *int    `toml:"fixed_array_min"`
	FixedArrayMax *int    `toml:"fixed_array_max"`
	// ArrayMaxDepth is an integer, false or "unbounded"
	ArrayMaxDepth any `toml:"array_max_depth"`
}

// ValidateSection is the [validate] table
type ValidateSection struct {
	Geth        *bool `toml:"geth"`
	Concurrency *int  `toml:"concurrency"`
}

// loadProjectFile parses an abitype.toml file. Unknown keys are rejected.
func loadProjectFile(path string) (*ProjectFile, error) {
	var pf ProjectFile
	md, err := toml.DecodeFile(path, &pf)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", domain.ErrInvalidConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys in %s: %s", domain.ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	return &pf, nil
}

// apply overlays the values present in the file onto cfg
func (pf *ProjectFile) apply(cfg *config.RuntimeConfig) error {
	g := pf.Grammar
	if g.AddressType != nil {
		cfg.Grammar.AddressType = *g.AddressType
	}
	if g.BytesType != nil {
		cfg.Grammar.BytesType = *g.BytesType
	}
	if g.FixedArrayMin != nil {
		cfg.Grammar.FixedArrayMinLength = *g.FixedArrayMin
	}
	if g.FixedArrayMax != nil {
		cfg.Grammar.FixedArrayMaxLength = *g.FixedArrayMax
	}
	if g.ArrayMaxDepth != nil {
		depth, err := config.ParseArrayMaxDepth(g.ArrayMaxDepth)
		if err != nil {
			return fmt.Errorf("%w: grammar.array_max_depth: %v", domain.ErrInvalidConfig, err)
		}
		cfg.Grammar.ArrayMaxDepth = depth
	}

	if pf.Validate.Geth != nil {
		cfg.Validate.Geth = *pf.Validate.Geth
	}
	if pf.Validate.Concurrency != nil {
		cfg.Validate.Concurrency = *pf.Validate.Concurrency
	}
	return nil
}

// loadEnvFiles loads .env files from the project root. Variables already set win.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}
