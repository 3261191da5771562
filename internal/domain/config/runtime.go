package config

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	ConfigFile  string // empty when no abitype.toml was found

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format

	// Resolved configurations
	Grammar  GrammarConfig
	Validate ValidateConfig
}

// ValidateConfig holds settings for batch validation
type ValidateConfig struct {
	// Geth cross-checks every ABI with go-ethereum's parser
	Geth bool
	// Concurrency bounds parallel document validation
	Concurrency int
}

// DefaultValidateConfig returns the default validation settings
func DefaultValidateConfig() ValidateConfig {
	return ValidateConfig{
		Geth:        false,
		Concurrency: 8,
	}
}
