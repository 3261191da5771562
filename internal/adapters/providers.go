package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/abitype/internal/adapters/abi"
	"github.com/trebuchet-org/abitype/internal/adapters/fs"
	"github.com/trebuchet-org/abitype/internal/adapters/interactive"
	"github.com/trebuchet-org/abitype/internal/domain/config"
	"github.com/trebuchet-org/abitype/internal/grammar"
	"github.com/trebuchet-org/abitype/internal/usecase"
	"github.com/trebuchet-org/abitype/internal/validation"
)

// ProvideGrammarConfig provides the grammar section of RuntimeConfig
func ProvideGrammarConfig(cfg *config.RuntimeConfig) config.GrammarConfig {
	return cfg.Grammar
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewDocumentLoaderAdapter,
	wire.Bind(new(usecase.DocumentLoader), new(*fs.DocumentLoaderAdapter)),
)

// ABISet provides go-ethereum backed implementations
var ABISet = wire.NewSet(
	abi.NewGethCheckerAdapter,
	wire.Bind(new(usecase.CompatChecker), new(*abi.GethCheckerAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.EntrySelector), new(*interactive.SelectorAdapter)),
)

// AllAdapters includes all adapter sets together with the grammar and validators they depend on
var AllAdapters = wire.NewSet(
	// Provider functions
	ProvideGrammarConfig,

	grammar.GrammarSet,
	validation.ValidationSet,

	FSSet,
	ABISet,
	InteractiveSet,
)
