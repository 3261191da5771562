//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/abitype/internal/adapters"
	"github.com/trebuchet-org/abitype/internal/adapters/progress"
	"github.com/trebuchet-org/abitype/internal/config"
	"github.com/trebuchet-org/abitype/internal/logging"
	"github.com/trebuchet-org/abitype/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,

		// Ambient
		logging.LoggingSet,
		progress.NewSink,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewValidateDocuments,
		usecase.NewValidateTypedData,
		usecase.NewClassifyTypes,
		usecase.NewEnumerateTypes,
		usecase.NewInspectABI,

		// App
		NewApp,
	)
	return nil, nil
}
