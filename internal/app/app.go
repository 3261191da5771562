package app

import (
	"log/slog"

	"github.com/trebuchet-org/abitype/internal/domain/config"
	"github.com/trebuchet-org/abitype/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Shared dependencies
	Log  *slog.Logger
	Sink usecase.ProgressSink

	// Use cases
	ValidateDocuments *usecase.ValidateDocuments
	ValidateTypedData *usecase.ValidateTypedData
	ClassifyTypes     *usecase.ClassifyTypes
	EnumerateTypes    *usecase.EnumerateTypes
	InspectABI        *usecase.InspectABI
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	sink usecase.ProgressSink,
	validateDocuments *usecase.ValidateDocuments,
	validateTypedData *usecase.ValidateTypedData,
	classifyTypes *usecase.ClassifyTypes,
	enumerateTypes *usecase.EnumerateTypes,
	inspectABI *usecase.InspectABI,
) (*App, error) {
	return &App{
		Config:            cfg,
		Log:               log,
		Sink:              sink,
		ValidateDocuments: validateDocuments,
		ValidateTypedData: validateTypedData,
		ClassifyTypes:     classifyTypes,
		EnumerateTypes:    enumerateTypes,
		InspectABI:        inspectABI,
	}, nil
}
