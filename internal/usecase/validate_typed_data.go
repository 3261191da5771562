package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/samber/lo"
	"github.com/trebuchet-org/abitype/internal/domain"
	"github.com/trebuchet-org/abitype/internal/validation"
)

// ValidateTypedDataParams contains parameters for typed-data validation
type ValidateTypedDataParams struct {
	Path string
	// PrimaryType overrides the document's primaryType when set
	PrimaryType string
}

// StructSummary describes one struct of a typed-data document
type StructSummary struct {
	Name       string   `json:"name"`
	Fields     int      `json:"fields"`
	References []string `json:"references"`
	// ReferencedBy lists the structs whose fields use this struct
	ReferencedBy []string `json:"referencedBy"`
	Primary      bool     `json:"primary,omitempty"`
}

// ValidateTypedDataResult contains the report and the struct graph of a typed-data document
type ValidateTypedDataResult struct {
	Source      string             `json:"source"`
	PrimaryType string             `json:"primaryType,omitempty"`
	Report      *validation.Report `json:"report"`
	Structs     []StructSummary    `json:"structs"`
	// EncodeType and TypeHash are only set when the document is valid and has a primary type
	EncodeType string `json:"encodeType,omitempty"`
	TypeHash   string `json:"typeHash,omitempty"`
}

// ValidateTypedData is the use case for checking an EIP-712 document in depth
type ValidateTypedData struct {
	loader    DocumentLoader
	validator *validation.TypedDataValidator
	sink      ProgressSink
	log       *slog.Logger
}

// NewValidateTypedData creates a new ValidateTypedData use case
func NewValidateTypedData(loader DocumentLoader, validator *validation.TypedDataValidator, sink ProgressSink, log *slog.Logger) *ValidateTypedData {
	return &ValidateTypedData{
		loader:    loader,
		validator: validator,
		sink:      sink,
		log:       log,
	}
}

// Run validates the types and domain of the document at params.Path
func (uc *ValidateTypedData) Run(ctx context.Context, params ValidateTypedDataParams) (*ValidateTypedDataResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading typed data",
		Spinner: true,
	})

	doc, err := uc.loader.Load(ctx, params.Path)
	if err != nil {
		return nil, err
	}
	if !doc.HasTypes {
		return nil, fmt.Errorf("%s has no types section: %w", params.Path, domain.ErrUnsupportedFormat)
	}

	primary := doc.PrimaryType
	if params.PrimaryType != "" {
		primary = params.PrimaryType
	}

	report := uc.validator.Validate(doc.Types, primary)
	report.Source = doc.Source
	if doc.Domain != nil {
		report.Merge(uc.validator.ValidateDomain(doc.Domain))
	}

	result := &ValidateTypedDataResult{
		Source:      doc.Source,
		PrimaryType: primary,
		Report:      report,
		Structs:     structGraph(doc.Types, primary),
	}

	if report.Valid() && primary != "" {
		if result.EncodeType, err = validation.EncodeType(doc.Types, primary); err != nil {
			return nil, err
		}
		hash, err := validation.TypeHash(doc.Types, primary)
		if err != nil {
			return nil, err
		}
		result.TypeHash = hash.Hex()
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})
	uc.log.Debug("validated typed data", "source", doc.Source, "structs", len(doc.Types), "errors", len(report.Errors))
	return result, nil
}

func structGraph(types domain.TypedData, primary string) []StructSummary {
	names := lo.Keys(types)
	slices.Sort(names)

	refs := make(map[string][]string, len(names))
	referencedBy := make(map[string][]string, len(names))
	for _, name := range names {
		refs[name] = validation.StructRefs(types, name)
		for _, ref := range refs[name] {
			referencedBy[ref] = append(referencedBy[ref], name)
		}
	}

	return lo.Map(names, func(name string, _ int) StructSummary {
		return StructSummary{
			Name:         name,
			Fields:       len(types[name]),
			References:   lo.Ternary(refs[name] == nil, []string{}, refs[name]),
			ReferencedBy: lo.Ternary(referencedBy[name] == nil, []string{}, referencedBy[name]),
			Primary:      name == primary,
		}
	})
}
