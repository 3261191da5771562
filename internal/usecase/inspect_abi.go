package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/samber/lo"
	"github.com/trebuchet-org/abitype/internal/domain"
	"github.com/trebuchet-org/abitype/internal/domain/config"
	"github.com/trebuchet-org/abitype/internal/grammar"
	"github.com/trebuchet-org/abitype/internal/validation"
)

// InspectABIParams contains parameters for inspecting the entries of an ABI
type InspectABIParams struct {
	Path string
	// Query selects entries by name, signature or selector
	Query string
	// Interactive allows prompting when the query does not pick a single entry
	Interactive bool
}

// EntrySummary describes one ABI entry
type EntrySummary struct {
	Index           int                   `json:"index"`
	Type            domain.EntryType      `json:"type"`
	Name            string                `json:"name,omitempty"`
	Signature       string                `json:"signature,omitempty"`
	Selector        string                `json:"selector,omitempty"`
	StateMutability string                `json:"stateMutability,omitempty"`
	Inputs          []domain.AbiParameter `json:"inputs,omitempty"`
	Outputs         []domain.AbiParameter `json:"outputs,omitempty"`
}

// InspectABIResult contains the entry listing and, when one entry was picked, the selection
type InspectABIResult struct {
	Source   string             `json:"source"`
	Entries  []EntrySummary     `json:"entries"`
	Selected *EntrySummary      `json:"selected,omitempty"`
	Report   *validation.Report `json:"report"`
}

// InspectABI is the use case for listing and selecting ABI entries
type InspectABI struct {
	cfg        *config.RuntimeConfig
	loader     DocumentLoader
	validator  *validation.ABIValidator
	classifier *grammar.Classifier
	selector   EntrySelector
	sink       ProgressSink
	log        *slog.Logger
}

// NewInspectABI creates a new InspectABI use case
func NewInspectABI(
	cfg *config.RuntimeConfig,
	loader DocumentLoader,
	validator *validation.ABIValidator,
	classifier *grammar.Classifier,
	selector EntrySelector,
	sink ProgressSink,
	log *slog.Logger,
) *InspectABI {
	return &InspectABI{
		cfg:        cfg,
		loader:     loader,
		validator:  validator,
		classifier: classifier,
		selector:   selector,
		sink:       sink,
		log:        log,
	}
}

// Run lists the entries of the ABI at params.Path and resolves params.Query
func (uc *InspectABI) Run(ctx context.Context, params InspectABIParams) (*InspectABIResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading ABI",
		Spinner: true,
	})

	doc, err := uc.loader.Load(ctx, params.Path)
	if err != nil {
		return nil, err
	}
	if !doc.HasABI {
		return nil, fmt.Errorf("%s has no ABI: %w", params.Path, domain.ErrUnsupportedFormat)
	}

	report := uc.validator.Validate(doc.ABI)
	report.Source = doc.Source

	entries := make([]EntrySummary, 0, len(doc.ABI))
	for i, e := range doc.ABI {
		entries = append(entries, uc.summarize(i, e))
	}
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})

	result := &InspectABIResult{Source: doc.Source, Entries: entries, Report: report}
	interactive := params.Interactive && !uc.cfg.NonInteractive

	candidates := entries
	if params.Query != "" {
		candidates = matchEntries(entries, params.Query)
		if len(candidates) == 0 {
			return nil, domain.EntryNotFoundErr{
				Query:     params.Query,
				Available: lo.Uniq(lo.FilterMap(entries, func(e EntrySummary, _ int) (string, bool) { return e.Name, e.Name != "" })),
			}
		}
		result.Entries = candidates
	}

	switch {
	case len(candidates) == 1 && params.Query != "":
		result.Selected = &candidates[0]
	case interactive && len(candidates) > 0:
		selected, err := uc.selector.SelectEntry(ctx, candidates, "Select an entry")
		if err != nil {
			return nil, fmt.Errorf("entry selection failed: %w", err)
		}
		result.Selected = selected
	}

	uc.log.Debug("inspected abi", "source", doc.Source, "entries", len(entries), "matched", len(result.Entries))
	return result, nil
}

func (uc *InspectABI) summarize(i int, e domain.AbiEntry) EntrySummary {
	s := EntrySummary{
		Index:   i,
		Type:    e.Type,
		Name:    e.EntryName(),
		Inputs:  e.Inputs,
		Outputs: e.Outputs,
	}
	if e.StateMutability != nil {
		s.StateMutability = string(*e.StateMutability)
	}

	sig, err := validation.Signature(uc.classifier, e)
	if err != nil {
		uc.log.Debug("no signature for entry", "index", i, "error", err)
		return s
	}
	s.Signature = sig

	switch e.Type {
	case domain.FunctionEntry, domain.ErrorEntry:
		s.Selector = hexutil.Encode(crypto.Keccak256([]byte(sig))[:4])
	case domain.EventEntry:
		if e.Anonymous == nil || !*e.Anonymous {
			s.Selector = crypto.Keccak256Hash([]byte(sig)).Hex()
		}
	}
	return s
}

func matchEntries(entries []EntrySummary, query string) []EntrySummary {
	if sig := lo.Filter(entries, func(e EntrySummary, _ int) bool { return e.Signature == query }); len(sig) > 0 {
		return sig
	}
	if strings.HasPrefix(query, "0x") {
		return lo.Filter(entries, func(e EntrySummary, _ int) bool { return strings.EqualFold(e.Selector, query) })
	}
	return lo.Filter(entries, func(e EntrySummary, _ int) bool {
		return e.Name == query || (e.Name == "" && string(e.Type) == query)
	})
}
