package abi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/samber/lo"
	"github.com/trebuchet-org/abitype/internal/domain"
	"github.com/trebuchet-org/abitype/internal/grammar"
	"github.com/trebuchet-org/abitype/internal/usecase"
	"github.com/trebuchet-org/abitype/internal/validation"
)

// GethCheckerAdapter cross-checks ABIs against go-ethereum's ABI parser
type GethCheckerAdapter struct {
	classifier *grammar.Classifier
	log        *slog.Logger
}

// NewGethCheckerAdapter creates a new GethCheckerAdapter
func NewGethCheckerAdapter(classifier *grammar.Classifier, log *slog.Logger) *GethCheckerAdapter {
	return &GethCheckerAdapter{classifier: classifier, log: log}
}

// CheckABI parses raw with go-ethereum and compares the resulting signatures
// with the ones derived locally
func (c *GethCheckerAdapter) CheckABI(ctx context.Context, raw []byte) []string {
	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		return []string{fmt.Sprintf("go-ethereum rejects the ABI: %v", err)}
	}

	var entries domain.Abi
	if err := json.Unmarshal(raw, &entries); err != nil {
		return []string{fmt.Sprintf("ABI could not be decoded: %v", err)}
	}

	ours := map[domain.EntryType][]string{}
	for _, e := range entries {
		switch e.Type {
		case domain.FunctionEntry, domain.EventEntry, domain.ErrorEntry:
		default:
			continue
		}
		sig, err := validation.Signature(c.classifier, e)
		if err != nil {
			c.log.Debug("skipping entry without signature", "entry", e.EntryName(), "error", err)
			continue
		}
		ours[e.Type] = append(ours[e.Type], sig)
	}

	theirs := map[domain.EntryType][]string{
		domain.FunctionEntry: lo.MapToSlice(parsed.Methods, func(_ string, m abi.Method) string { return m.Sig }),
		domain.EventEntry:    lo.MapToSlice(parsed.Events, func(_ string, e abi.Event) string { return e.Sig }),
		domain.ErrorEntry:    lo.MapToSlice(parsed.Errors, func(_ string, e abi.Error) string { return e.Sig }),
	}

	var warnings []string
	for _, kind := range []domain.EntryType{domain.FunctionEntry, domain.EventEntry, domain.ErrorEntry} {
		onlyOurs, onlyTheirs := lo.Difference(lo.Uniq(ours[kind]), theirs[kind])
		slices.Sort(onlyOurs)
		slices.Sort(onlyTheirs)
		for _, sig := range onlyOurs {
			warnings = append(warnings, fmt.Sprintf("go-ethereum does not list %s %s", kind, sig))
		}
		for _, sig := range onlyTheirs {
			warnings = append(warnings, fmt.Sprintf("go-ethereum derives unexpected %s %s", kind, sig))
		}
	}
	return warnings
}

// Ensure the adapter implements the interface
var _ usecase.CompatChecker = (*GethCheckerAdapter)(nil)
