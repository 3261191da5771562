package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/trebuchet-org/abitype/internal/domain"
	"github.com/trebuchet-org/abitype/internal/domain/config"
	"github.com/trebuchet-org/abitype/internal/validation"
	"golang.org/x/sync/errgroup"
)

// ValidateDocumentsParams contains parameters for validating a batch of documents
type ValidateDocumentsParams struct {
	Paths []string
	// Geth cross-checks each ABI with go-ethereum's parser. It is combined with the configured default.
	Geth bool
}

// DocumentResult is the outcome for one input path. Err is set when the file
// could not be loaded; Report is nil in that case.
type DocumentResult struct {
	Path   string             `json:"path"`
	Report *validation.Report `json:"report,omitempty"`
	Err    error              `json:"-"`
}

// ValidationSummary aggregates the outcome of a batch
type ValidationSummary struct {
	Documents int                      `json:"documents"`
	Valid     int                      `json:"valid"`
	Invalid   int                      `json:"invalid"`
	Failed    int                      `json:"failed"`
	Errors    int                      `json:"errors"`
	Warnings  int                      `json:"warnings"`
	ByKind    map[domain.ErrorKind]int `json:"byKind"`
}

// ValidateDocumentsResult contains one result per input path, in input order
type ValidateDocumentsResult struct {
	Results []DocumentResult  `json:"results"`
	Summary ValidationSummary `json:"summary"`
}

// OK reports whether every document loaded and validated cleanly
func (r *ValidateDocumentsResult) OK() bool {
	return r.Summary.Invalid == 0 && r.Summary.Failed == 0
}

// ValidateDocuments is the use case for validating ABI and typed-data files
type ValidateDocuments struct {
	cfg       *config.RuntimeConfig
	loader    DocumentLoader
	validator *validation.DocumentValidator
	checker   CompatChecker
	sink      ProgressSink
	log       *slog.Logger
}

// NewValidateDocuments creates a new ValidateDocuments use case
func NewValidateDocuments(
	cfg *config.RuntimeConfig,
	loader DocumentLoader,
	validator *validation.DocumentValidator,
	checker CompatChecker,
	sink ProgressSink,
	log *slog.Logger,
) *ValidateDocuments {
	return &ValidateDocuments{
		cfg:       cfg,
		loader:    loader,
		validator: validator,
		checker:   checker,
		sink:      sink,
		log:       log,
	}
}

// Run loads and validates every path concurrently
func (uc *ValidateDocuments) Run(ctx context.Context, params ValidateDocumentsParams) (*ValidateDocumentsResult, error) {
	if len(params.Paths) == 0 {
		return nil, fmt.Errorf("no documents to validate")
	}

	geth := params.Geth || uc.cfg.Validate.Geth
	results := make([]DocumentResult, len(params.Paths))
	var done atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(uc.cfg.Validate.Concurrency, 1))

	for i, path := range params.Paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = uc.validateOne(gctx, path, geth)
			uc.sink.OnProgress(gctx, ProgressEvent{
				Stage:   "validating",
				Current: int(done.Add(1)),
				Total:   len(params.Paths),
				Message: path,
				Spinner: true,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete", Total: len(params.Paths)})

	result := &ValidateDocumentsResult{
		Results: results,
		Summary: summarize(results),
	}
	uc.log.Debug("validated documents",
		"documents", result.Summary.Documents,
		"invalid", result.Summary.Invalid,
		"failed", result.Summary.Failed)
	return result, nil
}

func (uc *ValidateDocuments) validateOne(ctx context.Context, path string, geth bool) DocumentResult {
	doc, err := uc.loader.Load(ctx, path)
	if err != nil {
		uc.log.Debug("failed to load document", "path", path, "error", err)
		return DocumentResult{Path: path, Err: err}
	}

	report := uc.validator.Validate(doc)
	if geth && doc.HasABI && len(doc.RawABI) > 0 {
		report.Warnings = append(report.Warnings, uc.checker.CheckABI(ctx, doc.RawABI)...)
	}
	uc.log.Debug("validated document", "path", path, "errors", len(report.Errors), "types", len(report.Types))
	return DocumentResult{Path: path, Report: report}
}

func summarize(results []DocumentResult) ValidationSummary {
	s := ValidationSummary{
		Documents: len(results),
		ByKind:    make(map[domain.ErrorKind]int),
	}
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Failed++
			continue
		case r.Report.Valid():
			s.Valid++
		default:
			s.Invalid++
		}
		s.Errors += len(r.Report.Errors)
		s.Warnings += len(r.Report.Warnings)
		for kind, n := range r.Report.CountByKind() {
			s.ByKind[kind] += n
		}
	}
	return s
}
