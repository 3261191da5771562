package usecase

import (
	"context"

	"github.com/trebuchet-org/abitype/internal/domain"
)

// DocumentLoader reads an input file into a document
type DocumentLoader interface {
	Load(ctx context.Context, path string) (*domain.Document, error)
}

// CompatChecker cross-checks a raw ABI against an independent parser and
// returns human readable disagreements
type CompatChecker interface {
	CheckABI(ctx context.Context, raw []byte) []string
}

// EntrySelector handles interactive selection of ABI entries
type EntrySelector interface {
	SelectEntry(ctx context.Context, entries []EntrySummary, prompt string) (*EntrySummary, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
