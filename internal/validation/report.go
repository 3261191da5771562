package validation

import (
	"fmt"

	"github.com/google/wire"
	"github.com/samber/lo"
	"github.com/trebuchet-org/abitype/internal/domain"
	"github.com/trebuchet-org/abitype/internal/grammar"
)

// ValidationSet provides the ABI, typed-data and document validators
var ValidationSet = wire.NewSet(
	NewABIValidator,
	NewTypedDataValidator,
	NewDocumentValidator,
)

// TypeUse records the classification of a type string at a document path
type TypeUse struct {
	Path string       `json:"path"`
	Type grammar.Type `json:"type"`
}

// Report is the outcome of validating one document. It is valid when Errors is empty.
type Report struct {
	Source string                   `json:"source,omitempty"`
	Errors []domain.ValidationError `json:"errors"`
	Types  []TypeUse                `json:"types,omitempty"`
	// Warnings are advisory findings that do not make the document invalid
	Warnings []string `json:"warnings,omitempty"`
}

// NewReport creates an empty report for a source
func NewReport(source string) *Report {
	return &Report{
		Source: source,
		Errors: []domain.ValidationError{},
	}
}

// Valid reports whether no structural errors were found
func (r *Report) Valid() bool {
	return len(r.Errors) == 0
}

// Merge appends the findings of other to r
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Types = append(r.Types, other.Types...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// ErrorsOfKind filters errors by kind
func (r *Report) ErrorsOfKind(kind domain.ErrorKind) []domain.ValidationError {
	return lo.Filter(r.Errors, func(e domain.ValidationError, _ int) bool {
		return e.Kind == kind
	})
}

// CountByKind groups error counts by kind
func (r *Report) CountByKind() map[domain.ErrorKind]int {
	return lo.CountValuesBy(r.Errors, func(e domain.ValidationError) domain.ErrorKind {
		return e.Kind
	})
}

func (r *Report) add(kind domain.ErrorKind, path, format string, args ...any) *domain.ValidationError {
	r.Errors = append(r.Errors, domain.ValidationError{
		Kind:    kind,
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	})
	return &r.Errors[len(r.Errors)-1]
}

func (r *Report) use(path string, t grammar.Type) {
	r.Types = append(r.Types, TypeUse{Path: path, Type: t})
}

func field(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func index(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
