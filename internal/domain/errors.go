package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for operations around validation
var (
	// ErrMalformedDocument is returned when an input document is not JSON-like or has no ABI/types
	ErrMalformedDocument = errors.New("malformed document")

	// ErrUnsupportedFormat is returned for file extensions the loader does not understand
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrInvalidConfig is returned when the grammar or validation configuration is inconsistent
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnboundedDepth is returned when enumeration is requested with an unbounded array depth
	ErrUnboundedDepth = errors.New("array depth is unbounded")

	// ErrInvalidDocument is returned by batch validation when at least one document has errors
	ErrInvalidDocument = errors.New("invalid document")

	// ErrEntryNotFound is returned when a named ABI entry does not exist in a document
	ErrEntryNotFound = errors.New("entry not found")
)

// ErrorKind tags a structural validation error
type ErrorKind string

const (
	UnrecognizedType       ErrorKind = "UnrecognizedType"
	MissingRequiredField   ErrorKind = "MissingRequiredField"
	UnexpectedComponents   ErrorKind = "UnexpectedComponents"
	MissingComponents      ErrorKind = "MissingComponents"
	ArrayDepthExceeded     ErrorKind = "ArrayDepthExceeded"
	UnknownStructReference ErrorKind = "UnknownStructReference"
	ReservedStructName     ErrorKind = "ReservedStructName"
	UnknownEntryType       ErrorKind = "UnknownEntryType"
	UnexpectedField        ErrorKind = "UnexpectedField"
	InvalidFieldValue      ErrorKind = "InvalidFieldValue"
	UnsupportedType        ErrorKind = "UnsupportedType"
	DuplicateField         ErrorKind = "DuplicateField"
)

// ValidationError is a single structural problem found in a document.
// Validators collect these instead of returning them as Go errors.
type ValidationError struct {
	Kind       ErrorKind `json:"kind"`
	Path       string    `json:"path"`
	Message    string    `json:"message"`
	Suggestion string    `json:"suggestion,omitempty"`
}

func (e ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s (%s)", e.Path, e.Message, e.Kind)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(", did you mean %q?", e.Suggestion)
	}
	return msg
}

// EntryNotFoundErr reports a missing entry together with the names that do exist
type EntryNotFoundErr struct {
	Query     string
	Available []string
}

func (e EntryNotFoundErr) Error() string {
	return fmt.Sprintf("no entry matches %q (available: %v)", e.Query, e.Available)
}

func (e EntryNotFoundErr) Unwrap() error {
	return ErrEntryNotFound
}
