package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/abitype/internal/grammar"
	"github.com/trebuchet-org/abitype/internal/validation"
)

// ClassifyTypesParams contains the type strings to classify
type ClassifyTypesParams struct {
	Types []string
}

// ClassifiedType is the decomposition of one type string
type ClassifiedType struct {
	Input     string       `json:"input"`
	Type      grammar.Type `json:"type"`
	Canonical string       `json:"canonical,omitempty"`
	HostType  string       `json:"hostType,omitempty"`
	// TypedData reports whether the type may appear in an EIP-712 struct
	TypedData bool `json:"typedData"`
}

// ClassifyTypesResult contains one entry per input, in input order
type ClassifyTypesResult struct {
	Types        []ClassifiedType `json:"types"`
	Unrecognized int              `json:"unrecognized"`
}

// ClassifyTypes is the use case for classifying type strings against the grammar
type ClassifyTypes struct {
	classifier *grammar.Classifier
}

// NewClassifyTypes creates a new ClassifyTypes use case
func NewClassifyTypes(classifier *grammar.Classifier) *ClassifyTypes {
	return &ClassifyTypes{classifier: classifier}
}

// Run classifies every input
func (uc *ClassifyTypes) Run(_ context.Context, params ClassifyTypesParams) (*ClassifyTypesResult, error) {
	if len(params.Types) == 0 {
		return nil, fmt.Errorf("no types given")
	}

	result := &ClassifyTypesResult{Types: make([]ClassifiedType, 0, len(params.Types))}
	for _, s := range params.Types {
		t := uc.classifier.Classify(s)
		entry := ClassifiedType{
			Input:     s,
			Type:      t,
			TypedData: validation.IsTypedDataType(t),
		}
		if t.Valid() {
			entry.Canonical = t.Canonical()
			entry.HostType = uc.classifier.HostType(t)
		} else {
			result.Unrecognized++
		}
		result.Types = append(result.Types, entry)
	}
	return result, nil
}
