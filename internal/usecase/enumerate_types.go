package usecase

import (
	"context"
	"fmt"
	"iter"

	"github.com/samber/lo"
	"github.com/trebuchet-org/abitype/internal/grammar"
)

// DefaultEnumerateLimit caps the number of forms returned when no limit is given
const DefaultEnumerateLimit = 1000

// Families accepted in place of a single base type
const (
	FamilyTuple     = "tuple"
	FamilyPrimitive = "primitive"
)

// EnumerateTypesParams contains parameters for listing the array forms of a base type
type EnumerateTypesParams struct {
	Base string
	// Family enumerates every tuple form or every non-tuple form instead of Base
	Family string
	// Limit caps the returned forms. Zero means DefaultEnumerateLimit, negative means no cap.
	Limit int
}

// EnumerateTypesResult contains the enumerated forms
type EnumerateTypesResult struct {
	Base      string   `json:"base"`
	Forms     []string `json:"forms"`
	Total     int      `json:"total"`
	Truncated bool     `json:"truncated"`
}

// EnumerateTypes is the use case for listing every array type derivable from a base
type EnumerateTypes struct {
	builder *grammar.Builder
}

// NewEnumerateTypes creates a new EnumerateTypes use case
func NewEnumerateTypes(builder *grammar.Builder) *EnumerateTypes {
	return &EnumerateTypes{builder: builder}
}

// Run enumerates forms of params.Base, or of every base in params.Family. It fails with domain.ErrUnboundedDepth
// when no maximum array depth is configured.
func (uc *EnumerateTypes) Run(ctx context.Context, params EnumerateTypesParams) (*EnumerateTypesResult, error) {
	total, seq, err := uc.forms(params)
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit == 0 {
		limit = DefaultEnumerateLimit
	}

	result := &EnumerateTypesResult{Base: lo.Ternary(params.Family != "", params.Family, params.Base), Total: total, Forms: []string{}}
	for form := range seq {
		if limit > 0 && len(result.Forms) == limit {
			result.Truncated = true
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Forms = append(result.Forms, form)
	}
	return result, nil
}

func (uc *EnumerateTypes) forms(params EnumerateTypesParams) (int, iter.Seq[string], error) {
	var (
		total int
		seq   iter.Seq[string]
		err   error
	)
	switch params.Family {
	case "":
		if total, err = uc.builder.Count(params.Base); err != nil {
			return 0, nil, err
		}
		seq, err = uc.builder.All(params.Base)
	case FamilyTuple:
		if total, err = uc.builder.Count("tuple"); err != nil {
			return 0, nil, err
		}
		seq, err = uc.builder.TupleForms()
	case FamilyPrimitive:
		if total, err = uc.builder.PrimitiveCount(); err != nil {
			return 0, nil, err
		}
		seq, err = uc.builder.PrimitiveForms()
	default:
		return 0, nil, fmt.Errorf("unknown type family %q (valid: %s, %s)", params.Family, FamilyTuple, FamilyPrimitive)
	}
	return total, seq, err
}
