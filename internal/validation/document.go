package validation

import (
	"github.com/trebuchet-org/abitype/internal/domain"
)

// DocumentValidator runs every applicable check over a loaded document
type DocumentValidator struct {
	abi   *ABIValidator
	typed *TypedDataValidator
}

// NewDocumentValidator combines the ABI and typed-data validators
func NewDocumentValidator(abi *ABIValidator, typed *TypedDataValidator) *DocumentValidator {
	return &DocumentValidator{abi: abi, typed: typed}
}

// Validate returns a single report covering the ABI, types and domain sections present in doc
func (v *DocumentValidator) Validate(doc *domain.Document) *Report {
	r := NewReport(doc.Source)
	if doc.HasABI {
		r.Merge(v.abi.Validate(doc.ABI))
	}
	if doc.HasTypes {
		r.Merge(v.typed.Validate(doc.Types, doc.PrimaryType))
	}
	if doc.Domain != nil {
		r.Merge(v.typed.ValidateDomain(doc.Domain))
	}
	return r
}
