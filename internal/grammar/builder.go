package grammar

import (
	"fmt"
	"iter"
	"math"

	"github.com/google/wire"
	"github.com/samber/lo"
	"github.com/trebuchet-org/abitype/internal/domain"
)

// GrammarSet provides the classifier and array builder
var GrammarSet = wire.NewSet(
	NewClassifier,
	NewBuilder,
)

// Builder enumerates the array forms of a base type up to the configured depth
type Builder struct {
	classifier *Classifier
}

// NewBuilder creates a builder sharing the classifier's configuration
func NewBuilder(classifier *Classifier) *Builder {
	return &Builder{classifier: classifier}
}

// Suffixes returns every single array suffix: `[]` followed by `[N]` for each permitted length
func (b *Builder) Suffixes() []string {
	lengths := b.classifier.FixedLengths().Values()
	suffixes := make([]string, 0, len(lengths)+1)
	suffixes = append(suffixes, suffix(DynamicLength))
	for _, n := range lengths {
		suffixes = append(suffixes, suffix(n))
	}
	return suffixes
}

// All lazily yields base and every array form of it, depth-first: each form is
// followed by the forms obtained by appending one more suffix, until
// ArrayMaxDepth suffixes have been appended.
func (b *Builder) All(base string) (iter.Seq[string], error) {
	depth, err := b.checkBase(base)
	if err != nil {
		return nil, err
	}
	suffixes := b.Suffixes()
	return func(yield func(string) bool) {
		walk(base, depth, suffixes, yield)
	}, nil
}

// Count returns how many strings All would yield, saturating at math.MaxInt
func (b *Builder) Count(base string) (int, error) {
	depth, err := b.checkBase(base)
	if err != nil {
		return 0, err
	}
	n := len(b.Suffixes())
	total, level := 1, 1
	for i := 0; i < depth; i++ {
		if level > math.MaxInt/n {
			return math.MaxInt, nil
		}
		level *= n
		if total > math.MaxInt-level {
			return math.MaxInt, nil
		}
		total += level
	}
	return total, nil
}

// TupleForms yields tuple and its array forms; these are exactly the types
// that require components.
func (b *Builder) TupleForms() (iter.Seq[string], error) {
	return b.All("tuple")
}

// PrimitiveForms yields every non-tuple primitive and its array forms
func (b *Builder) PrimitiveForms() (iter.Seq[string], error) {
	if !b.classifier.Config().Bounded() {
		return nil, domain.ErrUnboundedDepth
	}
	bases := lo.Without(Primitives(), "tuple")
	return func(yield func(string) bool) {
		for _, base := range bases {
			seq, err := b.All(base)
			if err != nil {
				return
			}
			for form := range seq {
				if !yield(form) {
					return
				}
			}
		}
	}, nil
}

// PrimitiveCount is the number of forms PrimitiveForms yields
func (b *Builder) PrimitiveCount() (int, error) {
	if !b.classifier.Config().Bounded() {
		return 0, domain.ErrUnboundedDepth
	}
	total := 0
	for _, base := range lo.Without(Primitives(), "tuple") {
		n, err := b.Count(base)
		if err != nil {
			return 0, err
		}
		if total > math.MaxInt-n {
			return math.MaxInt, nil
		}
		total += n
	}
	return total, nil
}

func (b *Builder) checkBase(base string) (int, error) {
	cfg := b.classifier.Config()
	if !cfg.Bounded() {
		return 0, domain.ErrUnboundedDepth
	}
	if t := ParsePrimitive(base); !t.Valid() {
		return 0, fmt.Errorf("cannot build array types from %q: %s", base, t.Reason)
	}
	return cfg.ArrayMaxDepth, nil
}

func walk(prefix string, remaining int, suffixes []string, yield func(string) bool) bool {
	if !yield(prefix) {
		return false
	}
	if remaining == 0 {
		return true
	}
	for _, s := range suffixes {
		if !walk(prefix+s, remaining-1, suffixes, yield) {
			return false
		}
	}
	return true
}
