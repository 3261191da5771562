package grammar

import (
	"fmt"
	"strconv"

	"github.com/trebuchet-org/abitype/internal/domain/config"
)

// Classifier recognizes ABI type strings under a grammar configuration
type Classifier struct {
	cfg     config.GrammarConfig
	lengths Range
}

// NewClassifier creates a classifier for the given configuration
func NewClassifier(cfg config.GrammarConfig) *Classifier {
	return &Classifier{
		cfg:     cfg,
		lengths: NewRange(cfg.FixedArrayMinLength, cfg.FixedArrayMaxLength),
	}
}

// Config returns the grammar configuration in use
func (c *Classifier) Config() config.GrammarConfig {
	return c.cfg
}

// FixedLengths returns the table of permitted fixed array lengths
func (c *Classifier) FixedLengths() Range {
	return c.lengths
}

// Classify decomposes s into a Type.
//
// With a bounded depth every fixed length must come from the configured length
// table and be written canonically, and more than ArrayMaxDepth suffixes yields
// StatusDepthExceeded. With an unbounded depth any number of suffixes and any
// non-negative length (including 0) is accepted.
func (c *Classifier) Classify(s string) Type {
	base, suffixes, ok := SplitArray(s)
	if !ok {
		return unrecognized(s, "unbalanced array brackets")
	}

	t := ParsePrimitive(base)
	t.Raw = s
	if !t.Valid() {
		return t
	}

	dims := make([]int, 0, len(suffixes))
	for _, inner := range suffixes {
		if inner == "" {
			dims = append(dims, DynamicLength)
			continue
		}
		if !isDigits(inner) {
			return unrecognized(s, fmt.Sprintf("array length %q is not a non-negative integer", inner))
		}
		n, err := strconv.Atoi(inner)
		if err != nil {
			return unrecognized(s, fmt.Sprintf("array length %s is out of range", inner))
		}
		if c.cfg.Bounded() {
			if strconv.Itoa(n) != inner {
				return unrecognized(s, fmt.Sprintf("array length %q is not canonical", inner))
			}
			if !c.lengths.Contains(n) {
				return unrecognized(s, fmt.Sprintf("fixed array length %d is outside [%d, %d]", n, c.lengths.Min, c.lengths.Max))
			}
		}
		dims = append(dims, n)
	}
	if len(dims) > 0 {
		t.Dims = dims
	}

	if c.cfg.Bounded() && len(dims) > c.cfg.ArrayMaxDepth {
		t.Status = StatusDepthExceeded
		t.Reason = fmt.Sprintf("array depth %d exceeds maximum %d", len(dims), c.cfg.ArrayMaxDepth)
	}
	return t
}

// HostType returns the Go type a decoder would use for t, honoring the
// configured address and bytes types.
func (c *Classifier) HostType(t Type) string {
	if t.Status == StatusUnrecognized {
		return ""
	}
	// the last suffix is the outermost dimension
	if t.IsArray() {
		return suffix(t.Dims[len(t.Dims)-1]) + c.HostType(t.elem())
	}

	switch t.Kind {
	case KindAddress:
		return c.cfg.AddressType
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindFunction:
		return "[24]byte"
	case KindTuple:
		return "struct"
	case KindBytes:
		if t.isDynamicBytes() {
			return c.cfg.BytesType
		}
		return fmt.Sprintf("[%d]byte", t.Size)
	case KindInt:
		switch bits := t.Bits(); bits {
		case 8, 16, 32, 64:
			if !t.Signed {
				return fmt.Sprintf("uint%d", bits)
			}
			return fmt.Sprintf("int%d", bits)
		default:
			return "*big.Int"
		}
	}
	return ""
}
