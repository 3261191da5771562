package grammar

import (
	"strconv"
	"strings"
)

// Kind is the primitive family of a type
type Kind uint8

const (
	KindUnknown Kind = iota
	KindAddress
	KindBool
	KindFunction
	KindString
	KindTuple
	KindBytes
	KindInt
)

var kindNames = map[Kind]string{
	KindUnknown:  "unknown",
	KindAddress:  "address",
	KindBool:     "bool",
	KindFunction: "function",
	KindString:   "string",
	KindTuple:    "tuple",
	KindBytes:    "bytes",
	KindInt:      "int",
}

func (k Kind) String() string {
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Status tags the outcome of classifying a type string
type Status uint8

const (
	StatusRecognized Status = iota
	StatusUnrecognized
	StatusDepthExceeded
)

func (s Status) String() string {
	switch s {
	case StatusRecognized:
		return "recognized"
	case StatusDepthExceeded:
		return "depth-exceeded"
	default:
		return "unrecognized"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// DynamicLength marks a `[]` array dimension
const DynamicLength = -1

// Type is the decomposed shape of an ABI type string
type Type struct {
	Raw    string `json:"raw"`
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`

	Kind Kind `json:"kind"`
	// Base is the type without array suffixes
	Base string `json:"base,omitempty"`
	// Signed is set for int<M>
	Signed bool `json:"signed,omitempty"`
	// Size is the width as written: bits for (u)int, bytes for bytes<M>, 0 when omitted
	Size int `json:"size,omitempty"`
	// Dims are the array dimensions left to right, DynamicLength for `[]`
	Dims []int `json:"dims,omitempty"`
}

// Valid reports whether the string classified as an ABI type
func (t Type) Valid() bool {
	return t.Status == StatusRecognized
}

// IsArray reports whether the type has at least one array suffix
func (t Type) IsArray() bool {
	return len(t.Dims) > 0
}

// Depth is the number of array suffixes
func (t Type) Depth() int {
	return len(t.Dims)
}

// IsTuple reports whether the type is tuple or an array of tuples
func (t Type) IsTuple() bool {
	return t.Kind == KindTuple
}

// RequiresComponents reports whether a parameter of this type must carry components
func (t Type) RequiresComponents() bool {
	return t.IsTuple()
}

// isDynamicBytes reports whether the type is the bare `bytes` type
func (t Type) isDynamicBytes() bool {
	return t.Kind == KindBytes && t.Size == 0 && !t.IsArray()
}

// Bits returns the semantic bit width of an integer type. Bare int/uint are 256 bits.
func (t Type) Bits() int {
	if t.Kind != KindInt {
		return 0
	}
	if t.Size == 0 {
		return 256
	}
	return t.Size
}

// elem returns the type with its last array suffix removed
func (t Type) elem() Type {
	if !t.IsArray() {
		return t
	}
	elem := t
	elem.Dims = append([]int(nil), t.Dims[:len(t.Dims)-1]...)
	elem.Raw = elem.Base + suffixString(elem.Dims)
	return elem
}

// Canonical returns the string used in signatures: bare int/uint become int256/uint256
func (t Type) Canonical() string {
	base := t.Base
	if t.Kind == KindInt && t.Size == 0 {
		base += "256"
	}
	return base + suffixString(t.Dims)
}

func suffixString(dims []int) string {
	var b strings.Builder
	for _, d := range dims {
		b.WriteString(suffix(d))
	}
	return b.String()
}

func suffix(length int) string {
	if length == DynamicLength {
		return "[]"
	}
	return "[" + strconv.Itoa(length) + "]"
}

func unrecognized(raw, reason string) Type {
	return Type{Raw: raw, Status: StatusUnrecognized, Reason: reason}
}
