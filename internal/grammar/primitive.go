package grammar

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	// 1. family 2. (opt.) width
	widthRe = regexp.MustCompile(`^(u?int|bytes)([0-9]*)$`)
	fixedRe = regexp.MustCompile(`^u?fixed([0-9]+x[0-9]+)?$`)
)

var literalKinds = map[string]Kind{
	"address":  KindAddress,
	"bool":     KindBool,
	"function": KindFunction,
	"string":   KindString,
	"tuple":    KindTuple,
}

// ParsePrimitive classifies a string without array suffixes.
// It never fails hard: an unrecognized string comes back with StatusUnrecognized and a reason.
func ParsePrimitive(s string) Type {
	if kind, ok := literalKinds[s]; ok {
		return Type{Raw: s, Status: StatusRecognized, Kind: kind, Base: s}
	}

	if fixedRe.MatchString(s) {
		return unrecognized(s, "fixed-point types are not supported")
	}

	m := widthRe.FindStringSubmatch(s)
	if m == nil {
		return unrecognized(s, fmt.Sprintf("%q is not an ABI type", s))
	}
	family, digits := m[1], m[2]

	width := 0
	if digits != "" {
		n, err := strconv.Atoi(digits)
		if err != nil || strconv.Itoa(n) != digits {
			return unrecognized(s, fmt.Sprintf("width %q is not a canonical number", digits))
		}
		width = n
	}

	switch family {
	case "bytes":
		if digits != "" && !ByteWidths.Contains(width) {
			return unrecognized(s, fmt.Sprintf("bytes width must be between %d and %d, got %d", ByteWidths.Min, ByteWidths.Max, width))
		}
		return Type{Raw: s, Status: StatusRecognized, Kind: KindBytes, Base: s, Size: width}
	default:
		if digits != "" && !BitWidths.Contains(width) {
			return unrecognized(s, fmt.Sprintf("integer width must be a multiple of %d between %d and %d, got %d", BitWidths.Step, BitWidths.Min, BitWidths.Max, width))
		}
		return Type{Raw: s, Status: StatusRecognized, Kind: KindInt, Base: s, Signed: family == "int", Size: width}
	}
}

// Primitives returns every non-array primitive type string, tuple included
func Primitives() []string {
	names := []string{"address", "bool", "function", "string", "tuple", "bytes"}
	for _, m := range ByteWidths.Values() {
		names = append(names, "bytes"+strconv.Itoa(m))
	}
	names = append(names, "int", "uint")
	for _, m := range BitWidths.Values() {
		names = append(names, "int"+strconv.Itoa(m), "uint"+strconv.Itoa(m))
	}
	return names
}
