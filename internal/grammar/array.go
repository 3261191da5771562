package grammar

import (
	"strings"
)

// SplitArray separates trailing array suffixes from a type string.
// The returned suffix contents are in left to right order, "" for `[]`.
// ok is false when the brackets are unbalanced or appear inside the base.
func SplitArray(s string) (base string, suffixes []string, ok bool) {
	rest := s
	for strings.HasSuffix(rest, "]") {
		open := strings.LastIndex(rest, "[")
		if open < 0 {
			return "", nil, false
		}
		inner := rest[open+1 : len(rest)-1]
		if strings.ContainsAny(inner, "[]") {
			return "", nil, false
		}
		suffixes = append(suffixes, inner)
		rest = rest[:open]
	}
	if strings.ContainsAny(rest, "[]") {
		return "", nil, false
	}
	// collected right to left
	for i, j := 0, len(suffixes)-1; i < j; i, j = i+1, j-1 {
		suffixes[i], suffixes[j] = suffixes[j], suffixes[i]
	}
	return rest, suffixes, true
}

// isDigits reports whether s is a non-empty run of ASCII digits
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
