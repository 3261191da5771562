package validation

import (
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/abitype/internal/grammar"
)

var primitiveNames = grammar.Primitives()

// closest returns the best fuzzy match for input among candidates, or "" when
// nothing matches or input already is a candidate.
func closest(input string, candidates []string) string {
	if input == "" || len(candidates) == 0 {
		return ""
	}
	matches := fuzzy.Find(input, candidates)
	if len(matches) == 0 || matches[0].Str == input {
		return ""
	}
	return matches[0].Str
}

// suggestType proposes a primitive for a misspelled type, keeping its array suffixes
func suggestType(s string, extra ...string) string {
	base, _, ok := grammar.SplitArray(s)
	if !ok {
		return ""
	}
	candidates := primitiveNames
	if len(extra) > 0 {
		candidates = append(append([]string(nil), extra...), primitiveNames...)
	}
	best := closest(base, candidates)
	if best == "" {
		return ""
	}
	return best + s[len(base):]
}
