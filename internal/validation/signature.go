package validation

import (
	"fmt"
	"strings"

	"github.com/trebuchet-org/abitype/internal/domain"
	"github.com/trebuchet-org/abitype/internal/grammar"
)

// Signature renders the canonical signature of an entry, e.g.
// "transfer(address,uint256)". Tuples are expanded to their component lists
// and bare int/uint are widened to 256 bits. The entry should be valid.
func Signature(c *grammar.Classifier, e domain.AbiEntry) (string, error) {
	name := e.EntryName()
	switch e.Type {
	case domain.ConstructorEntry, domain.FallbackEntry, domain.ReceiveEntry:
		name = string(e.Type)
	case domain.FunctionEntry, domain.EventEntry, domain.ErrorEntry:
		if name == "" {
			return "", fmt.Errorf("%s entry has no name", e.Type)
		}
	default:
		return "", fmt.Errorf("unknown entry type %q", e.Type)
	}

	params, err := canonicalList(c, e.Inputs)
	if err != nil {
		return "", err
	}
	return name + "(" + params + ")", nil
}

func canonicalList(c *grammar.Classifier, params []domain.AbiParameter) (string, error) {
	types := make([]string, 0, len(params))
	for _, p := range params {
		s, err := canonicalParam(c, p)
		if err != nil {
			return "", err
		}
		types = append(types, s)
	}
	return strings.Join(types, ","), nil
}

func canonicalParam(c *grammar.Classifier, p domain.AbiParameter) (string, error) {
	t := c.Classify(p.Type)
	if t.Status == grammar.StatusUnrecognized {
		return "", fmt.Errorf("parameter %q: %s", p.Name, t.Reason)
	}
	if !t.IsTuple() {
		return t.Canonical(), nil
	}
	inner, err := canonicalList(c, p.Components)
	if err != nil {
		return "", err
	}
	return "(" + inner + ")" + t.Raw[len(t.Base):], nil
}
