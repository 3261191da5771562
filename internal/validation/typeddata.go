package validation

import (
	"encoding/json"
	"math/big"
	"regexp"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/samber/lo"
	"github.com/trebuchet-org/abitype/internal/domain"
	"github.com/trebuchet-org/abitype/internal/grammar"
)

// looks like a sized primitive even though it failed to parse (uint7, bytes33, fixed128x18)
var primitiveLikeRe = regexp.MustCompile(`^(u?int|bytes|u?fixed)[0-9x]*$`)

// sorted so that ties in closest resolve the same way on every run
var domainFields = func() []string {
	keys := lo.Keys(domain.DomainFieldTypes)
	slices.Sort(keys)
	return keys
}()

// IsTypedDataType reports whether t is a type EIP-712 can express directly.
// Tuples, functions and the unsized int/uint aliases are excluded.
func IsTypedDataType(t grammar.Type) bool {
	if !t.Valid() {
		return false
	}
	switch t.Kind {
	case grammar.KindTuple, grammar.KindFunction:
		return false
	case grammar.KindInt:
		return t.Size != 0
	}
	return true
}

// TypedDataValidator checks EIP-712 struct definitions and domains
type TypedDataValidator struct {
	classifier *grammar.Classifier
}

// NewTypedDataValidator creates a validator using the given type grammar
func NewTypedDataValidator(classifier *grammar.Classifier) *TypedDataValidator {
	return &TypedDataValidator{classifier: classifier}
}

// Validate checks the struct map. primaryType may be empty.
// Struct references may be cyclic; only resolution is checked.
func (v *TypedDataValidator) Validate(types domain.TypedData, primaryType string) *Report {
	r := NewReport("")
	names := lo.Keys(types)
	slices.Sort(names)

	for _, name := range names {
		path := field("types", name)
		if name == "" {
			r.add(domain.InvalidFieldValue, path, "struct name must not be empty")
		} else if t := v.classifier.Classify(name); IsTypedDataType(t) {
			r.add(domain.ReservedStructName, path, "struct name %q shadows a primitive type", name)
		}

		seen := make(map[string]bool, len(types[name]))
		for i, p := range types[name] {
			fpath := index(path, i)
			switch {
			case p.Name == "":
				r.add(domain.MissingRequiredField, field(fpath, "name"), "field has no name")
			case seen[p.Name]:
				r.add(domain.DuplicateField, field(fpath, "name"), "field %q is declared more than once in %s", p.Name, name)
			}
			seen[p.Name] = true

			if p.Type == "" {
				r.add(domain.MissingRequiredField, field(fpath, "type"), "field has no type")
				continue
			}
			v.checkFieldType(r, fpath, p.Type, types, names)
		}
	}

	if primaryType != "" {
		if _, ok := types[primaryType]; !ok {
			r.add(domain.UnknownStructReference, "primaryType", "primary type %q is not defined", primaryType).Suggestion =
				closest(primaryType, names)
		}
	}

	if fields, ok := types[domain.EIP712DomainType]; ok {
		path := field("types", domain.EIP712DomainType)
		for i, p := range fields {
			expected, known := domain.DomainFieldTypes[p.Name]
			switch {
			case p.Name == "":
			case !known:
				r.add(domain.UnexpectedField, field(index(path, i), "name"), "%q is not an EIP712Domain field", p.Name).Suggestion =
					closest(p.Name, domainFields)
			case p.Type != expected:
				r.add(domain.InvalidFieldValue, field(index(path, i), "type"), "domain field %q must be %s, got %q", p.Name, expected, p.Type)
			}
		}
	}

	return r
}

func (v *TypedDataValidator) checkFieldType(r *Report, path, typ string, types domain.TypedData, names []string) {
	base, suffixes, ok := grammar.SplitArray(typ)
	if !ok {
		r.add(domain.UnrecognizedType, path, "unbalanced array brackets in %q", typ)
		return
	}

	if _, isStruct := types[base]; isStruct {
		if len(suffixes) == 0 {
			return
		}
		// struct arrays obey the same suffix rules as tuple arrays
		switch t := v.classifier.Classify("tuple" + typ[len(base):]); t.Status {
		case grammar.StatusDepthExceeded:
			r.add(domain.ArrayDepthExceeded, path, "%s", t.Reason)
		case grammar.StatusUnrecognized:
			r.add(domain.UnrecognizedType, path, "%s", t.Reason)
		}
		return
	}

	t := v.classifier.Classify(typ)
	switch t.Status {
	case grammar.StatusRecognized:
		if !IsTypedDataType(t) {
			r.add(domain.UnsupportedType, path, "%s cannot be used in typed data", typ)
			return
		}
		r.use(path, t)
	case grammar.StatusDepthExceeded:
		r.add(domain.ArrayDepthExceeded, path, "%s", t.Reason)
	default:
		if grammar.ParsePrimitive(base).Valid() || primitiveLikeRe.MatchString(base) {
			r.add(domain.UnrecognizedType, path, "%s", t.Reason).Suggestion = suggestType(typ)
			return
		}
		r.add(domain.UnknownStructReference, path, "type %q does not resolve to a struct", base).Suggestion =
			suggestType(typ, names...)
	}
}

// ValidateDomain type checks each present domain field. No field is required.
func (v *TypedDataValidator) ValidateDomain(d domain.TypedDataDomain) *Report {
	r := NewReport("")
	keys := lo.Keys(d)
	slices.Sort(keys)

	for _, key := range keys {
		raw := d[key]
		path := field("domain", key)
		if isNull(raw) {
			continue
		}

		switch key {
		case domain.DomainName, domain.DomainVersion:
			if _, ok := jsonString(raw); !ok {
				r.add(domain.InvalidFieldValue, path, "%s must be a string", key)
			}
		case domain.DomainChainID:
			checkChainID(r, path, raw)
		case domain.DomainSalt:
			s, ok := jsonString(raw)
			if !ok {
				r.add(domain.InvalidFieldValue, path, "salt must be a hex string")
				continue
			}
			b, err := hexutil.Decode(s)
			if err != nil {
				r.add(domain.InvalidFieldValue, path, "salt is not valid hex: %v", err)
			} else if len(b) != 32 {
				r.add(domain.InvalidFieldValue, path, "salt must be 32 bytes, got %d", len(b))
			}
		case domain.DomainVerifyingContract:
			s, ok := jsonString(raw)
			if !ok || !has0xPrefix(s) || !common.IsHexAddress(s) {
				r.add(domain.InvalidFieldValue, path, "verifyingContract must be a 0x-prefixed 20 byte hex address")
			}
		default:
			r.add(domain.UnexpectedField, path, "%q is not a domain field", key).Suggestion = closest(key, domainFields)
		}
	}
	return r
}

func checkChainID(r *Report, path string, raw json.RawMessage) {
	var id *big.Int
	if s, ok := jsonString(raw); ok {
		parsed, ok := math.ParseBig256(s)
		if !ok || s == "" {
			r.add(domain.InvalidFieldValue, path, "chainId %q is not a decimal or hex uint256", s)
			return
		}
		id = parsed
	} else {
		parsed, ok := new(big.Int).SetString(strings.TrimSpace(string(raw)), 10)
		if !ok {
			r.add(domain.InvalidFieldValue, path, "chainId must be an integer or numeric string, got %s", string(raw))
			return
		}
		id = parsed
	}
	if id.Sign() < 0 || id.BitLen() > 256 {
		r.add(domain.InvalidFieldValue, path, "chainId %s is outside the uint256 range", id)
	}
}

func isNull(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}

func jsonString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
