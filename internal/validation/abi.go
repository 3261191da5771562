package validation

import (
	"encoding/json"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/abitype/internal/domain"
	"github.com/trebuchet-org/abitype/internal/grammar"
)

// entryRule lists the field constraints of one entry type
type entryRule struct {
	required     []string
	mutabilities []domain.StateMutability // nil allows every mutability

	forbidName       bool
	forbidInputs     bool // absent and [] are both accepted
	forbidOutputs    bool
	forbidMutability bool
	indexedInputs    bool
}

var (
	payableOrNot = []domain.StateMutability{domain.Payable, domain.NonPayable}
	entryNames   = lo.Map(domain.EntryTypes, func(t domain.EntryType, _ int) string { return string(t) })
)

func rulesFor(t domain.EntryType) (entryRule, bool) {
	switch t {
	case domain.FunctionEntry:
		return entryRule{
			required: []string{"inputs", "name", "outputs", "stateMutability"},
		}, true
	case domain.ConstructorEntry:
		return entryRule{
			required:      []string{"inputs", "stateMutability"},
			mutabilities:  payableOrNot,
			forbidName:    true,
			forbidOutputs: true,
		}, true
	case domain.FallbackEntry:
		return entryRule{
			required:     []string{"stateMutability"},
			mutabilities: payableOrNot,
			forbidInputs: true,
		}, true
	case domain.ReceiveEntry:
		return entryRule{
			required:      []string{"stateMutability"},
			mutabilities:  []domain.StateMutability{domain.Payable},
			forbidInputs:  true,
			forbidOutputs: true,
		}, true
	case domain.EventEntry:
		return entryRule{
			required:      []string{"inputs", "name"},
			indexedInputs: true,
		}, true
	case domain.ErrorEntry:
		return entryRule{
			required:         []string{"inputs", "name"},
			forbidMutability: true,
		}, true
	default:
		return entryRule{}, false
	}
}

// ABIValidator checks the structure of ABI entries and their parameters
type ABIValidator struct {
	classifier *grammar.Classifier
}

// NewABIValidator creates a validator using the given type grammar
func NewABIValidator(classifier *grammar.Classifier) *ABIValidator {
	return &ABIValidator{classifier: classifier}
}

// Validate checks every entry of abi. Paths are rooted at "abi".
func (v *ABIValidator) Validate(abi domain.Abi) *Report {
	r := NewReport("")
	for i, entry := range abi {
		v.checkEntry(r, index("abi", i), entry)
	}
	return r
}

func (v *ABIValidator) checkEntry(r *Report, path string, e domain.AbiEntry) {
	if !checkMalformed(r, path, e.Malformed) {
		return
	}

	if e.Type == "" {
		if !domain.IsMalformed(e.Malformed, "type") {
			r.add(domain.MissingRequiredField, field(path, "type"), "entry has no type")
		}
		v.checkParams(r, field(path, "inputs"), e.Inputs, false)
		v.checkParams(r, field(path, "outputs"), e.Outputs, false)
		return
	}

	rule, ok := rulesFor(e.Type)
	if !ok {
		err := r.add(domain.UnknownEntryType, field(path, "type"), "unknown entry type %q", e.Type)
		err.Suggestion = closest(string(e.Type), entryNames)
		v.checkParams(r, field(path, "inputs"), e.Inputs, false)
		v.checkParams(r, field(path, "outputs"), e.Outputs, false)
		return
	}

	present := map[string]bool{
		"inputs":          e.Inputs != nil,
		"name":            e.Name != nil,
		"outputs":         e.Outputs != nil,
		"stateMutability": e.StateMutability != nil,
	}
	for _, name := range rule.required {
		if !present[name] && !domain.IsMalformed(e.Malformed, name) {
			r.add(domain.MissingRequiredField, field(path, name), "%s entry requires %q", e.Type, name)
		}
	}

	if e.StateMutability != nil {
		v.checkMutability(r, field(path, "stateMutability"), e.Type, *e.StateMutability, rule)
	}

	if rule.forbidName && e.Name != nil && *e.Name != "" {
		r.add(domain.UnexpectedField, field(path, "name"), "%s entry must not have a name", e.Type)
	}
	if rule.forbidInputs && len(e.Inputs) > 0 {
		r.add(domain.UnexpectedField, field(path, "inputs"), "%s entry must not have inputs", e.Type)
	} else {
		v.checkParams(r, field(path, "inputs"), e.Inputs, rule.indexedInputs)
	}
	if rule.forbidOutputs && len(e.Outputs) > 0 {
		r.add(domain.UnexpectedField, field(path, "outputs"), "%s entry must not have outputs", e.Type)
	} else {
		v.checkParams(r, field(path, "outputs"), e.Outputs, false)
	}
	if rule.forbidMutability && e.StateMutability != nil {
		r.add(domain.UnexpectedField, field(path, "stateMutability"), "%s entry must not have a state mutability", e.Type)
	}

	checkLegacyBool(r, field(path, "constant"), e.Constant)
	checkLegacyBool(r, field(path, "payable"), e.Payable)
	if e.Gas != nil {
		switch e.Gas.(type) {
		case float64, json.Number:
		default:
			r.add(domain.InvalidFieldValue, field(path, "gas"), "gas must be a number, got %T", e.Gas)
		}
	}
}

func (v *ABIValidator) checkMutability(r *Report, path string, t domain.EntryType, m domain.StateMutability, rule entryRule) {
	if !lo.Contains(domain.StateMutabilities, m) {
		r.add(domain.InvalidFieldValue, path, "unknown state mutability %q", m).Suggestion =
			closest(string(m), lo.Map(domain.StateMutabilities, func(s domain.StateMutability, _ int) string { return string(s) }))
		return
	}
	if rule.mutabilities != nil && !lo.Contains(rule.mutabilities, m) {
		allowed := lo.Map(rule.mutabilities, func(s domain.StateMutability, _ int) string { return string(s) })
		r.add(domain.InvalidFieldValue, path, "%s entry must be %s, got %q", t, strings.Join(allowed, " or "), m)
	}
}

// checkMalformed reports fields that had the wrong JSON type. It returns false
// when the value was not an object and nothing else can be checked.
func checkMalformed(r *Report, path string, issues []domain.FieldIssue) bool {
	for _, issue := range issues {
		if issue.Field == "" {
			r.add(domain.InvalidFieldValue, path, "%s", issue.Message)
			return false
		}
		r.add(domain.InvalidFieldValue, field(path, issue.Field), "%s", issue.Message)
	}
	return true
}

func checkLegacyBool(r *Report, path string, value any) {
	if value == nil {
		return
	}
	if _, ok := value.(bool); !ok {
		r.add(domain.InvalidFieldValue, path, "must be a boolean, got %T", value)
	}
}

func (v *ABIValidator) checkParams(r *Report, path string, params []domain.AbiParameter, allowIndexed bool) {
	for i, p := range params {
		v.checkParam(r, index(path, i), p, allowIndexed)
	}
}

// checkParam validates one parameter and recurses into its components.
// Tuple nesting is unbounded; only array suffix depth is limited.
func (v *ABIValidator) checkParam(r *Report, path string, p domain.AbiParameter, allowIndexed bool) {
	if !checkMalformed(r, path, p.Malformed) {
		return
	}
	if p.Indexed != nil && !allowIndexed {
		r.add(domain.UnexpectedField, field(path, "indexed"), "only event inputs may be indexed")
	}

	if p.Type == "" {
		if !domain.IsMalformed(p.Malformed, "type") {
			r.add(domain.MissingRequiredField, field(path, "type"), "parameter has no type")
		}
		if p.HasComponents() {
			v.checkParams(r, field(path, "components"), p.Components, false)
		}
		return
	}

	t := v.classifier.Classify(p.Type)
	switch t.Status {
	case grammar.StatusUnrecognized:
		r.add(domain.UnrecognizedType, path, "%s", t.Reason).Suggestion = suggestType(p.Type)
		// the shape is unknown so components can be neither required nor refused
		if p.HasComponents() {
			v.checkParams(r, field(path, "components"), p.Components, false)
		}
		return
	case grammar.StatusDepthExceeded:
		r.add(domain.ArrayDepthExceeded, path, "%s", t.Reason)
	default:
		r.use(path, t)
	}

	switch {
	case t.RequiresComponents() && !p.HasComponents():
		r.add(domain.MissingComponents, path, "%s parameter requires components", p.Type)
	case !t.RequiresComponents() && p.HasComponents():
		r.add(domain.UnexpectedComponents, path, "%s parameter must not have components", p.Type)
	case p.HasComponents():
		v.checkParams(r, field(path, "components"), p.Components, false)
	}
}
