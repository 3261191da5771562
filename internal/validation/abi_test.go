package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/abitype/internal/domain"
	"github.com/trebuchet-org/abitype/internal/domain/config"
	"github.com/trebuchet-org/abitype/internal/grammar"
)

func newABIValidator(cfg config.GrammarConfig) *ABIValidator {
	return NewABIValidator(grammar.NewClassifier(cfg))
}

func decodeABI(t *testing.T, src string) domain.Abi {
	t.Helper()
	var abi domain.Abi
	require.NoError(t, json.Unmarshal([]byte(src), &abi))
	return abi
}

// validateEntry checks a single entry; paths start at the entry's own fields
func validateEntry(v *ABIValidator, entry domain.AbiEntry) *Report {
	r := NewReport("")
	v.checkEntry(r, "", entry)
	return r
}

func validateParameters(v *ABIValidator, path string, params []domain.AbiParameter) *Report {
	r := NewReport("")
	v.checkParams(r, path, params, false)
	return r
}

func kinds(r *Report) []domain.ErrorKind {
	out := make([]domain.ErrorKind, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.Kind)
	}
	return out
}

func TestABIValidator_ERC20(t *testing.T) {
	abi := decodeABI(t, `[
		{"type":"constructor","inputs":[{"name":"supply","type":"uint256"}],"stateMutability":"nonpayable"},
		{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable"},
		{"type":"function","name":"balanceOf","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","constant":true},
		{"type":"event","name":"Transfer","anonymous":false,"inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}]},
		{"type":"error","name":"InsufficientBalance","inputs":[{"name":"needed","type":"uint256"}]},
		{"type":"fallback","stateMutability":"payable"},
		{"type":"receive","stateMutability":"payable"}
	]`)

	r := newABIValidator(config.DefaultGrammarConfig()).Validate(abi)
	assert.True(t, r.Valid(), "unexpected errors: %v", r.Errors)
	assert.Len(t, r.Types, 10)
	assert.Equal(t, "abi[1].inputs[0]", r.Types[1].Path)
	assert.Equal(t, grammar.KindAddress, r.Types[1].Type.Kind)
}

func TestABIValidator_RequiredFields(t *testing.T) {
	tests := []struct {
		name     string
		entry    string
		expected []domain.ErrorKind
		paths    []string
	}{
		{
			name:     "function missing outputs",
			entry:    `{"type":"function","name":"f","inputs":[],"stateMutability":"view"}`,
			expected: []domain.ErrorKind{domain.MissingRequiredField},
			paths:    []string{"outputs"},
		},
		{
			name:     "function missing everything",
			entry:    `{"type":"function"}`,
			expected: []domain.ErrorKind{domain.MissingRequiredField, domain.MissingRequiredField, domain.MissingRequiredField, domain.MissingRequiredField},
			paths:    []string{"inputs", "name", "outputs", "stateMutability"},
		},
		{
			name:     "receive must be payable",
			entry:    `{"type":"receive","stateMutability":"nonpayable"}`,
			expected: []domain.ErrorKind{domain.InvalidFieldValue},
			paths:    []string{"stateMutability"},
		},
		{
			name:     "receive with empty inputs is accepted",
			entry:    `{"type":"receive","stateMutability":"payable","inputs":[]}`,
			expected: nil,
		},
		{
			name:     "receive with inputs",
			entry:    `{"type":"receive","stateMutability":"payable","inputs":[{"type":"uint256"}]}`,
			expected: []domain.ErrorKind{domain.UnexpectedField},
			paths:    []string{"inputs"},
		},
		{
			name:     "fallback with inputs",
			entry:    `{"type":"fallback","stateMutability":"nonpayable","inputs":[{"type":"bytes"}]}`,
			expected: []domain.ErrorKind{domain.UnexpectedField},
			paths:    []string{"inputs"},
		},
		{
			name:     "fallback cannot be view",
			entry:    `{"type":"fallback","stateMutability":"view"}`,
			expected: []domain.ErrorKind{domain.InvalidFieldValue},
			paths:    []string{"stateMutability"},
		},
		{
			name:     "constructor with name and outputs",
			entry:    `{"type":"constructor","name":"C","inputs":[],"outputs":[{"type":"uint256"}],"stateMutability":"payable"}`,
			expected: []domain.ErrorKind{domain.UnexpectedField, domain.UnexpectedField},
			paths:    []string{"name", "outputs"},
		},
		{
			name:     "event without name",
			entry:    `{"type":"event","inputs":[]}`,
			expected: []domain.ErrorKind{domain.MissingRequiredField},
			paths:    []string{"name"},
		},
		{
			name:     "error with state mutability",
			entry:    `{"type":"error","name":"E","inputs":[],"stateMutability":"view"}`,
			expected: []domain.ErrorKind{domain.UnexpectedField},
			paths:    []string{"stateMutability"},
		},
		{
			name:     "unknown mutability",
			entry:    `{"type":"function","name":"f","inputs":[],"outputs":[],"stateMutability":"viewable"}`,
			expected: []domain.ErrorKind{domain.InvalidFieldValue},
			paths:    []string{"stateMutability"},
		},
		{
			name:     "missing type",
			entry:    `{"name":"f","inputs":[]}`,
			expected: []domain.ErrorKind{domain.MissingRequiredField},
			paths:    []string{"type"},
		},
		{
			name:     "unknown type",
			entry:    `{"type":"functon","name":"f"}`,
			expected: []domain.ErrorKind{domain.UnknownEntryType},
			paths:    []string{"type"},
		},
		{
			name:     "legacy constant must be boolean",
			entry:    `{"type":"function","name":"f","inputs":[],"outputs":[],"stateMutability":"view","constant":"yes","gas":21000}`,
			expected: []domain.ErrorKind{domain.InvalidFieldValue},
			paths:    []string{"constant"},
		},
		{
			name:     "indexed outside events",
			entry:    `{"type":"function","name":"f","inputs":[{"type":"uint256","indexed":true}],"outputs":[],"stateMutability":"view"}`,
			expected: []domain.ErrorKind{domain.UnexpectedField},
			paths:    []string{"inputs[0].indexed"},
		},
	}

	v := newABIValidator(config.DefaultGrammarConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entry domain.AbiEntry
			require.NoError(t, json.Unmarshal([]byte(tt.entry), &entry))

			r := validateEntry(v, entry)
			if tt.expected == nil {
				assert.True(t, r.Valid(), "unexpected errors: %v", r.Errors)
				return
			}
			assert.Equal(t, tt.expected, kinds(r))
			for i, p := range tt.paths {
				assert.Equal(t, p, r.Errors[i].Path)
			}
		})
	}
}

func TestABIValidator_Components(t *testing.T) {
	v := newABIValidator(config.DefaultGrammarConfig())

	t.Run("tuple without components", func(t *testing.T) {
		r := validateParameters(v, "inputs", []domain.AbiParameter{{Name: "s", Type: "tuple"}})
		assert.Equal(t, []domain.ErrorKind{domain.MissingComponents}, kinds(r))
		assert.Equal(t, "inputs[0]", r.Errors[0].Path)
	})

	t.Run("empty components is a zero-field tuple", func(t *testing.T) {
		r := validateParameters(v, "inputs", []domain.AbiParameter{{Name: "s", Type: "tuple", Components: []domain.AbiParameter{}}})
		assert.True(t, r.Valid())
	})

	t.Run("empty components decoded from json", func(t *testing.T) {
		var params []domain.AbiParameter
		require.NoError(t, json.Unmarshal([]byte(`[{"type":"tuple","components":[]},{"type":"tuple[]"}]`), &params))
		r := validateParameters(v, "inputs", params)
		assert.Equal(t, []domain.ErrorKind{domain.MissingComponents}, kinds(r))
		assert.Equal(t, "inputs[1]", r.Errors[0].Path)
	})

	t.Run("components on a primitive", func(t *testing.T) {
		r := validateParameters(v, "outputs", []domain.AbiParameter{{Type: "uint256", Components: []domain.AbiParameter{{Type: "bool"}}}})
		assert.Equal(t, []domain.ErrorKind{domain.UnexpectedComponents}, kinds(r))
	})

	t.Run("errors are collected with nested paths", func(t *testing.T) {
		params := []domain.AbiParameter{
			{Type: "uint256"},
			{Type: "address"},
			{Type: "tuple[2]", Components: []domain.AbiParameter{
				{Type: "tuple"},
				{Type: "uint7"},
				{Type: "tuple", Components: []domain.AbiParameter{
					{Type: "bool", Components: []domain.AbiParameter{}},
				}},
			}},
		}
		r := validateParameters(v, "inputs", params)
		require.Len(t, r.Errors, 3)
		assert.Equal(t, domain.MissingComponents, r.Errors[0].Kind)
		assert.Equal(t, "inputs[2].components[0]", r.Errors[0].Path)
		assert.Equal(t, domain.UnrecognizedType, r.Errors[1].Kind)
		assert.Equal(t, "inputs[2].components[1]", r.Errors[1].Path)
		assert.Equal(t, domain.UnexpectedComponents, r.Errors[2].Kind)
		assert.Equal(t, "inputs[2].components[2].components[0]", r.Errors[2].Path)
	})

	t.Run("deep tuple nesting is legal", func(t *testing.T) {
		p := domain.AbiParameter{Type: "bool"}
		for i := 0; i < 50; i++ {
			p = domain.AbiParameter{Type: "tuple", Components: []domain.AbiParameter{p}}
		}
		r := validateParameters(v, "inputs", []domain.AbiParameter{p})
		assert.True(t, r.Valid())
	})
}

func TestABIValidator_WronglyTypedFields(t *testing.T) {
	abi := decodeABI(t, `[
		{"type":"event","name":"E","anonymous":"no","inputs":[{"type":"address","indexed":"true"},{"type":"uint7","name":5}]},
		{"type":"function","name":"f","inputs":"none","outputs":[],"stateMutability":"view"},
		7,
		{"type":3}
	]`)

	r := newABIValidator(config.DefaultGrammarConfig()).Validate(abi)
	require.Equal(t, []domain.ErrorKind{
		domain.InvalidFieldValue,
		domain.InvalidFieldValue,
		domain.InvalidFieldValue,
		domain.UnrecognizedType,
		domain.InvalidFieldValue,
		domain.InvalidFieldValue,
		domain.InvalidFieldValue,
	}, kinds(r), "errors: %v", r.Errors)

	paths := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		paths = append(paths, e.Path)
	}
	assert.Equal(t, []string{
		"abi[0].anonymous",
		"abi[0].inputs[0].indexed",
		"abi[0].inputs[1].name",
		"abi[0].inputs[1]",
		"abi[1].inputs",
		"abi[2]",
		"abi[3].type",
	}, paths)
	assert.Equal(t, "indexed must be a boolean, got a string", r.Errors[1].Message)
	assert.Equal(t, "entry must be a JSON object", r.Errors[5].Message)
}

func TestABIValidator_Types(t *testing.T) {
	t.Run("unrecognized type with suggestion", func(t *testing.T) {
		v := newABIValidator(config.DefaultGrammarConfig())
		r := validateParameters(v, "inputs", []domain.AbiParameter{{Type: "adress[]"}})
		require.Len(t, r.Errors, 1)
		assert.Equal(t, domain.UnrecognizedType, r.Errors[0].Kind)
		assert.Equal(t, "address[]", r.Errors[0].Suggestion)
	})

	t.Run("missing type", func(t *testing.T) {
		v := newABIValidator(config.DefaultGrammarConfig())
		r := validateParameters(v, "inputs", []domain.AbiParameter{{Name: "x"}})
		assert.Equal(t, []domain.ErrorKind{domain.MissingRequiredField}, kinds(r))
		assert.Equal(t, "inputs[0].type", r.Errors[0].Path)
	})

	t.Run("depth exceeded when bounded", func(t *testing.T) {
		cfg := config.DefaultGrammarConfig()
		cfg.ArrayMaxDepth = 1
		v := newABIValidator(cfg)

		r := validateParameters(v, "inputs", []domain.AbiParameter{
			{Type: "uint256[2]"},
			{Type: "uint256[2][]"},
			{Type: "tuple[][]"},
		})
		// the tuple array still requires components even past the depth limit
		assert.Equal(t, []domain.ErrorKind{
			domain.ArrayDepthExceeded,
			domain.ArrayDepthExceeded,
			domain.MissingComponents,
		}, kinds(r))
	})

	t.Run("unbounded never reports depth", func(t *testing.T) {
		v := newABIValidator(config.DefaultGrammarConfig())
		r := validateParameters(v, "inputs", []domain.AbiParameter{{Type: "uint256[][][][][][][][]"}})
		assert.True(t, r.Valid())
	})
}

func TestReport_Counts(t *testing.T) {
	v := newABIValidator(config.DefaultGrammarConfig())
	r := v.Validate(decodeABI(t, `[{"type":"function"},{"type":"event","inputs":[{"type":"tuple"}]}]`))

	counts := r.CountByKind()
	assert.Equal(t, 5, counts[domain.MissingRequiredField])
	assert.Equal(t, 1, counts[domain.MissingComponents])
	assert.Len(t, r.ErrorsOfKind(domain.MissingComponents), 1)
	assert.Equal(t, "abi[1].inputs[0]", r.ErrorsOfKind(domain.MissingComponents)[0].Path)
}
