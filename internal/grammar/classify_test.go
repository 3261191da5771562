package grammar

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/abitype/internal/domain"
	"github.com/trebuchet-org/abitype/internal/domain/config"
)

func boundedConfig(depth int) config.GrammarConfig {
	cfg := config.DefaultGrammarConfig()
	cfg.ArrayMaxDepth = depth
	return cfg
}

func TestSplitArray(t *testing.T) {
	tests := []struct {
		input    string
		base     string
		suffixes []string
		ok       bool
	}{
		{"uint256", "uint256", nil, true},
		{"bytes32[3][]", "bytes32", []string{"3", ""}, true},
		{"tuple[][2]", "tuple", []string{"", "2"}, true},
		{"uint256]", "", nil, false},
		{"uint[2", "", nil, false},
		{"ui]nt[2]", "", nil, false},
		{"ui[nt][2]", "ui", []string{"nt", "2"}, true},
		{"uint[[2]]", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			base, suffixes, ok := SplitArray(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.base, base)
				assert.Equal(t, tt.suffixes, suffixes)
			}
		})
	}
}

func TestClassify_Unbounded(t *testing.T) {
	c := NewClassifier(config.DefaultGrammarConfig())

	t.Run("nested arrays", func(t *testing.T) {
		typ := c.Classify("bytes32[3][]")
		require.True(t, typ.Valid())
		assert.Equal(t, KindBytes, typ.Kind)
		assert.Equal(t, "bytes32", typ.Base)
		assert.Equal(t, []int{3, DynamicLength}, typ.Dims)
		assert.Equal(t, 2, typ.Depth())
	})

	t.Run("zero length is structurally valid", func(t *testing.T) {
		typ := c.Classify("uint256[0]")
		require.True(t, typ.Valid())
		assert.Equal(t, []int{0}, typ.Dims)
	})

	t.Run("length above configured max is accepted", func(t *testing.T) {
		assert.True(t, c.Classify("address[1000]").Valid())
	})

	t.Run("deep nesting is accepted", func(t *testing.T) {
		assert.True(t, c.Classify("bool"+strings.Repeat("[]", 40)).Valid())
	})

	t.Run("non numeric length", func(t *testing.T) {
		typ := c.Classify("uint256[n]")
		assert.Equal(t, StatusUnrecognized, typ.Status)
		assert.Contains(t, typ.Reason, "non-negative integer")
	})

	t.Run("invalid base", func(t *testing.T) {
		typ := c.Classify("uint7[]")
		assert.Equal(t, StatusUnrecognized, typ.Status)
		assert.Equal(t, "uint7[]", typ.Raw)
	})

	t.Run("tuple arrays require components", func(t *testing.T) {
		assert.True(t, c.Classify("tuple[]").RequiresComponents())
		assert.True(t, c.Classify("tuple[2][]").RequiresComponents())
		assert.False(t, c.Classify("uint256[]").RequiresComponents())
	})
}

func TestClassify_Bounded(t *testing.T) {
	c := NewClassifier(boundedConfig(2))

	t.Run("within depth", func(t *testing.T) {
		assert.True(t, c.Classify("uint8[99][]").Valid())
	})

	t.Run("depth exceeded keeps the shape", func(t *testing.T) {
		typ := c.Classify("tuple[][][]")
		assert.Equal(t, StatusDepthExceeded, typ.Status)
		assert.False(t, typ.Valid())
		assert.True(t, typ.IsTuple())
		assert.Equal(t, 3, typ.Depth())
	})

	t.Run("length outside table", func(t *testing.T) {
		for _, s := range []string{"uint8[0]", "uint8[100]"} {
			typ := c.Classify(s)
			assert.Equal(t, StatusUnrecognized, typ.Status, s)
			assert.Contains(t, typ.Reason, "outside [1, 99]")
		}
	})

	t.Run("non canonical length", func(t *testing.T) {
		typ := c.Classify("uint8[01]")
		assert.Equal(t, StatusUnrecognized, typ.Status)
	})

	t.Run("depth zero allows only the base", func(t *testing.T) {
		zero := NewClassifier(boundedConfig(0))
		assert.True(t, zero.Classify("string").Valid())
		assert.Equal(t, StatusDepthExceeded, zero.Classify("string[]").Status)
	})
}

func TestClassify_RoundTrip(t *testing.T) {
	const maxDepth = 4
	c := NewClassifier(boundedConfig(maxDepth))

	for _, base := range Primitives() {
		for d := 0; d <= maxDepth; d++ {
			s := base + strings.Repeat("[]", d)
			typ := c.Classify(s)
			require.True(t, typ.Valid(), s)
			assert.Equal(t, d, typ.Depth(), s)
			assert.Equal(t, d > 0, typ.IsArray(), s)
		}
	}
}

func TestType_Elem(t *testing.T) {
	c := NewClassifier(config.DefaultGrammarConfig())
	typ := c.Classify("uint[2][]")

	elem := typ.elem()
	assert.Equal(t, "uint[2]", elem.Raw)
	assert.Equal(t, []int{2}, elem.Dims)
	assert.Equal(t, "uint256[2]", elem.Canonical())
	// the original is untouched
	assert.Equal(t, []int{2, DynamicLength}, typ.Dims)
}

func TestClassifier_HostType(t *testing.T) {
	cfg := config.DefaultGrammarConfig()
	cfg.AddressType = "Address"
	cfg.BytesType = "Hex"
	c := NewClassifier(cfg)

	tests := []struct {
		input    string
		expected string
	}{
		{"address", "Address"},
		{"bytes", "Hex"},
		{"bytes32", "[32]byte"},
		{"uint8", "uint8"},
		{"int64", "int64"},
		{"uint24", "*big.Int"},
		{"uint", "*big.Int"},
		{"bool", "bool"},
		{"string", "string"},
		{"function", "[24]byte"},
		{"tuple", "struct"},
		{"uint8[2][3]", "[3][2]uint8"},
		{"address[][4]", "[4][]Address"},
		{"bytes[2]", "[2]Hex"},
		{"nope", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.HostType(c.Classify(tt.input)))
		})
	}
}

func TestBuilder(t *testing.T) {
	t.Run("unbounded refuses to enumerate", func(t *testing.T) {
		b := NewBuilder(NewClassifier(config.DefaultGrammarConfig()))
		_, err := b.All("uint256")
		assert.ErrorIs(t, err, domain.ErrUnboundedDepth)
		_, err = b.PrimitiveForms()
		assert.ErrorIs(t, err, domain.ErrUnboundedDepth)
	})

	t.Run("depth zero yields only the base", func(t *testing.T) {
		b := NewBuilder(NewClassifier(boundedConfig(0)))
		seq, err := b.All("bool")
		require.NoError(t, err)
		assert.Equal(t, []string{"bool"}, slices.Collect(seq))
	})

	t.Run("depth-first order", func(t *testing.T) {
		cfg := boundedConfig(2)
		cfg.FixedArrayMinLength = 1
		cfg.FixedArrayMaxLength = 2
		b := NewBuilder(NewClassifier(cfg))

		seq, err := b.All("bool")
		require.NoError(t, err)
		forms := slices.Collect(seq)
		assert.Equal(t, []string{
			"bool",
			"bool[]", "bool[][]", "bool[][1]", "bool[][2]",
			"bool[1]", "bool[1][]", "bool[1][1]", "bool[1][2]",
			"bool[2]", "bool[2][]", "bool[2][1]", "bool[2][2]",
		}, forms)

		count, err := b.Count("bool")
		require.NoError(t, err)
		assert.Equal(t, len(forms), count)
	})

	t.Run("every form classifies back", func(t *testing.T) {
		cfg := boundedConfig(2)
		cfg.FixedArrayMaxLength = 5
		c := NewClassifier(cfg)
		b := NewBuilder(c)

		seq, err := b.TupleForms()
		require.NoError(t, err)
		for form := range seq {
			typ := c.Classify(form)
			require.True(t, typ.Valid(), form)
			assert.True(t, typ.RequiresComponents(), form)
		}
	})

	t.Run("primitive forms exclude tuples", func(t *testing.T) {
		cfg := boundedConfig(1)
		cfg.FixedArrayMaxLength = 1
		c := NewClassifier(cfg)
		b := NewBuilder(c)

		seq, err := b.PrimitiveForms()
		require.NoError(t, err)
		n := 0
		for form := range seq {
			assert.False(t, c.Classify(form).IsTuple(), form)
			n++
		}
		// each primitive yields itself, T[] and T[1]
		assert.Equal(t, (len(Primitives())-1)*3, n)
	})

	t.Run("early stop", func(t *testing.T) {
		b := NewBuilder(NewClassifier(boundedConfig(3)))
		seq, err := b.All("uint256")
		require.NoError(t, err)
		var got []string
		for form := range seq {
			got = append(got, form)
			if len(got) == 3 {
				break
			}
		}
		assert.Equal(t, []string{"uint256", "uint256[]", "uint256[][]"}, got)
	})

	t.Run("count saturates", func(t *testing.T) {
		b := NewBuilder(NewClassifier(boundedConfig(64)))
		count, err := b.Count("uint256")
		require.NoError(t, err)
		assert.Greater(t, count, 1<<40)
	})

	t.Run("rejects array or unknown base", func(t *testing.T) {
		b := NewBuilder(NewClassifier(boundedConfig(1)))
		_, err := b.All("uint256[]")
		assert.Error(t, err)
		_, err = b.All("Person")
		assert.Error(t, err)
	})
}
