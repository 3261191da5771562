package grammar

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange(t *testing.T) {
	t.Run("byte widths", func(t *testing.T) {
		values := ByteWidths.Values()
		require.Len(t, values, 32)
		assert.Equal(t, 1, values[0])
		assert.Equal(t, 32, values[31])
	})

	t.Run("bit widths", func(t *testing.T) {
		values := BitWidths.Values()
		require.Len(t, values, 32)
		assert.Equal(t, 8, values[0])
		assert.Equal(t, 256, values[31])
		assert.True(t, BitWidths.Contains(128))
		assert.False(t, BitWidths.Contains(7))
		assert.False(t, BitWidths.Contains(264))
	})

	t.Run("configured range", func(t *testing.T) {
		r := NewRange(0, 3)
		assert.Equal(t, []int{0, 1, 2, 3}, r.Values())
		assert.True(t, r.Contains(0))
		assert.False(t, r.Contains(4))
	})

	t.Run("empty when inverted", func(t *testing.T) {
		r := NewRange(5, 2)
		assert.Equal(t, 0, r.Len())
		assert.Empty(t, r.Values())
		assert.False(t, r.Contains(3))
	})
}

func TestParsePrimitive_Bytes(t *testing.T) {
	for m := 1; m <= 32; m++ {
		typ := ParsePrimitive(fmt.Sprintf("bytes%d", m))
		require.True(t, typ.Valid(), "bytes%d", m)
		assert.Equal(t, KindBytes, typ.Kind)
		assert.Equal(t, m, typ.Size)
	}

	for _, s := range []string{"bytes0", "bytes33", "bytes64", "bytes01"} {
		typ := ParsePrimitive(s)
		assert.False(t, typ.Valid(), s)
		assert.Equal(t, StatusUnrecognized, typ.Status)
		assert.NotEmpty(t, typ.Reason)
	}

	dyn := ParsePrimitive("bytes")
	require.True(t, dyn.Valid())
	assert.True(t, dyn.isDynamicBytes())
	assert.Equal(t, 0, dyn.Size)
}

func TestParsePrimitive_Integers(t *testing.T) {
	for m := 8; m <= 256; m += 8 {
		for _, prefix := range []string{"int", "uint"} {
			s := fmt.Sprintf("%s%d", prefix, m)
			typ := ParsePrimitive(s)
			require.True(t, typ.Valid(), s)
			assert.Equal(t, KindInt, typ.Kind)
			assert.Equal(t, prefix == "int", typ.Signed)
			assert.Equal(t, m, typ.Bits())
		}
	}

	for _, s := range []string{"uint7", "uint264", "int0", "int9", "uint0256"} {
		assert.False(t, ParsePrimitive(s).Valid(), s)
	}

	bare := ParsePrimitive("uint")
	require.True(t, bare.Valid())
	assert.Equal(t, 0, bare.Size)
	assert.Equal(t, 256, bare.Bits())
	assert.Equal(t, "uint256", bare.Canonical())
}

func TestParsePrimitive_Literals(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"address", KindAddress},
		{"bool", KindBool},
		{"function", KindFunction},
		{"string", KindString},
		{"tuple", KindTuple},
		{"bytes", KindBytes},
		{"int", KindInt},
		{"uint", KindInt},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			typ := ParsePrimitive(tt.input)
			require.True(t, typ.Valid())
			assert.Equal(t, tt.kind, typ.Kind)
			assert.Equal(t, tt.input, typ.Base)
		})
	}
}

func TestParsePrimitive_Rejects(t *testing.T) {
	tests := []struct {
		input  string
		reason string
	}{
		{"fixed128x18", "fixed-point"},
		{"ufixed", "fixed-point"},
		{"Address", "not an ABI type"},
		{"", "not an ABI type"},
		{"uint256 ", "not an ABI type"},
		{"struct", "not an ABI type"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			typ := ParsePrimitive(tt.input)
			assert.Equal(t, StatusUnrecognized, typ.Status)
			assert.Contains(t, typ.Reason, tt.reason)
		})
	}
}

func TestPrimitives(t *testing.T) {
	names := Primitives()
	// 5 literals + bytes + 32 bytesN + int/uint + 64 sized ints
	assert.Len(t, names, 5+1+32+2+64)
	for _, name := range names {
		assert.True(t, ParsePrimitive(name).Valid(), name)
	}
}
