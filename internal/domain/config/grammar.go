package config

import (
	"fmt"
	"strconv"
)

// UnboundedDepth disables array depth bounding. Array types are then
// classified structurally and never enumerated.
const UnboundedDepth = -1

// GrammarConfig parameterizes the type grammar
type GrammarConfig struct {
	// AddressType is the host type reported for address values
	AddressType string `json:"addressType"`
	// BytesType is the host type reported for dynamic bytes values
	BytesType string `json:"bytesType"`

	FixedArrayMinLength int `json:"fixedArrayMinLength"`
	FixedArrayMaxLength int `json:"fixedArrayMaxLength"`

	// ArrayMaxDepth is the maximum number of array suffixes, or UnboundedDepth
	ArrayMaxDepth int `json:"arrayMaxDepth"`
}

// DefaultGrammarConfig returns the default grammar settings
func DefaultGrammarConfig() GrammarConfig {
	return GrammarConfig{
		AddressType:         "common.Address",
		BytesType:           "[]byte",
		FixedArrayMinLength: 1,
		FixedArrayMaxLength: 99,
		ArrayMaxDepth:       UnboundedDepth,
	}
}

// Bounded reports whether array depth is limited
func (c GrammarConfig) Bounded() bool {
	return c.ArrayMaxDepth != UnboundedDepth
}

// Validate checks the settings for consistency
func (c GrammarConfig) Validate() error {
	if c.FixedArrayMinLength < 0 {
		return fmt.Errorf("fixed array min length must not be negative, got %d", c.FixedArrayMinLength)
	}
	if c.FixedArrayMaxLength < c.FixedArrayMinLength {
		return fmt.Errorf("fixed array max length %d is below min length %d", c.FixedArrayMaxLength, c.FixedArrayMinLength)
	}
	if c.ArrayMaxDepth < UnboundedDepth {
		return fmt.Errorf("array max depth must be >= 0 or unbounded, got %d", c.ArrayMaxDepth)
	}
	if c.AddressType == "" || c.BytesType == "" {
		return fmt.Errorf("address and bytes host types must not be empty")
	}
	return nil
}

// DepthString renders ArrayMaxDepth the way it is configured
func (c GrammarConfig) DepthString() string {
	if !c.Bounded() {
		return "false"
	}
	return strconv.Itoa(c.ArrayMaxDepth)
}

// ParseArrayMaxDepth accepts the configuration forms of the depth option:
// an integer, or false / "false" / "unbounded" for the unbounded sentinel.
func ParseArrayMaxDepth(value any) (int, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return 0, fmt.Errorf("array max depth must be an integer or false")
		}
		return UnboundedDepth, nil
	case int:
		return checkDepth(int64(v))
	case int64:
		return checkDepth(v)
	case float64:
		if v != float64(int64(v)) {
			return 0, fmt.Errorf("array max depth must be an integer, got %v", v)
		}
		return checkDepth(int64(v))
	case string:
		switch v {
		case "false", "unbounded", "":
			return UnboundedDepth, nil
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("array max depth must be an integer or false, got %q", v)
		}
		return checkDepth(n)
	default:
		return 0, fmt.Errorf("array max depth has unsupported type %T", value)
	}
}

func checkDepth(n int64) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("array max depth must not be negative, got %d", n)
	}
	return int(n), nil
}
