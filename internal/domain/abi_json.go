package domain

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
)

// FieldIssue records a field that was present but could not be decoded.
// An empty Field means the value itself was not a JSON object.
type FieldIssue struct {
	Field   string
	Message string
}

// IsMalformed reports whether field was recorded as malformed
func IsMalformed(issues []FieldIssue, field string) bool {
	return lo.ContainsBy(issues, func(i FieldIssue) bool { return i.Field == field })
}

// looseDecoder decodes object fields one at a time, collecting type mismatches
// instead of failing on the first one
type looseDecoder struct {
	fields map[string]json.RawMessage
	issues []FieldIssue
}

func newLooseDecoder(data []byte, what string) *looseDecoder {
	d := &looseDecoder{}
	if err := json.Unmarshal(data, &d.fields); err != nil || d.fields == nil {
		d.issues = append(d.issues, FieldIssue{Message: fmt.Sprintf("%s must be a JSON object", what)})
	}
	return d
}

func (d *looseDecoder) ok() bool {
	return d.fields != nil
}

// decodeField sets *target only when the value decodes cleanly
func decodeField[T any](d *looseDecoder, key, want string, target *T) {
	raw, present := d.fields[key]
	if !present {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		d.issues = append(d.issues, FieldIssue{
			Field:   key,
			Message: fmt.Sprintf("%s must be %s, got %s", key, want, jsonKind(raw)),
		})
		return
	}
	*target = v
}

// jsonKind names the JSON type of raw for error messages
func jsonKind(raw json.RawMessage) string {
	var v any
	if json.Unmarshal(raw, &v) != nil {
		return "invalid JSON"
	}
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case float64:
		return "a number"
	case string:
		return "a string"
	case []any:
		return "an array"
	default:
		return "an object"
	}
}

// UnmarshalJSON decodes a parameter without failing on wrongly typed fields.
// Those are left zero and recorded in Malformed.
func (p *AbiParameter) UnmarshalJSON(data []byte) error {
	d := newLooseDecoder(data, "parameter")
	*p = AbiParameter{}
	if d.ok() {
		decodeField(d, "type", "a string", &p.Type)
		decodeField(d, "name", "a string", &p.Name)
		decodeField(d, "internalType", "a string", &p.InternalType)
		decodeField(d, "components", "an array", &p.Components)
		decodeField(d, "indexed", "a boolean", &p.Indexed)
	}
	p.Malformed = d.issues
	return nil
}

// UnmarshalJSON decodes an entry without failing on wrongly typed fields.
// The legacy fields keep their raw JSON value for the validator to check.
func (e *AbiEntry) UnmarshalJSON(data []byte) error {
	d := newLooseDecoder(data, "entry")
	*e = AbiEntry{}
	if d.ok() {
		decodeField(d, "type", "a string", &e.Type)
		decodeField(d, "name", "a string", &e.Name)
		decodeField(d, "inputs", "an array", &e.Inputs)
		decodeField(d, "outputs", "an array", &e.Outputs)
		decodeField(d, "stateMutability", "a string", &e.StateMutability)
		decodeField(d, "anonymous", "a boolean", &e.Anonymous)
		decodeField(d, "constant", "a value", &e.Constant)
		decodeField(d, "payable", "a value", &e.Payable)
		decodeField(d, "gas", "a value", &e.Gas)
	}
	e.Malformed = d.issues
	return nil
}
