package domain

// EntryType is the discriminant of an ABI entry
type EntryType string

const (
	FunctionEntry    EntryType = "function"
	ConstructorEntry EntryType = "constructor"
	FallbackEntry    EntryType = "fallback"
	ReceiveEntry     EntryType = "receive"
	EventEntry       EntryType = "event"
	ErrorEntry       EntryType = "error"
)

// EntryTypes lists every known discriminant in declaration order
var EntryTypes = []EntryType{
	FunctionEntry,
	ConstructorEntry,
	FallbackEntry,
	ReceiveEntry,
	EventEntry,
	ErrorEntry,
}

// StateMutability describes how a function interacts with chain state
type StateMutability string

const (
	Pure       StateMutability = "pure"
	View       StateMutability = "view"
	NonPayable StateMutability = "nonpayable"
	Payable    StateMutability = "payable"
)

// StateMutabilities lists every valid mutability
var StateMutabilities = []StateMutability{Pure, View, NonPayable, Payable}

// AbiParameter is one input, output or tuple component.
// A nil Components slice means the field was absent; an empty non-nil slice is a zero-field tuple.
type AbiParameter struct {
	Type         string         `json:"type"`
	Name         string         `json:"name,omitempty"`
	InternalType string         `json:"internalType,omitempty"`
	Components   []AbiParameter `json:"components,omitempty"`
	Indexed      *bool          `json:"indexed,omitempty"`

	// Malformed lists fields whose JSON value had the wrong type
	Malformed []FieldIssue `json:"-"`
}

// HasComponents reports whether the components field was present
func (p AbiParameter) HasComponents() bool {
	return p.Components != nil
}

// AbiEntry is a single function, constructor, fallback, receive, event or error description.
// Optional fields are pointers or nil slices so presence can be checked.
type AbiEntry struct {
	Type            EntryType        `json:"type"`
	Name            *string          `json:"name,omitempty"`
	Inputs          []AbiParameter   `json:"inputs,omitempty"`
	Outputs         []AbiParameter   `json:"outputs,omitempty"`
	StateMutability *StateMutability `json:"stateMutability,omitempty"`
	Anonymous       *bool            `json:"anonymous,omitempty"`

	// Deprecated fields emitted by old compilers. Decoded loosely so a wrong
	// JSON type becomes a validation error instead of a decode failure.
	Constant any `json:"constant,omitempty"`
	Payable  any `json:"payable,omitempty"`
	Gas      any `json:"gas,omitempty"`

	Malformed []FieldIssue `json:"-"`
}

// EntryName returns the entry name or an empty string
func (e AbiEntry) EntryName() string {
	if e.Name == nil {
		return ""
	}
	return *e.Name
}

// Abi is an ordered list of entries. Names may repeat (overloads).
type Abi []AbiEntry
