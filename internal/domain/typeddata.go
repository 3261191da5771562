package domain

import (
	"encoding/json"
)

// EIP712DomainType is the conventional struct name describing the signing domain
const EIP712DomainType = "EIP712Domain"

// Domain field names recognised by EIP-712
const (
	DomainName              = "name"
	DomainVersion           = "version"
	DomainChainID           = "chainId"
	DomainVerifyingContract = "verifyingContract"
	DomainSalt              = "salt"
)

// DomainFieldTypes maps each domain field to the type it must have inside an EIP712Domain struct
var DomainFieldTypes = map[string]string{
	DomainName:              "string",
	DomainVersion:           "string",
	DomainChainID:           "uint256",
	DomainVerifyingContract: "address",
	DomainSalt:              "bytes32",
}

// TypedDataParameter is one field of a typed-data struct
type TypedDataParameter struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// TypedData maps a struct name to its ordered fields
type TypedData map[string][]TypedDataParameter

// TypedDataDomain keeps the raw JSON of each domain field so that each one
// can be type checked on its own.
type TypedDataDomain map[string]json.RawMessage

// Document is a loaded input file. Any of the sections may be absent.
type Document struct {
	Source string

	ABI    Abi
	HasABI bool
	// RawABI is the ABI section exactly as read, for tools that parse it themselves
	RawABI json.RawMessage

	Types       TypedData
	HasTypes    bool
	PrimaryType string
	Domain      TypedDataDomain
}
