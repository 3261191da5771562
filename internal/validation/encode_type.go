package validation

import (
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/trebuchet-org/abitype/internal/domain"
	"github.com/trebuchet-org/abitype/internal/grammar"
)

// StructRefs returns the names of the structs a struct refers to directly,
// in field order and without duplicates
func StructRefs(types domain.TypedData, name string) []string {
	var refs []string
	for _, p := range types[name] {
		base, _, ok := grammar.SplitArray(p.Type)
		if !ok {
			continue
		}
		if _, isStruct := types[base]; isStruct && !slices.Contains(refs, base) {
			refs = append(refs, base)
		}
	}
	return refs
}

// toAPITypes converts the struct map to go-ethereum's typed-data representation
func toAPITypes(types domain.TypedData, primary string) *apitypes.TypedData {
	out := make(apitypes.Types, len(types))
	for name, fields := range types {
		converted := make([]apitypes.Type, len(fields))
		for i, f := range fields {
			converted[i] = apitypes.Type{Name: f.Name, Type: f.Type}
		}
		out[name] = converted
	}
	return &apitypes.TypedData{Types: out, PrimaryType: primary}
}

// EncodeType renders the EIP-712 encodeType string of primary, e.g.
// "Mail(Person from,Person to,string contents)Person(string name,address wallet)".
func EncodeType(types domain.TypedData, primary string) (string, error) {
	if _, ok := types[primary]; !ok {
		return "", fmt.Errorf("struct %q is not defined", primary)
	}
	return string(toAPITypes(types, primary).EncodeType(primary)), nil
}

// TypeHash is keccak256 of EncodeType
func TypeHash(types domain.TypedData, primary string) (common.Hash, error) {
	if _, ok := types[primary]; !ok {
		return common.Hash{}, fmt.Errorf("struct %q is not defined", primary)
	}
	return common.BytesToHash(toAPITypes(types, primary).TypeHash(primary)), nil
}
