package abidef

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Input is one declared parameter of an ABI entry. Declaration order is
// significant: it fixes both topic-slot and data-slot assignment.
type Input struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Indexed bool   `json:"indexed"`
}

// Definition is one entry of an ABI array. Only entries with Type "event"
// are decode candidates.
type Definition struct {
	Type   string  `json:"type"`
	Name   string  `json:"name"`
	Inputs []Input `json:"inputs"`
}

// Parse decodes ABI JSON into definitions, preserving source order.
// Nothing beyond deserializability is validated.
func Parse(abiText string) ([]Definition, error) {
	var defs []Definition
	if err := json.Unmarshal([]byte(abiText), &defs); err != nil {
		return nil, fmt.Errorf("parse abi: %w", err)
	}
	return defs, nil
}

// Events filters definitions down to events, keeping source order.
func Events(defs []Definition) []Definition {
	events := make([]Definition, 0, len(defs))
	for _, def := range defs {
		if def.Type == "event" {
			events = append(events, def)
		}
	}
	return events
}

// Signature returns the canonical signature string name(type1,type2,...)
// over all inputs in declaration order, indexed and non-indexed alike.
func (d Definition) Signature() string {
	types := make([]string, 0, len(d.Inputs))
	for _, input := range d.Inputs {
		types = append(types, input.Type)
	}
	return d.Name + "(" + strings.Join(types, ",") + ")"
}

// ID returns the Keccak-256 hash of the canonical signature as a lowercase
// 0x-prefixed hex string, the form carried in topics[0].
func (d Definition) ID() string {
	return hexutil.Encode(crypto.Keccak256([]byte(d.Signature())))
}
