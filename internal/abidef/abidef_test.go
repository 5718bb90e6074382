package abidef

import (
	"testing"
)

const erc20ABI = `[
  {
    "type": "event",
    "name": "Transfer",
    "inputs": [
      {"indexed": true, "name": "from", "type": "address"},
      {"indexed": true, "name": "to", "type": "address"},
      {"indexed": false, "name": "value", "type": "uint256"}
    ]
  },
  {
    "type": "function",
    "name": "balanceOf",
    "inputs": [
      {"name": "owner", "type": "address"}
    ]
  },
  {
    "type": "event",
    "name": "Approval",
    "inputs": [
      {"indexed": true, "name": "owner", "type": "address"},
      {"indexed": true, "name": "spender", "type": "address"},
      {"indexed": false, "name": "value", "type": "uint256"}
    ]
  }
]`

func TestParseAndFilterEvents(t *testing.T) {
	defs, err := Parse(erc20ABI)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(defs) != 3 {
		t.Fatalf("expected 3 definitions, got %d", len(defs))
	}

	events := Events(defs)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Name != "Transfer" || events[1].Name != "Approval" {
		t.Fatalf("event order mismatch: %s, %s", events[0].Name, events[1].Name)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse("not json"); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := Parse(`{"type":"event"}`); err == nil {
		t.Fatalf("expected parse error for non-array abi")
	}
}

func TestCanonicalSignature(t *testing.T) {
	defs, err := Parse(erc20ABI)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	transfer := defs[0]
	if got := transfer.Signature(); got != "Transfer(address,address,uint256)" {
		t.Fatalf("signature mismatch: %s", got)
	}
}

func TestSignatureID(t *testing.T) {
	defs, err := Parse(erc20ABI)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	// Reference topic0 values for the ERC-20 events.
	cases := map[string]string{
		"Transfer": "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef",
		"Approval": "0x8c5be1e5ebec7d5bd14f71427d1e84f3dd0314c0f7b2291e5b200ac8c7c3b925",
	}

	for _, def := range Events(defs) {
		want, ok := cases[def.Name]
		if !ok {
			t.Fatalf("unexpected event: %s", def.Name)
		}
		if got := def.ID(); got != want {
			t.Fatalf("%s id mismatch: got %s, want %s", def.Name, got, want)
		}
	}
}

func TestSignatureNoInputs(t *testing.T) {
	def := Definition{Type: "event", Name: "Paused"}
	if got := def.Signature(); got != "Paused()" {
		t.Fatalf("signature mismatch: %s", got)
	}
}
