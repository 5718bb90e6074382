package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestRecordAccessors(t *testing.T) {
	line := []byte(`{
		"transactionHash": "0xdef456",
		"blockNumber": 36000000,
		"topics": ["0xaaa", "0xbbb"],
		"data": "0xdeadbeef",
		"extra": "preserved"
	}`)

	var rec Record
	if err := json.Unmarshal(line, &rec); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if rec.TxHash() != "0xdef456" {
		t.Fatalf("tx hash mismatch: %s", rec.TxHash())
	}
	if rec.BlockNumber() != "36000000" {
		t.Fatalf("block number mismatch: %s", rec.BlockNumber())
	}

	topics, err := rec.Topics()
	if err != nil {
		t.Fatalf("topics failed: %v", err)
	}
	if len(topics) != 2 || topics[0] != "0xaaa" {
		t.Fatalf("topics mismatch: %v", topics)
	}

	data, err := rec.Data()
	if err != nil {
		t.Fatalf("data failed: %v", err)
	}
	if data != "0xdeadbeef" {
		t.Fatalf("data mismatch: %s", data)
	}
}

func TestRecordDefaults(t *testing.T) {
	rec := Record{}
	if rec.TxHash() != "" {
		t.Fatalf("expected empty tx hash")
	}
	if rec.BlockNumber() != "0" {
		t.Fatalf("expected zero block number, got %s", rec.BlockNumber())
	}
}

func TestRecordMalformedFields(t *testing.T) {
	cases := []struct {
		name string
		rec  Record
	}{
		{"missing topics", Record{"data": "0x"}},
		{"topics not array", Record{"topics": "0xaaa"}},
		{"topic not string", Record{"topics": []any{"0xaaa", 42}}},
	}

	for _, tc := range cases {
		_, err := tc.rec.Topics()
		var malformed *MalformedInputError
		if !errors.As(err, &malformed) {
			t.Fatalf("%s: expected MalformedInputError, got %v", tc.name, err)
		}
	}

	rec := Record{"topics": []any{"0xaaa"}}
	if _, err := rec.Data(); err == nil {
		t.Fatalf("expected error for missing data")
	}
	rec["data"] = 7
	if _, err := rec.Data(); err == nil {
		t.Fatalf("expected error for non-string data")
	}
}

func TestRecordClone(t *testing.T) {
	rec := Record{"transactionHash": "0xabc", "topics": []string{"0x1"}}
	clone := rec.Clone()
	clone["signature"] = "Transfer(address,address,uint256)"

	if _, ok := rec["signature"]; ok {
		t.Fatalf("clone mutated original")
	}
	if clone.TxHash() != "0xabc" {
		t.Fatalf("clone lost fields")
	}
}
