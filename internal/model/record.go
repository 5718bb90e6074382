package model

import (
	"fmt"
	"strconv"
)

// Record is a log record as supplied by the host boundary: a JSON object
// keyed at minimum by transactionHash, blockNumber, topics, and data.
// Any extra fields the host attaches are preserved through decoding.
type Record map[string]any

// TxHash returns the transaction hash, or "" if absent.
func (r Record) TxHash() string {
	s, _ := r["transactionHash"].(string)
	return s
}

// BlockNumber returns the block number rendered as a decimal string,
// or "0" if the field is absent or not numeric.
func (r Record) BlockNumber() string {
	switch v := r["blockNumber"].(type) {
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case uint64:
		return strconv.FormatUint(v, 10)
	default:
		return "0"
	}
}

// Topics returns the topics list. Missing or mistyped topics are a
// malformed-input condition, never a panic.
func (r Record) Topics() ([]string, error) {
	raw, ok := r["topics"]
	if !ok {
		return nil, &MalformedInputError{Field: "topics", Reason: "missing"}
	}
	switch typed := raw.(type) {
	case []string:
		return typed, nil
	case []any:
		out := make([]string, 0, len(typed))
		for i, item := range typed {
			s, ok := item.(string)
			if !ok {
				return nil, &MalformedInputError{Field: "topics", Reason: fmt.Sprintf("element %d is not a string", i)}
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, &MalformedInputError{Field: "topics", Reason: "not an array"}
	}
}

// Data returns the packed data blob as a hex string.
func (r Record) Data() (string, error) {
	raw, ok := r["data"]
	if !ok {
		return "", &MalformedInputError{Field: "data", Reason: "missing"}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &MalformedInputError{Field: "data", Reason: "not a string"}
	}
	return s, nil
}

// Clone returns a shallow copy so decode output never mutates the input.
func (r Record) Clone() Record {
	out := make(Record, len(r)+4)
	for key, value := range r {
		out[key] = value
	}
	return out
}
