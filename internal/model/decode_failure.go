package model

// DecodeFailure records a decode failure for one input record.
type DecodeFailure struct {
	TxHash string `json:"tx_hash"`
	Block  string `json:"block"`
	Topic0 string `json:"topic0"`
	Error  string `json:"error"`
}

// FailureFromRecord builds a DecodeFailure for a record, tolerating
// records too malformed to expose topics.
func FailureFromRecord(rec Record, err error) DecodeFailure {
	topic0 := ""
	if topics, terr := rec.Topics(); terr == nil && len(topics) > 0 {
		topic0 = topics[0]
	}

	return DecodeFailure{
		TxHash: rec.TxHash(),
		Block:  rec.BlockNumber(),
		Topic0: topic0,
		Error:  err.Error(),
	}
}
