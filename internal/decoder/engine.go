package decoder

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"

	"eventlens/internal/abidef"
	"eventlens/internal/model"
)

// slotSize is the fixed encoding unit for both topics and the data blob.
const slotSize = 32

// ParameterSource supplies the currently configured ABI text.
type ParameterSource interface {
	Get() (string, error)
}

// Engine decodes log records against the ABI held by its parameter source.
// Each call re-parses the stored ABI, so a configuration change is visible
// to the next decode.
type Engine struct {
	source ParameterSource
	logger *zap.Logger
}

// NewEngine builds an Engine with its dependencies.
func NewEngine(source ParameterSource, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{source: source, logger: logger}
}

// Decode matches the record's topics[0] against the configured event
// definitions and decodes the declared parameters. The matched flag
// reports whether any definition matched; when it is false the input
// record is returned unchanged. A malformed ABI also degrades to
// pass-through, while missing configuration, malformed record fields,
// and out-of-bounds topics or data surface as errors.
func (e *Engine) Decode(rec model.Record) (model.Record, bool, error) {
	abiText, err := e.source.Get()
	if err != nil {
		return nil, false, err
	}

	topics, err := rec.Topics()
	if err != nil {
		return nil, false, err
	}
	if len(topics) == 0 {
		return nil, false, &model.MalformedInputError{Field: "topics", Reason: "missing topic0"}
	}

	defs, err := abidef.Parse(abiText)
	if err != nil {
		e.logger.Debug("abi parse failed, passing record through", zap.Error(err))
		return rec, false, nil
	}

	for _, def := range abidef.Events(defs) {
		if def.ID() != topics[0] {
			continue
		}

		topicArgs, err := decodeTopics(def, topics)
		if err != nil {
			return nil, false, err
		}

		dataHex, err := rec.Data()
		if err != nil {
			return nil, false, err
		}
		dataArgs, err := decodeData(def, dataHex)
		if err != nil {
			return nil, false, err
		}

		out := rec.Clone()
		out["hash"] = rec.TxHash()
		out["block"] = rec.BlockNumber()
		out["signature"] = def.Signature()
		out["arguments"] = append(topicArgs, dataArgs...)
		return out, true, nil
	}

	return rec, false, nil
}

// decodeTopics decodes the indexed parameters from topics[1..]. The
// cursor advances once per declared parameter regardless of the indexed
// flag, so topic-slot position is tied to overall parameter position.
func decodeTopics(def abidef.Definition, topics []string) ([]model.Argument, error) {
	args := make([]model.Argument, 0, len(def.Inputs))
	cursor := 1
	for _, input := range def.Inputs {
		if input.Indexed {
			if cursor >= len(topics) {
				return nil, &model.OutOfBoundsError{What: "topics", Need: cursor + 1, Got: len(topics)}
			}
			slot, err := topicSlot(topics[cursor])
			if err != nil {
				return nil, err
			}
			args = append(args, model.Argument{
				Name:  input.Name,
				Type:  input.Type,
				Value: decodeSlot(input.Type, slot),
			})
		}
		cursor++
	}
	return args, nil
}

// decodeData decodes the non-indexed parameters from the packed data
// blob, one 32-byte slot per parameter in declaration order.
func decodeData(def abidef.Definition, dataHex string) ([]model.Argument, error) {
	nonIndexed := make([]abidef.Input, 0, len(def.Inputs))
	for _, input := range def.Inputs {
		if !input.Indexed {
			nonIndexed = append(nonIndexed, input)
		}
	}
	if len(nonIndexed) == 0 {
		return nil, nil
	}

	if !strings.HasPrefix(dataHex, "0x") {
		dataHex = "0x" + dataHex
	}
	data, err := hexutil.Decode(dataHex)
	if err != nil {
		return nil, &model.MalformedInputError{Field: "data", Reason: err.Error()}
	}

	need := slotSize * len(nonIndexed)
	if len(data) < need {
		return nil, &model.OutOfBoundsError{What: "data", Need: need, Got: len(data)}
	}

	args := make([]model.Argument, 0, len(nonIndexed))
	for k, input := range nonIndexed {
		slot := data[slotSize*k : slotSize*(k+1)]
		args = append(args, model.Argument{
			Name:  input.Name,
			Type:  input.Type,
			Value: decodeSlot(input.Type, slot),
		})
	}
	return args, nil
}

// topicSlot converts a topic hex string into a 32-byte slot, left-padding
// shorter values the way topic encoding does.
func topicSlot(topic string) ([]byte, error) {
	if !strings.HasPrefix(topic, "0x") {
		topic = "0x" + topic
	}
	data, err := hexutil.Decode(topic)
	if err != nil {
		return nil, &model.MalformedInputError{Field: "topics", Reason: err.Error()}
	}
	if len(data) > slotSize {
		return nil, &model.MalformedInputError{Field: "topics", Reason: fmt.Sprintf("topic length %d", len(data))}
	}
	hash := common.BytesToHash(data)
	return hash.Bytes(), nil
}

// decodeSlot maps (type, 32-byte slot) to the decoded value. Unknown
// types decode to a fallback string, never an error.
func decodeSlot(typ string, slot []byte) any {
	switch typ {
	case "address":
		return hexutil.Encode(slot[12:])
	case "uint256":
		return new(big.Int).SetBytes(slot).String()
	case "bool":
		return slot[slotSize-1] != 0
	case "bytes32":
		return hexutil.Encode(slot)
	default:
		return "unsupported type: " + typ
	}
}
