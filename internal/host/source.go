package host

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"eventlens/internal/model"
)

// ErrEndOfStream signals that a source has no more records.
var ErrEndOfStream = errors.New("end of stream")

// Source supplies log records one at a time. Next returns ErrEndOfStream
// when the input is exhausted.
type Source interface {
	Next() (model.Record, error)
}

// JSONLSource reads records from a JSONL file, one JSON object per line.
type JSONLSource struct {
	file    *os.File
	scanner *bufio.Scanner
}

func OpenJSONLSource(path string) (*JSONLSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	return &JSONLSource{file: file, scanner: scanner}, nil
}

// Next returns the next non-blank line parsed as a record. A line that is
// not a JSON object is reported as a malformed-input error; the source
// stays usable for the following line.
func (s *JSONLSource) Next() (model.Record, error) {
	for s.scanner.Scan() {
		line := bytes.TrimSpace(s.scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var rec model.Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, &model.MalformedInputError{Field: "record", Reason: err.Error()}
		}
		return rec, nil
	}

	if err := s.scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}
	return nil, ErrEndOfStream
}

func (s *JSONLSource) Close() error {
	return s.file.Close()
}
