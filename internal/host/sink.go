package host

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"eventlens/internal/model"
)

// Sink is the per-record completion boundary of the stream: it accepts
// decoded outputs and pass-throughs alike, one record at a time.
// Persistence implementations live in internal/storage and are adapted
// through a storage.BatchSink.
type Sink interface {
	Put(ctx context.Context, rec model.Record) error
}

type jsonlFile struct {
	file   *os.File
	writer *bufio.Writer
}

func openJSONLFile(path string) (*jsonlFile, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create dir: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	return &jsonlFile{
		file:   file,
		writer: bufio.NewWriter(file),
	}, nil
}

func (f *jsonlFile) write(value any) error {
	line, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if _, err := f.writer.Write(line); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := f.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("write newline: %w", err)
	}
	return nil
}

func (f *jsonlFile) close() error {
	if f == nil {
		return nil
	}
	if err := f.writer.Flush(); err != nil {
		f.file.Close()
		return err
	}
	return f.file.Close()
}

// FailureLog is the error side channel: decode failures as JSON lines.
// A nil FailureLog discards failures.
type FailureLog struct {
	f *jsonlFile
}

func OpenFailureLog(path string) (*FailureLog, error) {
	f, err := openJSONLFile(path)
	if err != nil {
		return nil, err
	}
	return &FailureLog{f: f}, nil
}

func (l *FailureLog) Put(failure model.DecodeFailure) {
	if l == nil {
		return
	}
	_ = l.f.write(failure)
}

func (l *FailureLog) Close() error {
	if l == nil {
		return nil
	}
	return l.f.close()
}

// MultiSink fans every record out to each sink in order.
type MultiSink []Sink

func (m MultiSink) Put(ctx context.Context, rec model.Record) error {
	for _, sink := range m {
		if err := sink.Put(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
