package storage

import (
	"context"

	"eventlens/internal/model"
)

// Storage is the batch persistence layer behind the host pipeline's
// per-record sink: BatchSink buffers records from host.Sink.Put calls
// and writes them through here. Implementations own an output (JSONL
// file, Postgres table); the host package owns the stream itself.
type Storage interface {
	PutRecordBatch(ctx context.Context, records []model.Record) error
}
