package storage

import (
	"context"

	"eventlens/internal/model"
)

// BatchSink adapts a Storage into the per-record sink the host pipeline
// drives, buffering records and writing them through in batches. Flush
// must be called after the stream ends to persist the trailing partial
// batch.
type BatchSink struct {
	store     Storage
	batchSize int
	buffer    []model.Record
}

func NewBatchSink(store Storage, batchSize int) *BatchSink {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &BatchSink{
		store:     store,
		batchSize: batchSize,
		buffer:    make([]model.Record, 0, batchSize),
	}
}

// Put buffers the record, writing the batch through once full.
func (b *BatchSink) Put(ctx context.Context, rec model.Record) error {
	b.buffer = append(b.buffer, rec)
	if len(b.buffer) >= b.batchSize {
		return b.Flush(ctx)
	}
	return nil
}

// Flush writes any buffered records through to storage.
func (b *BatchSink) Flush(ctx context.Context) error {
	if len(b.buffer) == 0 {
		return nil
	}
	if err := b.store.PutRecordBatch(ctx, b.buffer); err != nil {
		return err
	}
	b.buffer = b.buffer[:0]
	return nil
}
