package storage

import (
	"context"
	"time"

	"eventlens/internal/model"
)

// RetryingStorage wraps a Storage and retries failed batch writes with
// exponential backoff.
type RetryingStorage struct {
	inner      Storage
	maxRetries int
	baseDelay  time.Duration
}

func WithRetry(inner Storage, maxRetries int, baseDelay time.Duration) *RetryingStorage {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if baseDelay <= 0 {
		baseDelay = 100 * time.Millisecond
	}
	return &RetryingStorage{inner: inner, maxRetries: maxRetries, baseDelay: baseDelay}
}

func (r *RetryingStorage) PutRecordBatch(ctx context.Context, records []model.Record) error {
	delay := r.baseDelay
	for attempt := 0; ; attempt++ {
		err := r.inner.PutRecordBatch(ctx, records)
		if err == nil {
			return nil
		}
		if attempt >= r.maxRetries {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		delay *= 2
	}
}
