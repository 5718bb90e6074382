package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"eventlens/internal/model"
)

type flakyStorage struct {
	failures int
	attempts int
}

func (f *flakyStorage) PutRecordBatch(_ context.Context, _ []model.Record) error {
	f.attempts++
	if f.attempts <= f.failures {
		return fmt.Errorf("transient failure %d", f.attempts)
	}
	return nil
}

func TestWithRetryRecovers(t *testing.T) {
	inner := &flakyStorage{failures: 2}
	store := WithRetry(inner, 3, time.Millisecond)

	batch := []model.Record{{"transactionHash": "0x1"}}
	if err := store.PutRecordBatch(context.Background(), batch); err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if inner.attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.attempts)
	}
}

func TestWithRetryGivesUp(t *testing.T) {
	inner := &flakyStorage{failures: 10}
	store := WithRetry(inner, 2, time.Millisecond)

	batch := []model.Record{{"transactionHash": "0x1"}}
	if err := store.PutRecordBatch(context.Background(), batch); err == nil {
		t.Fatalf("expected failure after retries")
	}
	if inner.attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.attempts)
	}
}
