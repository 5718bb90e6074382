package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventlens/internal/model"
)

// Store provides Postgres persistence for decoded event records.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// PutRecordBatch inserts a batch of completed records. Pass-through
// records carry no signature and store NULL arguments.
func (s *Store) PutRecordBatch(ctx context.Context, records []model.Record) error {
	if len(records) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, record := range records {
		signature, _ := record["signature"].(string)

		var arguments []byte
		if raw, ok := record["arguments"]; ok {
			encoded, err := json.Marshal(raw)
			if err != nil {
				return fmt.Errorf("marshal arguments: %w", err)
			}
			arguments = encoded
		}

		payload, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}

		batch.Queue(`
			INSERT INTO decoded_events (
				tx_hash, block_number, signature, arguments, payload, created_at
			) VALUES ($1, $2, $3, $4, $5, now())
		`,
			record.TxHash(),
			record.BlockNumber(),
			signature,
			arguments,
			payload,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range records {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
