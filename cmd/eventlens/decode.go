package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"eventlens/internal/config"
	"eventlens/internal/decoder"
	"eventlens/internal/host"
	"eventlens/internal/params"
	"eventlens/internal/storage"
	"eventlens/internal/storage/postgres"
)

func runDecode(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadDecode(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.ABIPath == "" {
		return fmt.Errorf("abi path is required")
	}
	if cfg.In == "" {
		return fmt.Errorf("input path is required")
	}
	if cfg.Out == "" {
		return fmt.Errorf("output path is required")
	}
	if cfg.Errors == "" {
		return fmt.Errorf("errors path is required")
	}

	abiText, err := os.ReadFile(cfg.ABIPath)
	if err != nil {
		return fmt.Errorf("read abi: %w", err)
	}

	store := params.NewStore()
	store.Set(string(abiText))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, err := host.OpenJSONLSource(cfg.In)
	if err != nil {
		return err
	}
	defer source.Close()

	failures, err := host.OpenFailureLog(cfg.Errors)
	if err != nil {
		return err
	}
	defer failures.Close()

	jsonlSink := storage.NewBatchSink(storage.NewJsonlStorage(cfg.Out), cfg.BatchSize)
	batchSinks := []*storage.BatchSink{jsonlSink}
	sink := host.Sink(jsonlSink)

	if cfg.PgDSN != "" {
		pgStore, err := postgres.NewStore(ctx, cfg.PgDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pgStore.Close()

		retrying := storage.WithRetry(pgStore, cfg.MaxRetries, cfg.RetryBackoff)
		pgSink := storage.NewBatchSink(retrying, cfg.BatchSize)
		batchSinks = append(batchSinks, pgSink)
		sink = host.MultiSink{jsonlSink, pgSink}
	}

	engine := decoder.NewEngine(store, logger)

	pipeline := host.NewPipeline(source, engine, sink, failures, logger)

	logger.Info("decode start",
		zap.String("abi", cfg.ABIPath),
		zap.String("in", cfg.In),
		zap.String("out", cfg.Out),
		zap.String("errors", cfg.Errors),
		zap.Bool("postgres", cfg.PgDSN != ""),
	)

	if err := pipeline.Run(ctx); err != nil {
		return err
	}

	for _, batchSink := range batchSinks {
		if err := batchSink.Flush(ctx); err != nil {
			return fmt.Errorf("flush output batch: %w", err)
		}
	}

	return nil
}
