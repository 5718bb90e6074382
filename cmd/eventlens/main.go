package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "eventlens",
		Short:        "ABI event-log decoder",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode raw logs against an ABI",
		RunE:  runDecode,
	}

	decodeCmd.Flags().String("abi", "", "ABI JSON file path")
	decodeCmd.Flags().String("in", "", "input raw logs JSONL")
	decodeCmd.Flags().String("out", "./data/decoded.jsonl", "output decoded records JSONL")
	decodeCmd.Flags().String("errors", "./data/decode_errors.jsonl", "decode errors JSONL")
	decodeCmd.Flags().String("pg-dsn", "", "optional Postgres DSN for a decoded_events sink")
	decodeCmd.Flags().Int("batch-size", 100, "batch size for DB writes")
	decodeCmd.Flags().Int("max-retries", 5, "maximum retry attempts for DB writes")
	decodeCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff for DB writes")
	decodeCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(decodeCmd)

	signaturesCmd := &cobra.Command{
		Use:   "signatures",
		Short: "Print canonical signatures and topic0 hashes for an ABI",
		RunE:  runSignatures,
	}

	signaturesCmd.Flags().String("abi", "", "ABI JSON file path")

	root.AddCommand(signaturesCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
