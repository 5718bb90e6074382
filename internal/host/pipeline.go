package host

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"eventlens/internal/decoder"
	"eventlens/internal/model"
	"eventlens/internal/params"
)

// Pipeline pulls records from a source, decodes each, and completes it to
// the sink: decoded records and unmatched pass-throughs alike. Failed
// records go to the failure log. One record failing never stops the
// stream; only missing configuration or a sink failure does.
type Pipeline struct {
	source   Source
	engine   *decoder.Engine
	sink     Sink
	failures *FailureLog
	logger   *zap.Logger
}

// NewPipeline builds a Pipeline with its dependencies.
func NewPipeline(source Source, engine *decoder.Engine, sink Sink, failures *FailureLog, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		source:   source,
		engine:   engine,
		sink:     sink,
		failures: failures,
		logger:   logger,
	}
}

// Run drains the source. It returns on end of stream, context
// cancellation, missing ABI configuration, or sink failure.
func (p *Pipeline) Run(ctx context.Context) error {
	if p.source == nil {
		return fmt.Errorf("source is nil")
	}
	if p.engine == nil {
		return fmt.Errorf("engine is nil")
	}
	if p.sink == nil {
		return fmt.Errorf("sink is nil")
	}

	var total, decoded, passed, failed int
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rec, err := p.source.Next()
		if errors.Is(err, ErrEndOfStream) {
			break
		}
		if err != nil {
			total++
			failed++
			p.failures.Put(model.DecodeFailure{Error: err.Error()})
			continue
		}
		total++

		out, matched, err := p.engine.Decode(rec)
		if err != nil {
			if errors.Is(err, params.ErrNotConfigured) {
				return err
			}
			failed++
			p.failures.Put(model.FailureFromRecord(rec, err))
			continue
		}

		if err := p.sink.Put(ctx, out); err != nil {
			return fmt.Errorf("sink put: %w", err)
		}
		if matched {
			decoded++
		} else {
			passed++
		}
	}

	p.logger.Info("stream complete",
		zap.Int("total", total),
		zap.Int("decoded", decoded),
		zap.Int("passed", passed),
		zap.Int("failed", failed),
	)

	return nil
}
