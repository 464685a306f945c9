package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/frame/internal/core/ports"
)

// LogProcessor reports every finished span as a log line with its duration.
type LogProcessor struct {
	logger ports.Logger
}

// NewLogProcessor creates a span processor that logs through logger.
func NewLogProcessor(logger ports.Logger) *LogProcessor {
	return &LogProcessor{logger: logger}
}

// OnStart does nothing.
func (p *LogProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name and how long it took.
func (p *LogProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	took := s.EndTime().Sub(s.StartTime())
	if st := s.Status(); st.Code == codes.Error {
		p.logger.Warn("phase failed", "phase", s.Name(), "took", took, "error", st.Description)
		return
	}
	p.logger.Info("phase completed", "phase", s.Name(), "took", took)
}

// Shutdown does nothing.
func (p *LogProcessor) Shutdown(_ context.Context) error { return nil }

// ForceFlush does nothing.
func (p *LogProcessor) ForceFlush(_ context.Context) error { return nil }
