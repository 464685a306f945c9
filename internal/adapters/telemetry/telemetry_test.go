package telemetry_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/frame/internal/adapters/logger"
	"go.trai.ch/frame/internal/adapters/telemetry"
	"go.trai.ch/frame/internal/core/ports"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = (*telemetry.NoOpSpan)(nil)
	var _ sdktrace.SpanProcessor = (*telemetry.LogProcessor)(nil)
}

func TestOTelTracer_RecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracer(provider, telemetry.InstrumentationName)

	_, span := tracer.Start(context.Background(), "frontend.ready")
	span.SetAttribute("strategy", "native-binary")
	span.SetAttribute("port", uint16(41234))
	span.SetAttribute("attempts", 3)
	span.RecordError(nil)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "frontend.ready", ended[0].Name())
	assert.Equal(t, codes.Unset, ended[0].Status().Code)

	attrs := map[string]string{}
	for _, kv := range ended[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "native-binary", attrs["strategy"])
	assert.Equal(t, "41234", attrs["port"])
	assert.Equal(t, "3", attrs["attempts"])
}

func TestOTelSpan_RecordError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracer(provider, telemetry.InstrumentationName)

	_, span := tracer.Start(context.Background(), "frontend.spawn")
	span.RecordError(errors.New("exec: not found"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "exec: not found", ended[0].Status().Description)
}

func TestNoOpTracer_Start(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx := context.Background()
	got, span := tracer.Start(ctx, "test-span")
	assert.Equal(t, ctx, got)
	assert.NotNil(t, span)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}

func TestLogProcessor_LogsPhases(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	lg.SetJSON(true)

	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogProcessor(lg)))
	tracer := telemetry.NewOTelTracer(provider, telemetry.InstrumentationName)

	_, ok := tracer.Start(context.Background(), "port.allocate")
	ok.End()
	_, bad := tracer.Start(context.Background(), "frontend.ready")
	bad.RecordError(errors.New("frontend did not become ready"))
	bad.End()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "INFO", first["level"])
	assert.Equal(t, "phase completed", first["msg"])
	assert.Equal(t, "port.allocate", first["phase"])
	assert.Contains(t, first, "took")

	assert.Equal(t, "WARN", second["level"])
	assert.Equal(t, "phase failed", second["msg"])
	assert.Equal(t, "frontend.ready", second["phase"])
	assert.Equal(t, "frontend did not become ready", second["error"])
}
