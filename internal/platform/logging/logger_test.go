package logging

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return FromZap(zap.New(core)), logs
}

func TestLogger_KeyValueFields(t *testing.T) {
	logger, logs := newObserved(LevelDebug)

	logger.With("component", "httpapi").Warn("create match failed", "match_id", int64(7), "error", errors.New("disk full"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["component"] != "httpapi" {
		t.Fatalf("unexpected component field: %v", fields["component"])
	}
	if fields["match_id"] != int64(7) {
		t.Fatalf("unexpected match_id field: %v", fields["match_id"])
	}
	if fields["error"] != "disk full" {
		t.Fatalf("unexpected error field: %v", fields["error"])
	}
}

func TestLogger_OddArgsAndBadKeys(t *testing.T) {
	logger, logs := newObserved(LevelDebug)

	logger.Info("odd", 42, "value", "dangling")

	fields := logs.All()[0].ContextMap()
	if fields["arg"] != "value" {
		t.Fatalf("expected non-string key to be renamed to arg, got %v", fields)
	}
	if v, ok := fields["dangling"]; !ok || v != nil {
		t.Fatalf("expected dangling key with nil value, got %v", fields)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, logs := newObserved(LevelWarn)

	logger.Info("dropped")
	logger.Error("kept")

	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", logs.Len())
	}
	if logs.All()[0].Level != zapcore.ErrorLevel {
		t.Fatalf("unexpected level: %s", logs.All()[0].Level)
	}
}

func TestLogger_ContextAddsTraceIDs(t *testing.T) {
	logger, logs := newObserved(LevelDebug)

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "with trace")
	logger.InfoContext(context.Background(), "without trace")

	entries := logs.All()
	if got := entries[0].ContextMap()["trace_id"]; got != traceID.String() {
		t.Fatalf("unexpected trace_id: %v", got)
	}
	if _, ok := entries[1].ContextMap()["trace_id"]; ok {
		t.Fatalf("did not expect trace_id without a span")
	}
}

func TestLogger_NilReceiverFallsBackToDefault(t *testing.T) {
	logger, logs := newObserved(LevelDebug)
	SetDefault(logger)
	t.Cleanup(func() { SetDefault(nil) })

	var nilLogger *Logger
	nilLogger.Info("via default")

	if logs.Len() != 1 {
		t.Fatalf("expected nil logger to write through default, got %d entries", logs.Len())
	}
}
