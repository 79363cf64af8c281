package oteladapters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/streamkit/kinesis-commands-go/kinesis/oteladapters"
)

func newTestTracer() (*tracetest.InMemoryExporter, *oteladapters.TracingCollector) {
	exporter := tracetest.NewInMemoryExporter()
	provider := trace.NewTracerProvider(trace.WithSyncer(exporter))

	return exporter, oteladapters.NewTracingCollector(provider.Tracer("test"))
}

func Test_TracingCollector_StartSpan(t *testing.T) {
	exporter, collector := newTestTracer()

	attrs := map[string]string{
		"action":        "PutRecord",
		"invocation_id": "inv-1",
	}

	ctx, spanCtx := collector.StartSpan(context.Background(), "kinesis.execute", attrs)

	assert.NotNil(t, ctx, "Context should not be nil")
	assert.NotNil(t, spanCtx, "SpanContext should not be nil")

	collector.FinishSpan(spanCtx, "ok", map[string]string{"request_id": "req-1"})

	spans := exporter.GetSpans()
	require.Len(t, spans, 1, "Expected exactly one span")

	span := spans[0]
	assert.Equal(t, "kinesis.execute", span.Name, "Span name should match")

	assertSpanHasAttribute(t, span, "action", "PutRecord")
	assertSpanHasAttribute(t, span, "invocation_id", "inv-1")
	assertSpanHasAttribute(t, span, "request_id", "req-1")

	assert.Equal(t, codes.Ok, span.Status.Code, "Span should have OK status")
}

func Test_TracingCollector_FinishSpan_Error(t *testing.T) {
	exporter, collector := newTestTracer()

	_, spanCtx := collector.StartSpan(context.Background(), "kinesis.execute", nil)
	collector.FinishSpan(spanCtx, "error", map[string]string{
		"fault_code": "ProvisionedThroughputExceededException",
	})

	spans := exporter.GetSpans()
	require.Len(t, spans, 1, "Expected exactly one span")

	span := spans[0]
	assert.Equal(t, codes.Error, span.Status.Code, "Span should have error status")
	assertSpanHasAttribute(t, span, "fault_code", "ProvisionedThroughputExceededException")
}

func Test_TracingCollector_FinishSpan_UnknownStatusBecomesAttribute(t *testing.T) {
	exporter, collector := newTestTracer()

	_, spanCtx := collector.StartSpan(context.Background(), "kinesis.execute", nil)
	collector.FinishSpan(spanCtx, "partial", nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1, "Expected exactly one span")

	assertSpanHasAttribute(t, spans[0], "status", "partial")
}

func Test_OTelSpanContext_AddAttribute(t *testing.T) {
	exporter, collector := newTestTracer()

	_, spanCtx := collector.StartSpan(context.Background(), "kinesis.execute", nil)
	spanCtx.AddAttribute("stream_name", "orders")
	collector.FinishSpan(spanCtx, "ok", nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1, "Expected exactly one span")

	assertSpanHasAttribute(t, spans[0], "stream_name", "orders")
}

func assertSpanHasAttribute(t *testing.T, span tracetest.SpanStub, key, value string) {
	t.Helper()

	for _, attr := range span.Attributes {
		if attr.Key == attribute.Key(key) {
			assert.Equal(t, value, attr.Value.AsString(), "Attribute %s should have expected value", key)
			return
		}
	}

	t.Errorf("Span should have attribute %s", key)
}
