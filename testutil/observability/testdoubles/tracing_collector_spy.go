package testdoubles

import (
	"context"
	"sync"

	"github.com/streamkit/kinesis-commands-go/kinesis/httpengine"
)

// TracingCollectorSpy is a TracingCollector implementation that captures span lifecycles for testing.
type TracingCollectorSpy struct {
	spans       []*SpanContextSpy
	mu          sync.Mutex
	recordCalls bool
}

// SpanContextSpy is the SpanContext handed out by TracingCollectorSpy. It
// accumulates attributes and remembers the status it was finished with.
type SpanContextSpy struct {
	Name       string
	Attributes map[string]string
	Status     string
	Finished   bool
	mu         sync.Mutex
}

// SetStatus implements the SpanContext interface.
func (s *SpanContextSpy) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Status = status
}

// AddAttribute implements the SpanContext interface.
func (s *SpanContextSpy) AddAttribute(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Attributes[key] = value
}

// NewTracingCollectorSpy creates a new TracingCollectorSpy.
// Set recordCalls to true to capture all spans for inspection in tests.
func NewTracingCollectorSpy(recordCalls bool) *TracingCollectorSpy {
	return &TracingCollectorSpy{
		spans:       make([]*SpanContextSpy, 0),
		recordCalls: recordCalls,
	}
}

// StartSpan implements the TracingCollector interface.
func (t *TracingCollectorSpy) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, httpengine.SpanContext) {
	span := &SpanContextSpy{
		Name:       name,
		Attributes: copyLabels(attrs),
	}

	if t.recordCalls {
		t.mu.Lock()
		t.spans = append(t.spans, span)
		t.mu.Unlock()
	}

	return ctx, span
}

// FinishSpan implements the TracingCollector interface.
func (t *TracingCollectorSpy) FinishSpan(spanCtx httpengine.SpanContext, status string, attrs map[string]string) {
	span, ok := spanCtx.(*SpanContextSpy)
	if !ok {
		return
	}

	span.mu.Lock()
	defer span.mu.Unlock()

	for key, value := range attrs {
		span.Attributes[key] = value
	}

	span.Status = status
	span.Finished = true
}

// GetSpans returns a copy of the captured span list.
func (t *TracingCollectorSpy) GetSpans() []*SpanContextSpy {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]*SpanContextSpy(nil), t.spans...)
}

// Reset clears all captured spans.
func (t *TracingCollectorSpy) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.spans = t.spans[:0]
}

// Compile-time check to ensure TracingCollectorSpy implements the TracingCollector interface.
var _ httpengine.TracingCollector = (*TracingCollectorSpy)(nil)
