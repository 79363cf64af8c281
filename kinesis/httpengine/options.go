package httpengine

import "errors"

// ErrNilSigner is returned when a nil signer is provided to WithSigner.
var ErrNilSigner = errors.New("signer must not be nil")

// Option defines a functional option for configuring the Engine.
type Option func(*Engine) error

// WithSigner sets the signer producing authentication headers for every
// exchange. Without a signer requests are sent unauthenticated, which is
// only useful against local service emulators.
func WithSigner(signer Signer) Option {
	return func(e *Engine) error {
		if signer == nil {
			return ErrNilSigner
		}

		e.signer = signer

		return nil
	}
}

// WithLogger sets the logger for the Engine.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Info level: Completed transactions with request IDs and durations (production-safe)
// Warn level: Classified service faults
// Error level: Transport, signing, and decode failures.
func WithLogger(logger Logger) Option {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Engine.
// The metrics collector will receive performance and operational metrics including
// execute durations, service fault counts, transport errors, and decode errors.
func WithMetrics(collector MetricsCollector) Option {
	return func(e *Engine) error {
		e.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Engine.
// The tracing collector will receive distributed tracing information including
// span creation per executed transaction, context propagation, and error tracking.
func WithTracing(collector TracingCollector) Option {
	return func(e *Engine) error {
		e.tracingCollector = collector
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Engine.
// The contextual logger will receive log messages with context information including
// automatic trace/span correlation when tracing is enabled, enabling unified observability.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(e *Engine) error {
		e.contextualLogger = logger
		return nil
	}
}
