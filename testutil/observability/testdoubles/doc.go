// Package testdoubles provides test doubles (spies) for observability interfaces.
//
// This package contains spy implementations for the dependency-free
// observability interfaces used by the engine and the checkpoint store:
//   - LoggerSpy: captures leveled logging calls for verification
//   - ContextualLoggerSpy: captures structured logging with context
//   - MetricsCollectorSpy: captures metrics recording calls for verification
//   - TracingCollectorSpy: captures spans with their attributes and status
//
// These test doubles enable testing of observability instrumentation
// without requiring actual telemetry backends.
package testdoubles
