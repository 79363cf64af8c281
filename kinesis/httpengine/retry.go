package httpengine

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"time"
)

const (
	defaultMaxAttempts  = 6
	defaultBaseDelay    = 100 * time.Millisecond
	defaultJitterFactor = 0.3

	retryDelayMetric              = "kinesis_retry_delay"
	retriesMetric                 = "kinesis_retries_total"
	maxRetriesReachedMetric       = "kinesis_max_retries_reached_total"
	throttleProvisionedThroughput = "ProvisionedThroughputExceededException"
	throttleLimitExceeded         = "LimitExceededException"
)

var (
	// ErrNilRetryMetricsCollector is returned when a nil metrics collector is provided to WithRetryMetrics.
	ErrNilRetryMetricsCollector = errors.New("metrics collector must not be nil")

	// ErrInvalidMaxAttempts is returned when max attempts are not positive.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")

	// ErrNegativeBaseDelay is returned when the base delay is negative.
	ErrNegativeBaseDelay = errors.New("base delay must not be negative")

	// ErrInvalidJitterFactor is returned when the jitter factor is not between 0.0 and 1.0.
	ErrInvalidJitterFactor = errors.New("jitter factor must be between 0.0 and 1.0")
)

// RetryableFunc represents a function that can be retried.
type RetryableFunc func(ctx context.Context) error

// retryConfig holds configuration for exponential backoff retry logic.
type retryConfig struct {
	maxAttempts      int
	baseDelay        time.Duration
	jitterFactor     float64
	metricsCollector MetricsCollector
}

// RetryWithExponentialBackoff executes the provided function with
// exponential backoff retry logic, retrying only on retryable errors up to
// maxAttempts times.
//
// Retry Schedule (default): 0 ms, 100 ms, 200 ms, 400 ms, 800 ms, 1600 ms (with 30% jitter)
// Use Case: per-shard and control-plane throttling under bursty load
//
// Only throttle faults are retried - all other errors fail fast. The
// advisory control-plane rate limits make throttling an expected, transient
// condition rather than a defect.
func RetryWithExponentialBackoff(
	ctx context.Context,
	fn RetryableFunc,
	options ...RetryOption,
) error {
	config := &retryConfig{
		maxAttempts:  defaultMaxAttempts,
		baseDelay:    defaultBaseDelay,
		jitterFactor: defaultJitterFactor,
	}

	for _, option := range options {
		if err := option(config); err != nil {
			return err
		}
	}

	var lastErr error

	for attempt := 0; attempt < config.maxAttempts; attempt++ {
		if attempt > 0 {
			delay := config.baseDelay * time.Duration(1<<(attempt-1))

			// Add jitter to prevent thundering herd
			jitter := rand.Float64() * float64(delay) * config.jitterFactor //nolint:gosec //math/rand is sufficient for jitter
			backoffDelay := delay + time.Duration(jitter)

			recordRetryDelayMetric(ctx, config, attempt, backoffDelay)

			select {
			case <-time.After(backoffDelay):
				// Continue with retry
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		if !IsThrottleFault(lastErr) {
			return lastErr // Permanent failure
		}

		recordRetryAttemptMetric(ctx, attempt, config, lastErr)
	}

	recordMaxRetriesReachedMetric(ctx, config, lastErr)

	return lastErr // Max attempts reached
}

// IsThrottleFault reports whether err is a service fault caused by
// exceeding a provisioned throughput or control-plane rate limit. Only
// these faults are worth retrying; all others indicate a caller defect or
// a state conflict that backoff cannot resolve.
func IsThrottleFault(err error) bool {
	var fault *ServiceFault
	if !errors.As(err, &fault) {
		return false
	}

	return fault.Code == throttleProvisionedThroughput || fault.Code == throttleLimitExceeded
}

func recordRetryDelayMetric(ctx context.Context, config *retryConfig, attempt int, backoffDelay time.Duration) {
	if config.metricsCollector == nil {
		return
	}

	labels := map[string]string{"attempt_number": strconv.Itoa(attempt)}

	if contextual, ok := config.metricsCollector.(ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, retryDelayMetric, backoffDelay, labels)
	} else {
		config.metricsCollector.RecordDuration(retryDelayMetric, backoffDelay, labels)
	}
}

func recordRetryAttemptMetric(ctx context.Context, attempt int, config *retryConfig, lastErr error) {
	if attempt >= config.maxAttempts-1 || config.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		"attempt_number": strconv.Itoa(attempt + 1),
		logAttrFaultCode: faultCodeOf(lastErr),
	}

	if contextual, ok := config.metricsCollector.(ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, retriesMetric, labels)
	} else {
		config.metricsCollector.IncrementCounter(retriesMetric, labels)
	}
}

func recordMaxRetriesReachedMetric(ctx context.Context, config *retryConfig, lastErr error) {
	if config.metricsCollector == nil {
		return
	}

	labels := map[string]string{logAttrFaultCode: faultCodeOf(lastErr)}

	if contextual, ok := config.metricsCollector.(ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, maxRetriesReachedMetric, labels)
	} else {
		config.metricsCollector.IncrementCounter(maxRetriesReachedMetric, labels)
	}
}

func faultCodeOf(err error) string {
	var fault *ServiceFault
	if errors.As(err, &fault) {
		return fault.Code
	}

	return "other"
}

// RetryOption configures retry behavior using the functional options pattern.
type RetryOption func(*retryConfig) error

// WithMaxAttempts sets the maximum number of retry attempts.
func WithMaxAttempts(attempts int) RetryOption {
	return func(config *retryConfig) error {
		if attempts <= 0 {
			return ErrInvalidMaxAttempts
		}

		config.maxAttempts = attempts

		return nil
	}
}

// WithBaseDelay sets the base delay for exponential backoff.
// Actual delays: baseDelay, baseDelay*2, baseDelay*4, baseDelay*8, etc.
func WithBaseDelay(delay time.Duration) RetryOption {
	return func(config *retryConfig) error {
		if delay < 0 {
			return ErrNegativeBaseDelay
		}

		config.baseDelay = delay

		return nil
	}
}

// WithJitterFactor sets the jitter factor to prevent thundering herd problems.
// Jitter is added as a percentage of the calculated backoff delay.
// Valid range: 0.0 (no jitter) to 1.0 (100% jitter).
func WithJitterFactor(factor float64) RetryOption {
	return func(config *retryConfig) error {
		if factor < 0.0 || factor > 1.0 {
			return ErrInvalidJitterFactor
		}

		config.jitterFactor = factor

		return nil
	}
}

// WithRetryMetrics sets the metrics collector for retry instrumentation.
func WithRetryMetrics(collector MetricsCollector) RetryOption {
	return func(config *retryConfig) error {
		if collector == nil {
			return ErrNilRetryMetricsCollector
		}

		config.metricsCollector = collector

		return nil
	}
}
