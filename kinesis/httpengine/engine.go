package httpengine

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/streamkit/kinesis-commands-go/kinesis"
	"github.com/streamkit/kinesis-commands-go/kinesis/httpengine/internal/transports"
)

const (
	logMsgBuildQueryFailed     = "failed to build query envelope"
	logMsgSigningFailed        = "failed to sign request"
	logMsgTransportFailed      = "transport exchange failed"
	logMsgDecodeResponseFailed = "failed to decode service response"
	logMsgServiceFault         = "service returned a fault"
	logMsgTransactionCompleted = "transaction completed"
	logAttrError               = "error"
	logAttrAction              = "action"
	logAttrFaultCode           = "fault_code"
	logAttrStatusCode          = "status_code"
	logAttrRequestID           = "request_id"
	logAttrInvocationID        = "invocation_id"
	logAttrDurationMS          = "duration_ms"

	executeDurationMetric = "kinesis_execute_duration"
	serviceFaultsMetric   = "kinesis_service_faults_total"
	transportErrorsMetric = "kinesis_transport_errors_total"
	decodeErrorsMetric    = "kinesis_decode_errors_total"

	spanNameExecute    = "kinesis.execute"
	spanStatusOK       = "ok"
	spanStatusError    = "error"
	faultCodeSeparator = "#"
)

var (
	// ErrNilHTTPClient is returned when a nil http.Client is provided to the factory method.
	ErrNilHTTPClient = errors.New("http client must not be nil")

	// ErrEmptyEndpoint is returned when an empty endpoint is provided to the factory method.
	ErrEmptyEndpoint = errors.New("endpoint must not be empty")

	// ErrSigningFailed is returned when the configured Signer fails to produce headers.
	ErrSigningFailed = errors.New("signing the request failed")

	// ErrTransportFailed is returned when the wire exchange fails before a response is read.
	ErrTransportFailed = errors.New("transport exchange failed")
)

// Engine executes stream commands against one Kinesis-compatible endpoint.
// It holds the wire transport, the optional signer, and the observability
// collaborators. An Engine is safe for concurrent use.
type Engine struct {
	transport        transports.Transport
	signer           Signer
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// NewEngineFromHTTPClient creates a new Engine exchanging requests over the
// given net/http client against the given endpoint, with optional
// configuration.
func NewEngineFromHTTPClient(client *http.Client, endpoint string, options ...Option) (Engine, error) {
	if client == nil {
		return Engine{}, ErrNilHTTPClient
	}

	if endpoint == "" {
		return Engine{}, ErrEmptyEndpoint
	}

	engine := Engine{
		transport: transports.NewHTTPTransport(client, endpoint),
	}

	for _, option := range options {
		if err := option(&engine); err != nil {
			return Engine{}, err
		}
	}

	return engine, nil
}

// ServiceFault is the error returned when the service answers an exchange
// with a non-success status. The embedded Fault is resolved against the
// operation's fault catalog; codes outside the catalog classify as the
// unknown-fault sentinel while preserving the observed Code verbatim.
type ServiceFault struct {
	Action     kinesis.Action
	Fault      kinesis.Fault
	Code       string
	Message    string
	RequestID  string
	StatusCode int
}

func (f *ServiceFault) Error() string {
	return f.Action.String() + " failed with " + f.Code +
		" (status " + strconv.Itoa(f.StatusCode) + "): " + f.Message
}

type faultDocument struct {
	Type    string `json:"__type"`
	Message string `json:"message"`
}

var faultJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Execute runs one transaction against the engine's endpoint: it encodes the
// command into its signed query envelope, performs the exchange, and decodes
// either the typed response or a classified *ServiceFault. The returned
// response is an owned value with no reference to transport buffers, and the
// returned Metadata is populated on success and on service faults alike.
func Execute[R any](ctx context.Context, engine Engine, transaction kinesis.Transaction[R]) (R, kinesis.Metadata, error) {
	var empty R

	action := transaction.Action()
	invocationID := uuid.New().String()
	start := time.Now()

	spanCtx, span := engine.startSpan(ctx, action, invocationID)

	envelope, err := kinesis.BuildQuery(transaction)
	if err != nil {
		engine.observeFailure(spanCtx, span, action, logMsgBuildQueryFailed, err)
		return empty, kinesis.BuildMetadata(action, "", invocationID, time.Since(start)), err
	}

	var headers map[string]string

	if engine.signer != nil {
		headers, err = engine.signer.Sign(spanCtx, envelope.Target(), envelope.Body())
		if err != nil {
			joinedErr := errors.Join(ErrSigningFailed, err)
			engine.observeFailure(spanCtx, span, action, logMsgSigningFailed, joinedErr)

			return empty, kinesis.BuildMetadata(action, "", invocationID, time.Since(start)), joinedErr
		}
	}

	raw, err := engine.transport.RoundTrip(spanCtx, transports.Request{
		Target:  envelope.Target(),
		Body:    envelope.Body(),
		Headers: headers,
	})
	if err != nil {
		joinedErr := errors.Join(ErrTransportFailed, err)
		engine.incrementCounter(spanCtx, transportErrorsMetric, engine.actionLabels(action))
		engine.observeFailure(spanCtx, span, action, logMsgTransportFailed, joinedErr)

		return empty, kinesis.BuildMetadata(action, "", invocationID, time.Since(start)), joinedErr
	}

	metadata := kinesis.BuildMetadata(action, raw.RequestID, invocationID, time.Since(start))

	if raw.StatusCode != http.StatusOK {
		fault := classifyServiceFault(action, kinesis.RawResponse(raw))
		engine.observeServiceFault(spanCtx, span, fault)

		return empty, metadata, fault
	}

	response, err := transaction.DecodeResponse(raw.Body)
	if err != nil {
		engine.incrementCounter(spanCtx, decodeErrorsMetric, engine.actionLabels(action))
		engine.observeFailure(spanCtx, span, action, logMsgDecodeResponseFailed, err)

		return empty, metadata, err
	}

	engine.observeSuccess(spanCtx, span, metadata)

	return kinesis.OwnedResponse(response), metadata, nil
}

// classifyServiceFault parses the wire fault document and resolves its code
// against the operation's fault catalog. The wire type may carry a
// namespace prefix ("com.amazonaws.kinesis#LimitExceededException"); only
// the part after the last separator is the code. A body that is not a
// fault document still surfaces verbatim in the Message so the raw
// diagnostic is never lost.
func classifyServiceFault(action kinesis.Action, raw kinesis.RawResponse) *ServiceFault {
	document := faultDocument{}

	message := string(raw.Body)
	if err := faultJSON.Unmarshal(raw.Body, &document); err == nil {
		message = document.Message
	}

	code := document.Type
	if idx := strings.LastIndex(code, faultCodeSeparator); idx >= 0 {
		code = code[idx+1:]
	}

	return &ServiceFault{
		Action:     action,
		Fault:      kinesis.FaultCatalogFor(action).Classify(code),
		Code:       code,
		Message:    message,
		RequestID:  raw.RequestID,
		StatusCode: raw.StatusCode,
	}
}

func (e Engine) actionLabels(action kinesis.Action) map[string]string {
	return map[string]string{logAttrAction: action.String()}
}

func (e Engine) startSpan(ctx context.Context, action kinesis.Action, invocationID string) (context.Context, SpanContext) {
	if e.tracingCollector == nil {
		return ctx, nil
	}

	return e.tracingCollector.StartSpan(ctx, spanNameExecute, map[string]string{
		logAttrAction:       action.String(),
		logAttrInvocationID: invocationID,
	})
}

func (e Engine) observeFailure(ctx context.Context, span SpanContext, action kinesis.Action, msg string, err error) {
	if e.contextualLogger != nil {
		e.contextualLogger.ErrorContext(ctx, msg, logAttrAction, action.String(), logAttrError, err.Error())
	} else if e.logger != nil {
		e.logger.Error(msg, logAttrAction, action.String(), logAttrError, err.Error())
	}

	if span != nil {
		e.tracingCollector.FinishSpan(span, spanStatusError, map[string]string{logAttrError: err.Error()})
	}
}

func (e Engine) observeServiceFault(ctx context.Context, span SpanContext, fault *ServiceFault) {
	if e.metricsCollector != nil {
		labels := map[string]string{
			logAttrAction:    fault.Action.String(),
			logAttrFaultCode: fault.Code,
		}
		e.incrementCounter(ctx, serviceFaultsMetric, labels)
	}

	if e.contextualLogger != nil {
		e.contextualLogger.WarnContext(ctx, logMsgServiceFault,
			logAttrAction, fault.Action.String(),
			logAttrFaultCode, fault.Code,
			logAttrStatusCode, fault.StatusCode,
			logAttrRequestID, fault.RequestID,
		)
	} else if e.logger != nil {
		e.logger.Warn(logMsgServiceFault,
			logAttrAction, fault.Action.String(),
			logAttrFaultCode, fault.Code,
			logAttrStatusCode, fault.StatusCode,
			logAttrRequestID, fault.RequestID,
		)
	}

	if span != nil {
		e.tracingCollector.FinishSpan(span, spanStatusError, map[string]string{logAttrFaultCode: fault.Code})
	}
}

func (e Engine) observeSuccess(ctx context.Context, span SpanContext, metadata kinesis.Metadata) {
	e.recordDuration(ctx, executeDurationMetric, metadata.Duration, e.actionLabels(metadata.Action))

	if e.contextualLogger != nil {
		e.contextualLogger.InfoContext(ctx, logMsgTransactionCompleted,
			logAttrAction, metadata.Action.String(),
			logAttrRequestID, metadata.RequestID,
			logAttrDurationMS, metadata.Duration.Milliseconds(),
		)
	} else if e.logger != nil {
		e.logger.Info(logMsgTransactionCompleted,
			logAttrAction, metadata.Action.String(),
			logAttrRequestID, metadata.RequestID,
			logAttrDurationMS, metadata.Duration.Milliseconds(),
		)
	}

	if span != nil {
		e.tracingCollector.FinishSpan(span, spanStatusOK, map[string]string{
			logAttrRequestID: metadata.RequestID,
		})
	}
}

func (e Engine) recordDuration(ctx context.Context, metric string, duration time.Duration, labels map[string]string) {
	if e.metricsCollector == nil {
		return
	}

	if contextual, ok := e.metricsCollector.(ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, metric, duration, labels)
		return
	}

	e.metricsCollector.RecordDuration(metric, duration, labels)
}

func (e Engine) incrementCounter(ctx context.Context, metric string, labels map[string]string) {
	if e.metricsCollector == nil {
		return
	}

	if contextual, ok := e.metricsCollector.(ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, metric, labels)
		return
	}

	e.metricsCollector.IncrementCounter(metric, labels)
}
