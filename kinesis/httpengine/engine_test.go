package httpengine_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamkit/kinesis-commands-go/kinesis"
	"github.com/streamkit/kinesis-commands-go/kinesis/httpengine"
)

type scriptedExchange struct {
	statusCode int
	body       string
	requestID  string

	receivedTarget      string
	receivedContentType string
	receivedHeaders     http.Header
	receivedBody        []byte
	calls               int
}

func startScriptedServer(t *testing.T, exchange *scriptedExchange) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		exchange.calls++
		exchange.receivedTarget = request.Header.Get("X-Amz-Target")
		exchange.receivedContentType = request.Header.Get("Content-Type")
		exchange.receivedHeaders = request.Header.Clone()

		body, _ := io.ReadAll(request.Body)
		exchange.receivedBody = body

		if exchange.requestID != "" {
			writer.Header().Set("x-amzn-RequestId", exchange.requestID)
		}

		writer.WriteHeader(exchange.statusCode)
		_, _ = writer.Write([]byte(exchange.body))
	}))

	t.Cleanup(server.Close)

	return server
}

func buildPutRecordCommand(t *testing.T) kinesis.PutRecordCommand {
	t.Helper()

	streamName, err := kinesis.BuildStreamName("orders")
	require.NoError(t, err)

	partitionKey, err := kinesis.BuildPartitionKey("order-1")
	require.NoError(t, err)

	command, err := kinesis.BuildPutRecordCommand(streamName, []byte("payload"), partitionKey)
	require.NoError(t, err)

	return command
}

func Test_Execute_DecodesSuccessfulResponse(t *testing.T) {
	exchange := &scriptedExchange{
		statusCode: http.StatusOK,
		body:       `{"ShardId": "shardId-000000000000", "SequenceNumber": "49590338271"}`,
		requestID:  "req-123",
	}
	server := startScriptedServer(t, exchange)

	engine, err := httpengine.NewEngineFromHTTPClient(server.Client(), server.URL)
	require.NoError(t, err)

	response, metadata, err := httpengine.Execute(context.Background(), engine, buildPutRecordCommand(t))
	require.NoError(t, err)

	assert.Equal(t, "shardId-000000000000", response.ShardID.String())
	assert.Equal(t, "49590338271", response.SequenceNumber.String())

	assert.Equal(t, kinesis.ActionPutRecord, metadata.Action)
	assert.Equal(t, "req-123", metadata.RequestID)
	assert.NotEmpty(t, metadata.InvocationID)
	assert.Positive(t, metadata.Duration)

	assert.Equal(t, "Kinesis_20131202.PutRecord", exchange.receivedTarget)
	assert.Equal(t, "application/x-amz-json-1.1", exchange.receivedContentType)
	assert.Contains(t, string(exchange.receivedBody), `"StreamName":"orders"`)
}

func Test_Execute_AppliesSignerHeaders(t *testing.T) {
	exchange := &scriptedExchange{
		statusCode: http.StatusOK,
		body:       `{"ShardId": "shardId-000000000000", "SequenceNumber": "1"}`,
	}
	server := startScriptedServer(t, exchange)

	signer := httpengine.NewStaticCredentialsSigner(map[string]string{
		"Authorization": "AWS4-HMAC-SHA256 Credential=local",
	})

	engine, err := httpengine.NewEngineFromHTTPClient(server.Client(), server.URL, httpengine.WithSigner(signer))
	require.NoError(t, err)

	_, _, err = httpengine.Execute(context.Background(), engine, buildPutRecordCommand(t))
	require.NoError(t, err)

	assert.Equal(t, "AWS4-HMAC-SHA256 Credential=local", exchange.receivedHeaders.Get("Authorization"))
}

func Test_Execute_ClassifiesServiceFault(t *testing.T) {
	exchange := &scriptedExchange{
		statusCode: http.StatusBadRequest,
		body:       `{"__type": "com.amazonaws.kinesis#ProvisionedThroughputExceededException", "message": "Rate exceeded for shard"}`,
		requestID:  "req-456",
	}
	server := startScriptedServer(t, exchange)

	engine, err := httpengine.NewEngineFromHTTPClient(server.Client(), server.URL)
	require.NoError(t, err)

	_, metadata, err := httpengine.Execute(context.Background(), engine, buildPutRecordCommand(t))

	var fault *httpengine.ServiceFault
	require.ErrorAs(t, err, &fault)

	assert.Equal(t, kinesis.ActionPutRecord, fault.Action)
	assert.Equal(t, "ProvisionedThroughputExceededException", fault.Code, "namespace prefix is stripped")
	assert.Equal(t, "ProvisionedThroughputExceededException", fault.Fault.Name())
	assert.False(t, fault.Fault.IsUnknown())
	assert.Equal(t, "Rate exceeded for shard", fault.Message)
	assert.Equal(t, "req-456", fault.RequestID)
	assert.Equal(t, http.StatusBadRequest, fault.StatusCode)

	assert.Equal(t, "req-456", metadata.RequestID, "metadata is populated on service faults too")
	assert.True(t, httpengine.IsThrottleFault(err))
}

func Test_Execute_ClassifiesUnknownFaultCode(t *testing.T) {
	exchange := &scriptedExchange{
		statusCode: http.StatusInternalServerError,
		body:       `{"__type": "InternalFailure", "message": "unexpected"}`,
	}
	server := startScriptedServer(t, exchange)

	engine, err := httpengine.NewEngineFromHTTPClient(server.Client(), server.URL)
	require.NoError(t, err)

	_, _, err = httpengine.Execute(context.Background(), engine, buildPutRecordCommand(t))

	var fault *httpengine.ServiceFault
	require.ErrorAs(t, err, &fault)

	assert.Equal(t, "InternalFailure", fault.Code, "observed code is preserved verbatim")
	assert.True(t, fault.Fault.IsUnknown())
	assert.False(t, httpengine.IsThrottleFault(err))
}

func Test_Execute_PreservesNonJSONFaultBodies(t *testing.T) {
	exchange := &scriptedExchange{
		statusCode: http.StatusServiceUnavailable,
		body:       `<html>Service Unavailable</html>`,
		requestID:  "req-789",
	}
	server := startScriptedServer(t, exchange)

	engine, err := httpengine.NewEngineFromHTTPClient(server.Client(), server.URL)
	require.NoError(t, err)

	_, _, err = httpengine.Execute(context.Background(), engine, buildPutRecordCommand(t))

	var fault *httpengine.ServiceFault
	require.ErrorAs(t, err, &fault)

	assert.True(t, fault.Fault.IsUnknown())
	assert.Empty(t, fault.Code)
	assert.Equal(t, `<html>Service Unavailable</html>`, fault.Message, "the raw body is kept as the diagnostic")
	assert.Equal(t, "req-789", fault.RequestID)
	assert.Equal(t, http.StatusServiceUnavailable, fault.StatusCode)
}

func Test_Execute_ReportsDecodeErrorForMalformedSuccessBody(t *testing.T) {
	exchange := &scriptedExchange{
		statusCode: http.StatusOK,
		body:       `{"ShardId": "shardId-000000000000"}`,
	}
	server := startScriptedServer(t, exchange)

	engine, err := httpengine.NewEngineFromHTTPClient(server.Client(), server.URL)
	require.NoError(t, err)

	_, _, err = httpengine.Execute(context.Background(), engine, buildPutRecordCommand(t))

	var decodeErr kinesis.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "SequenceNumber", decodeErr.Field)
}

func Test_Execute_WrapsTransportFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	serverURL := server.URL
	server.Close()

	engine, err := httpengine.NewEngineFromHTTPClient(http.DefaultClient, serverURL)
	require.NoError(t, err)

	_, _, err = httpengine.Execute(context.Background(), engine, buildPutRecordCommand(t))

	require.ErrorIs(t, err, httpengine.ErrTransportFailed)
}

func Test_NewEngineFromHTTPClient_Validation(t *testing.T) {
	_, err := httpengine.NewEngineFromHTTPClient(nil, "http://localhost:4567")
	assert.ErrorIs(t, err, httpengine.ErrNilHTTPClient)

	_, err = httpengine.NewEngineFromHTTPClient(http.DefaultClient, "")
	assert.ErrorIs(t, err, httpengine.ErrEmptyEndpoint)

	_, err = httpengine.NewEngineFromHTTPClient(http.DefaultClient, "http://localhost:4567", httpengine.WithSigner(nil))
	assert.ErrorIs(t, err, httpengine.ErrNilSigner)
}

func Test_RetryWithExponentialBackoff_RetriesThrottleFaults(t *testing.T) {
	attempts := 0
	throttle := &httpengine.ServiceFault{
		Action: kinesis.ActionPutRecord,
		Code:   "ProvisionedThroughputExceededException",
	}

	err := httpengine.RetryWithExponentialBackoff(
		context.Background(),
		func(context.Context) error {
			attempts++
			if attempts < 3 {
				return throttle
			}
			return nil
		},
		httpengine.WithBaseDelay(time.Millisecond),
	)

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func Test_RetryWithExponentialBackoff_FailsFastOnPermanentErrors(t *testing.T) {
	attempts := 0
	permanent := errors.New("some permanent failure")

	err := httpengine.RetryWithExponentialBackoff(
		context.Background(),
		func(context.Context) error {
			attempts++
			return permanent
		},
		httpengine.WithBaseDelay(time.Millisecond),
	)

	require.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, attempts)
}

func Test_RetryWithExponentialBackoff_StopsAtMaxAttempts(t *testing.T) {
	attempts := 0
	throttle := &httpengine.ServiceFault{
		Action: kinesis.ActionPutRecord,
		Code:   "LimitExceededException",
	}

	err := httpengine.RetryWithExponentialBackoff(
		context.Background(),
		func(context.Context) error {
			attempts++
			return throttle
		},
		httpengine.WithMaxAttempts(4),
		httpengine.WithBaseDelay(time.Millisecond),
		httpengine.WithJitterFactor(0.0),
	)

	var fault *httpengine.ServiceFault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, 4, attempts)
}
