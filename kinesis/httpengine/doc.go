// Package httpengine executes stream commands against a Kinesis-compatible
// HTTP endpoint speaking the x-amz-json-1.1 target protocol.
//
// The engine is transport-agnostic at its seams: authentication is delegated
// to a Signer, the wire exchange to an internal HTTP transport, and
// observability to dependency-free Logger, MetricsCollector and
// TracingCollector interfaces. Responses are decoded by the command's own
// codec and returned as owned values that do not alias transport buffers.
//
// Usage:
//
//	engine, err := httpengine.NewEngineFromHTTPClient(
//		http.DefaultClient,
//		"https://kinesis.eu-central-1.amazonaws.com",
//		httpengine.WithLogger(logger),
//	)
//	if err != nil {
//		// handle err
//	}
//
//	command, err := kinesis.BuildPutRecordCommand(streamName, data, partitionKey)
//	if err != nil {
//		// handle err
//	}
//
//	response, metadata, err := httpengine.Execute(ctx, engine, command)
//
// Server-side failures surface as *ServiceFault carrying the classified
// fault from the operation's catalog; throttle faults can be retried with
// RetryWithExponentialBackoff.
package httpengine
