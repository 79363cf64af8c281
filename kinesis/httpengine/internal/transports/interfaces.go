package transports

import "context"

// Request is one outgoing x-amz-json-1.1 exchange.
type Request struct {
	Target  string
	Body    []byte
	Headers map[string]string
}

// Response is the raw result of one exchange before any decoding.
type Response struct {
	StatusCode int
	Body       []byte
	RequestID  string
}

// Transport defines the interface for the wire exchange needed by the engine.
type Transport interface {
	RoundTrip(ctx context.Context, request Request) (Response, error)
}
