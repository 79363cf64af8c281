package transports

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

const (
	headerContentType = "Content-Type"
	headerTarget      = "X-Amz-Target"
	headerRequestID   = "x-amzn-RequestId"
	contentTypeAMZ    = "application/x-amz-json-1.1"
)

// HTTPTransport performs exchanges over a net/http client against a fixed
// endpoint.
type HTTPTransport struct {
	client   *http.Client
	endpoint string
}

// NewHTTPTransport creates an HTTPTransport for the given client and endpoint.
func NewHTTPTransport(client *http.Client, endpoint string) HTTPTransport {
	return HTTPTransport{client: client, endpoint: endpoint}
}

// RoundTrip implements the Transport interface. It POSTs the request body to
// the endpoint with the protocol headers and reads the full response body.
func (t HTTPTransport) RoundTrip(ctx context.Context, request Request) (Response, error) {
	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(request.Body))
	if err != nil {
		return Response{}, err
	}

	httpRequest.Header.Set(headerContentType, contentTypeAMZ)
	httpRequest.Header.Set(headerTarget, request.Target)

	for key, value := range request.Headers {
		httpRequest.Header.Set(key, value)
	}

	httpResponse, err := t.client.Do(httpRequest)
	if err != nil {
		return Response{}, err
	}

	defer func() { _ = httpResponse.Body.Close() }()

	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return Response{}, err
	}

	return Response{
		StatusCode: httpResponse.StatusCode,
		Body:       body,
		RequestID:  httpResponse.Header.Get(headerRequestID),
	}, nil
}
