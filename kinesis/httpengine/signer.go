package httpengine

import (
	"context"
)

// Signer produces the authentication headers for one signed exchange.
// The engine calls it with the resolved wire target and the exact body
// bytes that will be sent, so implementations can compute payload-bound
// signatures. Returned headers are merged into the outgoing request.
type Signer interface {
	Sign(ctx context.Context, target string, body []byte) (map[string]string, error)
}

// StaticCredentialsSigner attaches a fixed set of headers to every request.
// It is sufficient for local service emulators and development endpoints
// that accept any well-formed credential material.
type StaticCredentialsSigner struct {
	headers map[string]string
}

// NewStaticCredentialsSigner creates a signer that sends the given headers
// unchanged on every request. The header map is copied.
func NewStaticCredentialsSigner(headers map[string]string) StaticCredentialsSigner {
	copied := make(map[string]string, len(headers))
	for key, value := range headers {
		copied[key] = value
	}

	return StaticCredentialsSigner{headers: copied}
}

// Sign implements the Signer interface.
func (s StaticCredentialsSigner) Sign(_ context.Context, _ string, _ []byte) (map[string]string, error) {
	headers := make(map[string]string, len(s.headers))
	for key, value := range s.headers {
		headers[key] = value
	}

	return headers, nil
}
