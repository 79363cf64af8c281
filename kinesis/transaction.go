package kinesis

import (
	"time"
)

// Command is the behavior shared by all request values: each command knows
// its Action and how to encode itself into a JSON wire body.
type Command interface {
	Action() Action
	EncodeBody() ([]byte, error)
}

// Transaction binds a Command to the single Response type produced by
// carrying it out. Each command type implements DecodeResponse for its own
// response shape, which lets one generic execution routine operate over
// any registered Command/Response pair without per-operation
// special-casing. The mapping is closed and total: one command type, one
// response type, one action.
type Transaction[R any] interface {
	Command
	DecodeResponse(body []byte) (R, error)
}

// ownedCopier is implemented by response types that may alias
// transport-owned buffers and therefore need a deep copy before they are
// handed to the caller.
type ownedCopier[R any] interface {
	Owned() R
}

// OwnedResponse materializes a fully in-memory variant of a decoded
// response: a copy with no remaining reference to transport-owned buffers.
// Responses built purely from scalars are returned unchanged.
func OwnedResponse[R any](response R) R {
	if copier, ok := any(response).(ownedCopier[R]); ok {
		return copier.Owned()
	}

	return response
}

// UnitResponse is the singleton response value of operations that carry no
// response body, such as DeleteStream.
type UnitResponse struct{}

// RawResponse pairs the raw bytes of a service response with the
// transport-level data needed to classify and decode it.
type RawResponse struct {
	StatusCode int
	Body       []byte
	RequestID  string
}

// Metadata is side-channel data attached uniformly to every transaction
// result, independent of which operation ran.
type Metadata struct {
	Action       Action
	RequestID    string
	InvocationID string
	Duration     time.Duration
}

// BuildMetadata is a factory method for Metadata.
func BuildMetadata(action Action, requestID string, invocationID string, duration time.Duration) Metadata {
	return Metadata{
		Action:       action,
		RequestID:    requestID,
		InvocationID: invocationID,
		Duration:     duration,
	}
}
