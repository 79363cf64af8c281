package kinesis

import (
	"errors"
	"fmt"
)

var ErrUnknownAction = errors.New("unknown action supplied")
var ErrEncodingCommandFailed = errors.New("encoding command to wire document failed")

// ValidationError reports that a domain value failed its invariant at
// construction time. It always surfaces before any network interaction
// and is never retryable.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// MalformedHashError reports that an explicit hash key could not be parsed
// as the decimal rendering of an unsigned 128-bit integer.
type MalformedHashError struct {
	Input  string
	Reason string
}

func (e MalformedHashError) Error() string {
	return fmt.Sprintf("malformed hash key %q: %s", e.Input, e.Reason)
}

// DecodeError reports that a wire document was missing a required field or
// carried a field of the wrong shape. It is a local, non-retryable client
// failure, distinct from a service-reported fault.
type DecodeError struct {
	Operation string
	Field     string
	Reason    string
}

func (e DecodeError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("decoding %s: missing required field %s", e.Operation, e.Field)
	}

	return fmt.Sprintf("decoding %s: field %s: %s", e.Operation, e.Field, e.Reason)
}
