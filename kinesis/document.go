package kinesis

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

// jsonAPI pins standard-library JSON semantics: base64 for byte slices,
// explicit null for nil pointers, unknown fields ignored on decode.
var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// marshalDocument encodes a wire document struct to its JSON body bytes.
// Optional fields are modeled as pointers without omitempty, so an absent
// optional serializes as an explicit null rather than key omission.
func marshalDocument(operation string, document any) ([]byte, error) {
	body, err := jsonAPI.Marshal(document)
	if err != nil {
		return nil, errors.Join(ErrEncodingCommandFailed, errors.New(operation+": "+err.Error()))
	}

	return body, nil
}

// unmarshalDocument decodes JSON body bytes into a wire document struct.
// Malformed JSON yields a DecodeError for the operation; required-field
// checks are the caller's responsibility because only the per-operation
// codec knows which fields are required.
func unmarshalDocument(operation string, body []byte, document any) error {
	if len(body) == 0 {
		body = []byte("{}")
	}

	if err := jsonAPI.Unmarshal(body, document); err != nil {
		return DecodeError{Operation: operation, Field: "", Reason: err.Error()}
	}

	return nil
}

// optionalStringer renders an optional value type to its optional wire
// string, preserving absence as nil so it serializes as explicit null.
func optionalStringer[T interface{ String() string }](value *T) *string {
	if value == nil {
		return nil
	}

	rendered := (*value).String()

	return &rendered
}

// optionalInt renders an optional count, preserving absence as nil.
func optionalInt(value *int) *int {
	if value == nil {
		return nil
	}

	rendered := *value

	return &rendered
}
