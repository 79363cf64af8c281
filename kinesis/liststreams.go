package kinesis

const listStreamsOperation = "ListStreams"

const maxListStreamsLimit = 10000

// ListStreamsCommand represents the intent to list stream names,
// optionally paginated.
//
// It should only be constructed with BuildListStreamsCommand; the optional
// fields are set with the With* methods, which return a modified copy.
type ListStreamsCommand struct {
	ExclusiveStartStreamName *StreamName
	Limit                    *int
}

// BuildListStreamsCommand is a factory method for ListStreamsCommand.
func BuildListStreamsCommand() ListStreamsCommand {
	return ListStreamsCommand{}
}

// WithExclusiveStartStreamName returns a copy of the command resuming
// pagination after the given stream name.
func (c ListStreamsCommand) WithExclusiveStartStreamName(streamName StreamName) ListStreamsCommand {
	c.ExclusiveStartStreamName = &streamName

	return c
}

// WithLimit returns a copy of the command bounding the number of stream
// names returned per page.
func (c ListStreamsCommand) WithLimit(limit int) (ListStreamsCommand, error) {
	if limit < 1 || limit > maxListStreamsLimit {
		return ListStreamsCommand{}, ValidationError{Field: "Limit", Reason: "must be between 1 and 10000"}
	}

	c.Limit = &limit

	return c, nil
}

// Action returns the operation identifier for this command.
func (c ListStreamsCommand) Action() Action {
	return ActionListStreams
}

type listStreamsRequestDocument struct {
	ExclusiveStartStreamName *string `json:"ExclusiveStartStreamName"`
	Limit                    *int    `json:"Limit"`
}

type listStreamsResponseDocument struct {
	StreamNames    []string `json:"StreamNames"`
	HasMoreStreams *bool    `json:"HasMoreStreams"`
}

// EncodeBody encodes the command into its JSON wire document. Absent
// optional fields are emitted as explicit null, not omitted.
func (c ListStreamsCommand) EncodeBody() ([]byte, error) {
	document := listStreamsRequestDocument{
		ExclusiveStartStreamName: optionalStringer(c.ExclusiveStartStreamName),
		Limit:                    optionalInt(c.Limit),
	}

	return marshalDocument(listStreamsOperation, document)
}

// DecodeResponse decodes a successful wire response into a
// ListStreamsResponse, failing with a DecodeError when a required field is
// missing or malformed. Unknown extra fields are ignored.
func (c ListStreamsCommand) DecodeResponse(body []byte) (ListStreamsResponse, error) {
	document := listStreamsResponseDocument{}
	if err := unmarshalDocument(listStreamsOperation, body, &document); err != nil {
		return ListStreamsResponse{}, err
	}

	if document.StreamNames == nil {
		return ListStreamsResponse{}, DecodeError{Operation: listStreamsOperation, Field: "StreamNames"}
	}

	if document.HasMoreStreams == nil {
		return ListStreamsResponse{}, DecodeError{Operation: listStreamsOperation, Field: "HasMoreStreams"}
	}

	streamNames := make([]StreamName, 0, len(document.StreamNames))

	for _, name := range document.StreamNames {
		streamName, err := BuildStreamName(name)
		if err != nil {
			return ListStreamsResponse{}, DecodeError{Operation: listStreamsOperation, Field: "StreamNames", Reason: err.Error()}
		}

		streamNames = append(streamNames, streamName)
	}

	return ListStreamsResponse{StreamNames: streamNames, HasMoreStreams: *document.HasMoreStreams}, nil
}

// DecodeListStreamsCommand decodes a request wire document back into a
// ListStreamsCommand. It is the left inverse of EncodeBody and supports
// local service emulators and test doubles.
func DecodeListStreamsCommand(body []byte) (ListStreamsCommand, error) {
	document := listStreamsRequestDocument{}
	if err := unmarshalDocument(listStreamsOperation, body, &document); err != nil {
		return ListStreamsCommand{}, err
	}

	command := BuildListStreamsCommand()

	if document.ExclusiveStartStreamName != nil {
		streamName, err := BuildStreamName(*document.ExclusiveStartStreamName)
		if err != nil {
			return ListStreamsCommand{}, DecodeError{Operation: listStreamsOperation, Field: "ExclusiveStartStreamName", Reason: err.Error()}
		}

		command = command.WithExclusiveStartStreamName(streamName)
	}

	if document.Limit != nil {
		var err error

		command, err = command.WithLimit(*document.Limit)
		if err != nil {
			return ListStreamsCommand{}, DecodeError{Operation: listStreamsOperation, Field: "Limit", Reason: err.Error()}
		}
	}

	return command, nil
}

// ListStreamsResponse carries one page of stream names.
type ListStreamsResponse struct {
	StreamNames    []StreamName
	HasMoreStreams bool
}

// Owned returns a deep copy with freshly allocated name storage.
func (r ListStreamsResponse) Owned() ListStreamsResponse {
	streamNames := make([]StreamName, len(r.StreamNames))
	copy(streamNames, r.StreamNames)

	return ListStreamsResponse{StreamNames: streamNames, HasMoreStreams: r.HasMoreStreams}
}

// ListStreamsFaults is the closed set of documented service faults for
// ListStreams.
var ListStreamsFaults = BuildFaultCatalog(
	F("LimitExceededException", 400),
)
