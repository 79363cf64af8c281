package kinesis

const deleteStreamOperation = "DeleteStream"

// DeleteStreamCommand represents the intent to delete a stream and all its
// shards and data. The operation carries no response body; decoding always
// yields the UnitResponse singleton.
//
// It should only be constructed with BuildDeleteStreamCommand.
type DeleteStreamCommand struct {
	StreamName StreamName
}

// BuildDeleteStreamCommand is a factory method for DeleteStreamCommand.
func BuildDeleteStreamCommand(streamName StreamName) DeleteStreamCommand {
	return DeleteStreamCommand{StreamName: streamName}
}

// Action returns the operation identifier for this command.
func (c DeleteStreamCommand) Action() Action {
	return ActionDeleteStream
}

type deleteStreamRequestDocument struct {
	StreamName string `json:"StreamName"`
}

// EncodeBody encodes the command into its JSON wire document.
func (c DeleteStreamCommand) EncodeBody() ([]byte, error) {
	return marshalDocument(deleteStreamOperation, deleteStreamRequestDocument{StreamName: c.StreamName.String()})
}

// DecodeResponse always yields the UnitResponse singleton: the operation
// has no response body, so any well-formed (possibly empty) document
// decodes successfully.
func (c DeleteStreamCommand) DecodeResponse(_ []byte) (UnitResponse, error) {
	return UnitResponse{}, nil
}

// DecodeDeleteStreamCommand decodes a request wire document back into a
// DeleteStreamCommand. It is the left inverse of EncodeBody and supports
// local service emulators and test doubles.
func DecodeDeleteStreamCommand(body []byte) (DeleteStreamCommand, error) {
	document := deleteStreamRequestDocument{}
	if err := unmarshalDocument(deleteStreamOperation, body, &document); err != nil {
		return DeleteStreamCommand{}, err
	}

	streamName, err := BuildStreamName(document.StreamName)
	if err != nil {
		return DeleteStreamCommand{}, DecodeError{Operation: deleteStreamOperation, Field: "StreamName", Reason: err.Error()}
	}

	return BuildDeleteStreamCommand(streamName), nil
}

// DeleteStreamFaults is the closed set of documented service faults for
// DeleteStream.
var DeleteStreamFaults = BuildFaultCatalog(
	F("LimitExceededException", 400),
	F("ResourceNotFoundException", 400),
)
