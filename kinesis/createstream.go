package kinesis

const createStreamOperation = "CreateStream"

const maxShardCountPerCreate = 100000

// CreateStreamCommand represents the intent to create a stream with a
// fixed initial number of shards. The operation carries no response body.
//
// It should only be constructed with BuildCreateStreamCommand.
type CreateStreamCommand struct {
	StreamName StreamName
	ShardCount int
}

// BuildCreateStreamCommand is a factory method for CreateStreamCommand.
func BuildCreateStreamCommand(streamName StreamName, shardCount int) (CreateStreamCommand, error) {
	if shardCount < 1 {
		return CreateStreamCommand{}, ValidationError{Field: "ShardCount", Reason: "must be positive"}
	}

	if shardCount > maxShardCountPerCreate {
		return CreateStreamCommand{}, ValidationError{Field: "ShardCount", Reason: "must not exceed 100000"}
	}

	return CreateStreamCommand{StreamName: streamName, ShardCount: shardCount}, nil
}

// Action returns the operation identifier for this command.
func (c CreateStreamCommand) Action() Action {
	return ActionCreateStream
}

type createStreamRequestDocument struct {
	StreamName string `json:"StreamName"`
	ShardCount int    `json:"ShardCount"`
}

// EncodeBody encodes the command into its JSON wire document.
func (c CreateStreamCommand) EncodeBody() ([]byte, error) {
	document := createStreamRequestDocument{
		StreamName: c.StreamName.String(),
		ShardCount: c.ShardCount,
	}

	return marshalDocument(createStreamOperation, document)
}

// DecodeResponse always yields the UnitResponse singleton; the operation
// has no response body.
func (c CreateStreamCommand) DecodeResponse(_ []byte) (UnitResponse, error) {
	return UnitResponse{}, nil
}

// DecodeCreateStreamCommand decodes a request wire document back into a
// CreateStreamCommand. It is the left inverse of EncodeBody and supports
// local service emulators and test doubles.
func DecodeCreateStreamCommand(body []byte) (CreateStreamCommand, error) {
	document := createStreamRequestDocument{}
	if err := unmarshalDocument(createStreamOperation, body, &document); err != nil {
		return CreateStreamCommand{}, err
	}

	streamName, err := BuildStreamName(document.StreamName)
	if err != nil {
		return CreateStreamCommand{}, DecodeError{Operation: createStreamOperation, Field: "StreamName", Reason: err.Error()}
	}

	command, err := BuildCreateStreamCommand(streamName, document.ShardCount)
	if err != nil {
		return CreateStreamCommand{}, DecodeError{Operation: createStreamOperation, Field: "ShardCount", Reason: err.Error()}
	}

	return command, nil
}

// CreateStreamFaults is the closed set of documented service faults for
// CreateStream.
var CreateStreamFaults = BuildFaultCatalog(
	F("InvalidArgumentException", 400),
	F("LimitExceededException", 400),
	F("ResourceInUseException", 400),
)
