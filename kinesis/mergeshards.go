package kinesis

const mergeShardsOperation = "MergeShards"

// MergeShardsCommand represents the intent to merge two adjacent shards
// into one, combining their hash key ranges. The operation carries no
// response body.
//
// It should only be constructed with BuildMergeShardsCommand.
type MergeShardsCommand struct {
	StreamName           StreamName
	ShardToMerge         ShardID
	AdjacentShardToMerge ShardID
}

// BuildMergeShardsCommand is a factory method for MergeShardsCommand.
func BuildMergeShardsCommand(
	streamName StreamName,
	shardToMerge ShardID,
	adjacentShardToMerge ShardID,
) (MergeShardsCommand, error) {

	if shardToMerge.Compare(adjacentShardToMerge) == 0 {
		return MergeShardsCommand{}, ValidationError{Field: "AdjacentShardToMerge", Reason: "must differ from ShardToMerge"}
	}

	return MergeShardsCommand{
		StreamName:           streamName,
		ShardToMerge:         shardToMerge,
		AdjacentShardToMerge: adjacentShardToMerge,
	}, nil
}

// Action returns the operation identifier for this command.
func (c MergeShardsCommand) Action() Action {
	return ActionMergeShards
}

type mergeShardsRequestDocument struct {
	StreamName           string `json:"StreamName"`
	ShardToMerge         string `json:"ShardToMerge"`
	AdjacentShardToMerge string `json:"AdjacentShardToMerge"`
}

// EncodeBody encodes the command into its JSON wire document.
func (c MergeShardsCommand) EncodeBody() ([]byte, error) {
	document := mergeShardsRequestDocument{
		StreamName:           c.StreamName.String(),
		ShardToMerge:         c.ShardToMerge.String(),
		AdjacentShardToMerge: c.AdjacentShardToMerge.String(),
	}

	return marshalDocument(mergeShardsOperation, document)
}

// DecodeResponse always yields the UnitResponse singleton; the operation
// has no response body.
func (c MergeShardsCommand) DecodeResponse(_ []byte) (UnitResponse, error) {
	return UnitResponse{}, nil
}

// DecodeMergeShardsCommand decodes a request wire document back into a
// MergeShardsCommand. It is the left inverse of EncodeBody and supports
// local service emulators and test doubles.
func DecodeMergeShardsCommand(body []byte) (MergeShardsCommand, error) {
	document := mergeShardsRequestDocument{}
	if err := unmarshalDocument(mergeShardsOperation, body, &document); err != nil {
		return MergeShardsCommand{}, err
	}

	streamName, err := BuildStreamName(document.StreamName)
	if err != nil {
		return MergeShardsCommand{}, DecodeError{Operation: mergeShardsOperation, Field: "StreamName", Reason: err.Error()}
	}

	shardToMerge, err := BuildShardID(document.ShardToMerge)
	if err != nil {
		return MergeShardsCommand{}, DecodeError{Operation: mergeShardsOperation, Field: "ShardToMerge", Reason: err.Error()}
	}

	adjacentShardToMerge, err := BuildShardID(document.AdjacentShardToMerge)
	if err != nil {
		return MergeShardsCommand{}, DecodeError{Operation: mergeShardsOperation, Field: "AdjacentShardToMerge", Reason: err.Error()}
	}

	command, err := BuildMergeShardsCommand(streamName, shardToMerge, adjacentShardToMerge)
	if err != nil {
		return MergeShardsCommand{}, DecodeError{Operation: mergeShardsOperation, Field: "AdjacentShardToMerge", Reason: err.Error()}
	}

	return command, nil
}

// MergeShardsFaults is the closed set of documented service faults for
// MergeShards.
var MergeShardsFaults = BuildFaultCatalog(
	F("InvalidArgumentException", 400),
	F("LimitExceededException", 400),
	F("ResourceInUseException", 400),
	F("ResourceNotFoundException", 400),
)
