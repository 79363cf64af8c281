package kinesis

const splitShardOperation = "SplitShard"

// SplitShardCommand represents the intent to split one shard into two,
// with the new child shard taking over the hash key range starting at
// NewStartingHashKey. The operation carries no response body.
//
// It should only be constructed with BuildSplitShardCommand.
type SplitShardCommand struct {
	StreamName         StreamName
	ShardToSplit       ShardID
	NewStartingHashKey PartitionHash
}

// BuildSplitShardCommand is a factory method for SplitShardCommand.
func BuildSplitShardCommand(
	streamName StreamName,
	shardToSplit ShardID,
	newStartingHashKey PartitionHash,
) SplitShardCommand {

	return SplitShardCommand{
		StreamName:         streamName,
		ShardToSplit:       shardToSplit,
		NewStartingHashKey: newStartingHashKey,
	}
}

// Action returns the operation identifier for this command.
func (c SplitShardCommand) Action() Action {
	return ActionSplitShard
}

type splitShardRequestDocument struct {
	StreamName         string `json:"StreamName"`
	ShardToSplit       string `json:"ShardToSplit"`
	NewStartingHashKey string `json:"NewStartingHashKey"`
}

// EncodeBody encodes the command into its JSON wire document.
func (c SplitShardCommand) EncodeBody() ([]byte, error) {
	document := splitShardRequestDocument{
		StreamName:         c.StreamName.String(),
		ShardToSplit:       c.ShardToSplit.String(),
		NewStartingHashKey: c.NewStartingHashKey.String(),
	}

	return marshalDocument(splitShardOperation, document)
}

// DecodeResponse always yields the UnitResponse singleton; the operation
// has no response body.
func (c SplitShardCommand) DecodeResponse(_ []byte) (UnitResponse, error) {
	return UnitResponse{}, nil
}

// DecodeSplitShardCommand decodes a request wire document back into a
// SplitShardCommand. It is the left inverse of EncodeBody and supports
// local service emulators and test doubles.
func DecodeSplitShardCommand(body []byte) (SplitShardCommand, error) {
	document := splitShardRequestDocument{}
	if err := unmarshalDocument(splitShardOperation, body, &document); err != nil {
		return SplitShardCommand{}, err
	}

	streamName, err := BuildStreamName(document.StreamName)
	if err != nil {
		return SplitShardCommand{}, DecodeError{Operation: splitShardOperation, Field: "StreamName", Reason: err.Error()}
	}

	shardToSplit, err := BuildShardID(document.ShardToSplit)
	if err != nil {
		return SplitShardCommand{}, DecodeError{Operation: splitShardOperation, Field: "ShardToSplit", Reason: err.Error()}
	}

	newStartingHashKey, err := BuildPartitionHash(document.NewStartingHashKey)
	if err != nil {
		return SplitShardCommand{}, DecodeError{Operation: splitShardOperation, Field: "NewStartingHashKey", Reason: err.Error()}
	}

	return BuildSplitShardCommand(streamName, shardToSplit, newStartingHashKey), nil
}

// SplitShardFaults is the closed set of documented service faults for
// SplitShard.
var SplitShardFaults = BuildFaultCatalog(
	F("InvalidArgumentException", 400),
	F("LimitExceededException", 400),
	F("ResourceInUseException", 400),
	F("ResourceNotFoundException", 400),
)
