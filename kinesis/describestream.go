package kinesis

const describeStreamOperation = "DescribeStream"

const maxDescribeStreamLimit = 10000

// StreamStatus is the lifecycle state of a stream as reported by the
// service. The set is open for forward compatibility; decode accepts any
// non-empty status string.
type StreamStatus string

const (
	StreamStatusCreating StreamStatus = "CREATING"
	StreamStatusDeleting StreamStatus = "DELETING"
	StreamStatusActive   StreamStatus = "ACTIVE"
	StreamStatusUpdating StreamStatus = "UPDATING"
)

// DescribeStreamCommand represents the intent to read a stream's shard
// topology and status, optionally paginated.
//
// It should only be constructed with BuildDescribeStreamCommand; the
// optional fields are set with the With* methods, which return a modified
// copy.
type DescribeStreamCommand struct {
	StreamName            StreamName
	Limit                 *int
	ExclusiveStartShardID *ShardID
}

// BuildDescribeStreamCommand is a factory method for
// DescribeStreamCommand.
func BuildDescribeStreamCommand(streamName StreamName) DescribeStreamCommand {
	return DescribeStreamCommand{StreamName: streamName}
}

// WithLimit returns a copy of the command bounding the number of shards
// returned per page.
func (c DescribeStreamCommand) WithLimit(limit int) (DescribeStreamCommand, error) {
	if limit < 1 || limit > maxDescribeStreamLimit {
		return DescribeStreamCommand{}, ValidationError{Field: "Limit", Reason: "must be between 1 and 10000"}
	}

	c.Limit = &limit

	return c, nil
}

// WithExclusiveStartShardID returns a copy of the command resuming
// pagination after the given shard.
func (c DescribeStreamCommand) WithExclusiveStartShardID(shardID ShardID) DescribeStreamCommand {
	c.ExclusiveStartShardID = &shardID

	return c
}

// Action returns the operation identifier for this command.
func (c DescribeStreamCommand) Action() Action {
	return ActionDescribeStream
}

type describeStreamRequestDocument struct {
	StreamName            string  `json:"StreamName"`
	Limit                 *int    `json:"Limit"`
	ExclusiveStartShardId *string `json:"ExclusiveStartShardId"`
}

type hashKeyRangeDocument struct {
	StartingHashKey *string `json:"StartingHashKey"`
	EndingHashKey   *string `json:"EndingHashKey"`
}

type sequenceNumberRangeDocument struct {
	StartingSequenceNumber *string `json:"StartingSequenceNumber"`
	EndingSequenceNumber   *string `json:"EndingSequenceNumber"`
}

type shardDocument struct {
	ShardId               *string                      `json:"ShardId"`
	ParentShardId         *string                      `json:"ParentShardId"`
	AdjacentParentShardId *string                      `json:"AdjacentParentShardId"`
	HashKeyRange          *hashKeyRangeDocument        `json:"HashKeyRange"`
	SequenceNumberRange   *sequenceNumberRangeDocument `json:"SequenceNumberRange"`
}

type streamDescriptionDocument struct {
	StreamName    *string         `json:"StreamName"`
	StreamStatus  *string         `json:"StreamStatus"`
	Shards        []shardDocument `json:"Shards"`
	HasMoreShards *bool           `json:"HasMoreShards"`
}

type describeStreamResponseDocument struct {
	StreamDescription *streamDescriptionDocument `json:"StreamDescription"`
}

// EncodeBody encodes the command into its JSON wire document. Absent
// optional fields are emitted as explicit null, not omitted.
func (c DescribeStreamCommand) EncodeBody() ([]byte, error) {
	document := describeStreamRequestDocument{
		StreamName:            c.StreamName.String(),
		Limit:                 optionalInt(c.Limit),
		ExclusiveStartShardId: optionalStringer(c.ExclusiveStartShardID),
	}

	return marshalDocument(describeStreamOperation, document)
}

// DecodeResponse decodes a successful wire response into a
// DescribeStreamResponse, failing with a DecodeError when a required field
// is missing or malformed. Unknown extra fields are ignored.
func (c DescribeStreamCommand) DecodeResponse(body []byte) (DescribeStreamResponse, error) {
	document := describeStreamResponseDocument{}
	if err := unmarshalDocument(describeStreamOperation, body, &document); err != nil {
		return DescribeStreamResponse{}, err
	}

	if document.StreamDescription == nil {
		return DescribeStreamResponse{}, DecodeError{Operation: describeStreamOperation, Field: "StreamDescription"}
	}

	description, err := streamDescriptionFrom(*document.StreamDescription)
	if err != nil {
		return DescribeStreamResponse{}, err
	}

	return DescribeStreamResponse{Description: description}, nil
}

func streamDescriptionFrom(document streamDescriptionDocument) (StreamDescription, error) {
	if document.StreamName == nil {
		return StreamDescription{}, DecodeError{Operation: describeStreamOperation, Field: "StreamName"}
	}

	if document.StreamStatus == nil || *document.StreamStatus == "" {
		return StreamDescription{}, DecodeError{Operation: describeStreamOperation, Field: "StreamStatus"}
	}

	if document.Shards == nil {
		return StreamDescription{}, DecodeError{Operation: describeStreamOperation, Field: "Shards"}
	}

	if document.HasMoreShards == nil {
		return StreamDescription{}, DecodeError{Operation: describeStreamOperation, Field: "HasMoreShards"}
	}

	streamName, err := BuildStreamName(*document.StreamName)
	if err != nil {
		return StreamDescription{}, DecodeError{Operation: describeStreamOperation, Field: "StreamName", Reason: err.Error()}
	}

	shards := make([]Shard, 0, len(document.Shards))

	for _, shardDoc := range document.Shards {
		shard, shardErr := shardFrom(shardDoc)
		if shardErr != nil {
			return StreamDescription{}, shardErr
		}

		shards = append(shards, shard)
	}

	return StreamDescription{
		StreamName:    streamName,
		Status:        StreamStatus(*document.StreamStatus),
		Shards:        shards,
		HasMoreShards: *document.HasMoreShards,
	}, nil
}

func shardFrom(document shardDocument) (Shard, error) {
	if document.ShardId == nil {
		return Shard{}, DecodeError{Operation: describeStreamOperation, Field: "ShardId"}
	}

	if document.HashKeyRange == nil {
		return Shard{}, DecodeError{Operation: describeStreamOperation, Field: "HashKeyRange"}
	}

	if document.HashKeyRange.StartingHashKey == nil {
		return Shard{}, DecodeError{Operation: describeStreamOperation, Field: "StartingHashKey"}
	}

	if document.HashKeyRange.EndingHashKey == nil {
		return Shard{}, DecodeError{Operation: describeStreamOperation, Field: "EndingHashKey"}
	}

	if document.SequenceNumberRange == nil {
		return Shard{}, DecodeError{Operation: describeStreamOperation, Field: "SequenceNumberRange"}
	}

	if document.SequenceNumberRange.StartingSequenceNumber == nil {
		return Shard{}, DecodeError{Operation: describeStreamOperation, Field: "StartingSequenceNumber"}
	}

	shardID, err := BuildShardID(*document.ShardId)
	if err != nil {
		return Shard{}, DecodeError{Operation: describeStreamOperation, Field: "ShardId", Reason: err.Error()}
	}

	startingHashKey, err := BuildPartitionHash(*document.HashKeyRange.StartingHashKey)
	if err != nil {
		return Shard{}, DecodeError{Operation: describeStreamOperation, Field: "StartingHashKey", Reason: err.Error()}
	}

	endingHashKey, err := BuildPartitionHash(*document.HashKeyRange.EndingHashKey)
	if err != nil {
		return Shard{}, DecodeError{Operation: describeStreamOperation, Field: "EndingHashKey", Reason: err.Error()}
	}

	startingSequenceNumber, err := BuildSequenceNumber(*document.SequenceNumberRange.StartingSequenceNumber)
	if err != nil {
		return Shard{}, DecodeError{Operation: describeStreamOperation, Field: "StartingSequenceNumber", Reason: err.Error()}
	}

	shard := Shard{
		ShardID:                shardID,
		StartingHashKey:        startingHashKey,
		EndingHashKey:          endingHashKey,
		StartingSequenceNumber: startingSequenceNumber,
	}

	if document.ParentShardId != nil {
		parent, parentErr := BuildShardID(*document.ParentShardId)
		if parentErr != nil {
			return Shard{}, DecodeError{Operation: describeStreamOperation, Field: "ParentShardId", Reason: parentErr.Error()}
		}

		shard.ParentShardID = &parent
	}

	if document.AdjacentParentShardId != nil {
		adjacent, adjacentErr := BuildShardID(*document.AdjacentParentShardId)
		if adjacentErr != nil {
			return Shard{}, DecodeError{Operation: describeStreamOperation, Field: "AdjacentParentShardId", Reason: adjacentErr.Error()}
		}

		shard.AdjacentParentShardID = &adjacent
	}

	if document.SequenceNumberRange.EndingSequenceNumber != nil {
		ending, endingErr := BuildSequenceNumber(*document.SequenceNumberRange.EndingSequenceNumber)
		if endingErr != nil {
			return Shard{}, DecodeError{Operation: describeStreamOperation, Field: "EndingSequenceNumber", Reason: endingErr.Error()}
		}

		shard.EndingSequenceNumber = &ending
	}

	return shard, nil
}

// DecodeDescribeStreamCommand decodes a request wire document back into a
// DescribeStreamCommand. It is the left inverse of EncodeBody and supports
// local service emulators and test doubles.
func DecodeDescribeStreamCommand(body []byte) (DescribeStreamCommand, error) {
	document := describeStreamRequestDocument{}
	if err := unmarshalDocument(describeStreamOperation, body, &document); err != nil {
		return DescribeStreamCommand{}, err
	}

	streamName, err := BuildStreamName(document.StreamName)
	if err != nil {
		return DescribeStreamCommand{}, DecodeError{Operation: describeStreamOperation, Field: "StreamName", Reason: err.Error()}
	}

	command := BuildDescribeStreamCommand(streamName)

	if document.Limit != nil {
		command, err = command.WithLimit(*document.Limit)
		if err != nil {
			return DescribeStreamCommand{}, DecodeError{Operation: describeStreamOperation, Field: "Limit", Reason: err.Error()}
		}
	}

	if document.ExclusiveStartShardId != nil {
		shardID, shardErr := BuildShardID(*document.ExclusiveStartShardId)
		if shardErr != nil {
			return DescribeStreamCommand{}, DecodeError{Operation: describeStreamOperation, Field: "ExclusiveStartShardId", Reason: shardErr.Error()}
		}

		command = command.WithExclusiveStartShardID(shardID)
	}

	return command, nil
}

// Shard describes one shard of a stream: its identity, lineage after
// splits and merges, the hash key range it owns, and its sequence number
// range. A nil EndingSequenceNumber marks an open shard.
type Shard struct {
	ShardID                ShardID
	ParentShardID          *ShardID
	AdjacentParentShardID  *ShardID
	StartingHashKey        PartitionHash
	EndingHashKey          PartitionHash
	StartingSequenceNumber SequenceNumber
	EndingSequenceNumber   *SequenceNumber
}

// StreamDescription is the decoded shard topology and status of a stream.
type StreamDescription struct {
	StreamName    StreamName
	Status        StreamStatus
	Shards        []Shard
	HasMoreShards bool
}

// DescribeStreamResponse carries the decoded stream description.
type DescribeStreamResponse struct {
	Description StreamDescription
}

// Owned returns a deep copy with freshly allocated shard storage.
func (r DescribeStreamResponse) Owned() DescribeStreamResponse {
	shards := make([]Shard, len(r.Description.Shards))
	copy(shards, r.Description.Shards)

	owned := r
	owned.Description.Shards = shards

	return owned
}

// DescribeStreamFaults is the closed set of documented service faults for
// DescribeStream.
var DescribeStreamFaults = BuildFaultCatalog(
	F("LimitExceededException", 400),
	F("ResourceNotFoundException", 400),
)
