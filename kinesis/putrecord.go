package kinesis

const maxRecordDataBytes = 50000 // 50KB

const putRecordOperation = "PutRecord"

// PutRecordCommand represents the intent to put a single data record onto
// a stream. The record is routed to a shard by the hash of its partition
// key, unless an explicit hash key overrides the computed hash.
//
// It should only be constructed with BuildPutRecordCommand; the optional
// fields are set with the With* methods, which return a modified copy.
type PutRecordCommand struct {
	StreamName                StreamName
	Data                      []byte
	PartitionKey              PartitionKey
	ExplicitHashKey           *PartitionHash
	SequenceNumberForOrdering *SequenceNumber
}

// BuildPutRecordCommand is a factory method for PutRecordCommand.
//
// The data blob is the raw payload; it is base64-encoded into the wire
// document at encoding time, never sent as raw bytes.
func BuildPutRecordCommand(streamName StreamName, data []byte, partitionKey PartitionKey) (PutRecordCommand, error) {
	if len(data) == 0 {
		return PutRecordCommand{}, ValidationError{Field: "Data", Reason: "must not be empty"}
	}

	if len(data) > maxRecordDataBytes {
		return PutRecordCommand{}, ValidationError{Field: "Data", Reason: "must not exceed 50000 bytes"}
	}

	return PutRecordCommand{
		StreamName:   streamName,
		Data:         data,
		PartitionKey: partitionKey,
	}, nil
}

// WithExplicitHashKey returns a copy of the command whose shard routing is
// forced to the given hash instead of the hash derived from the partition
// key.
func (c PutRecordCommand) WithExplicitHashKey(hash PartitionHash) PutRecordCommand {
	c.ExplicitHashKey = &hash

	return c
}

// WithSequenceNumberForOrdering returns a copy of the command requesting
// strict per-partition-key ordering relative to the put that returned the
// given sequence number. Chaining the numbers correctly is the caller's
// contract; without it, puts get coarse arrival-time ordering.
func (c PutRecordCommand) WithSequenceNumberForOrdering(sequenceNumber SequenceNumber) PutRecordCommand {
	c.SequenceNumberForOrdering = &sequenceNumber

	return c
}

// Action returns the operation identifier for this command.
func (c PutRecordCommand) Action() Action {
	return ActionPutRecord
}

type putRecordRequestDocument struct {
	StreamName                string  `json:"StreamName"`
	Data                      []byte  `json:"Data"`
	PartitionKey              string  `json:"PartitionKey"`
	ExplicitHashKey           *string `json:"ExplicitHashKey"`
	SequenceNumberForOrdering *string `json:"SequenceNumberForOrdering"`
}

type putRecordResponseDocument struct {
	ShardId        *string `json:"ShardId"`
	SequenceNumber *string `json:"SequenceNumber"`
}

// EncodeBody encodes the command into its JSON wire document. Absent
// optional fields are emitted as explicit null, not omitted.
func (c PutRecordCommand) EncodeBody() ([]byte, error) {
	document := putRecordRequestDocument{
		StreamName:                c.StreamName.String(),
		Data:                      c.Data,
		PartitionKey:              c.PartitionKey.String(),
		ExplicitHashKey:           optionalStringer(c.ExplicitHashKey),
		SequenceNumberForOrdering: optionalStringer(c.SequenceNumberForOrdering),
	}

	return marshalDocument(putRecordOperation, document)
}

// DecodeResponse decodes a successful wire response into a
// PutRecordResponse, failing with a DecodeError when a required field is
// missing or malformed. Unknown extra fields are ignored.
func (c PutRecordCommand) DecodeResponse(body []byte) (PutRecordResponse, error) {
	document := putRecordResponseDocument{}
	if err := unmarshalDocument(putRecordOperation, body, &document); err != nil {
		return PutRecordResponse{}, err
	}

	if document.ShardId == nil {
		return PutRecordResponse{}, DecodeError{Operation: putRecordOperation, Field: "ShardId"}
	}

	if document.SequenceNumber == nil {
		return PutRecordResponse{}, DecodeError{Operation: putRecordOperation, Field: "SequenceNumber"}
	}

	shardID, err := BuildShardID(*document.ShardId)
	if err != nil {
		return PutRecordResponse{}, DecodeError{Operation: putRecordOperation, Field: "ShardId", Reason: err.Error()}
	}

	sequenceNumber, err := BuildSequenceNumber(*document.SequenceNumber)
	if err != nil {
		return PutRecordResponse{}, DecodeError{Operation: putRecordOperation, Field: "SequenceNumber", Reason: err.Error()}
	}

	return PutRecordResponse{ShardID: shardID, SequenceNumber: sequenceNumber}, nil
}

// DecodePutRecordCommand decodes a request wire document back into a
// PutRecordCommand. It is the left inverse of EncodeBody for every command
// built from valid inputs, and supports local service emulators and test
// doubles.
func DecodePutRecordCommand(body []byte) (PutRecordCommand, error) {
	document := putRecordRequestDocument{}
	if err := unmarshalDocument(putRecordOperation, body, &document); err != nil {
		return PutRecordCommand{}, err
	}

	streamName, err := BuildStreamName(document.StreamName)
	if err != nil {
		return PutRecordCommand{}, DecodeError{Operation: putRecordOperation, Field: "StreamName", Reason: err.Error()}
	}

	partitionKey, err := BuildPartitionKey(document.PartitionKey)
	if err != nil {
		return PutRecordCommand{}, DecodeError{Operation: putRecordOperation, Field: "PartitionKey", Reason: err.Error()}
	}

	command, err := BuildPutRecordCommand(streamName, document.Data, partitionKey)
	if err != nil {
		return PutRecordCommand{}, DecodeError{Operation: putRecordOperation, Field: "Data", Reason: err.Error()}
	}

	if document.ExplicitHashKey != nil {
		hash, hashErr := BuildPartitionHash(*document.ExplicitHashKey)
		if hashErr != nil {
			return PutRecordCommand{}, DecodeError{Operation: putRecordOperation, Field: "ExplicitHashKey", Reason: hashErr.Error()}
		}

		command = command.WithExplicitHashKey(hash)
	}

	if document.SequenceNumberForOrdering != nil {
		sequenceNumber, seqErr := BuildSequenceNumber(*document.SequenceNumberForOrdering)
		if seqErr != nil {
			return PutRecordCommand{}, DecodeError{Operation: putRecordOperation, Field: "SequenceNumberForOrdering", Reason: seqErr.Error()}
		}

		command = command.WithSequenceNumberForOrdering(sequenceNumber)
	}

	return command, nil
}

// PutRecordResponse reports which shard accepted the record and the
// sequence number assigned to it.
type PutRecordResponse struct {
	ShardID        ShardID
	SequenceNumber SequenceNumber
}

// PutRecordFaults is the closed set of documented service faults for
// PutRecord.
var PutRecordFaults = BuildFaultCatalog(
	F("InvalidArgumentException", 400),
	F("ProvisionedThroughputExceededException", 400),
	F("ResourceNotFoundException", 400),
)
