package kinesis

const getShardIteratorOperation = "GetShardIterator"

// ShardIteratorType selects where in a shard a new iterator starts.
type ShardIteratorType string

const (
	// IteratorAtSequenceNumber starts at the position of a specific
	// sequence number.
	IteratorAtSequenceNumber ShardIteratorType = "AT_SEQUENCE_NUMBER"

	// IteratorAfterSequenceNumber starts right after the position of a
	// specific sequence number.
	IteratorAfterSequenceNumber ShardIteratorType = "AFTER_SEQUENCE_NUMBER"

	// IteratorTrimHorizon starts at the oldest untrimmed record in the
	// shard.
	IteratorTrimHorizon ShardIteratorType = "TRIM_HORIZON"

	// IteratorLatest starts just after the most recent record, so reads
	// see only records added after the iterator was obtained.
	IteratorLatest ShardIteratorType = "LATEST"
)

func isValidShardIteratorType(value ShardIteratorType) bool {
	switch value {
	case IteratorAtSequenceNumber, IteratorAfterSequenceNumber, IteratorTrimHorizon, IteratorLatest:
		return true
	default:
		return false
	}
}

// ShardIterator is the opaque read cursor returned by GetShardIterator and
// advanced by GetRecords.
type ShardIterator string

func (i ShardIterator) String() string {
	return string(i)
}

// GetShardIteratorCommand represents the intent to obtain a read cursor
// into one shard of a stream.
//
// It should only be constructed with BuildGetShardIteratorCommand.
type GetShardIteratorCommand struct {
	StreamName             StreamName
	ShardID                ShardID
	IteratorType           ShardIteratorType
	StartingSequenceNumber *SequenceNumber
}

// BuildGetShardIteratorCommand is a factory method for
// GetShardIteratorCommand.
//
// The sequence-number-relative iterator types require a starting sequence
// number, set with WithStartingSequenceNumber; the others must not carry
// one. That cross-field rule is checked at encode time because the
// With* setter cannot see the final shape.
func BuildGetShardIteratorCommand(
	streamName StreamName,
	shardID ShardID,
	iteratorType ShardIteratorType,
) (GetShardIteratorCommand, error) {

	if !isValidShardIteratorType(iteratorType) {
		return GetShardIteratorCommand{}, ValidationError{Field: "ShardIteratorType", Reason: "must be one of AT_SEQUENCE_NUMBER, AFTER_SEQUENCE_NUMBER, TRIM_HORIZON, LATEST"}
	}

	return GetShardIteratorCommand{
		StreamName:   streamName,
		ShardID:      shardID,
		IteratorType: iteratorType,
	}, nil
}

// WithStartingSequenceNumber returns a copy of the command anchored at the
// given sequence number.
func (c GetShardIteratorCommand) WithStartingSequenceNumber(sequenceNumber SequenceNumber) GetShardIteratorCommand {
	c.StartingSequenceNumber = &sequenceNumber

	return c
}

// Action returns the operation identifier for this command.
func (c GetShardIteratorCommand) Action() Action {
	return ActionGetShardIterator
}

type getShardIteratorRequestDocument struct {
	StreamName             string  `json:"StreamName"`
	ShardId                string  `json:"ShardId"`
	ShardIteratorType      string  `json:"ShardIteratorType"`
	StartingSequenceNumber *string `json:"StartingSequenceNumber"`
}

type getShardIteratorResponseDocument struct {
	ShardIterator *string `json:"ShardIterator"`
}

// EncodeBody encodes the command into its JSON wire document. Absent
// optional fields are emitted as explicit null, not omitted.
func (c GetShardIteratorCommand) EncodeBody() ([]byte, error) {
	requiresAnchor := c.IteratorType == IteratorAtSequenceNumber || c.IteratorType == IteratorAfterSequenceNumber

	if requiresAnchor && c.StartingSequenceNumber == nil {
		return nil, ValidationError{Field: "StartingSequenceNumber", Reason: "required for sequence-number-relative iterator types"}
	}

	if !requiresAnchor && c.StartingSequenceNumber != nil {
		return nil, ValidationError{Field: "StartingSequenceNumber", Reason: "must not be set for " + string(c.IteratorType)}
	}

	document := getShardIteratorRequestDocument{
		StreamName:             c.StreamName.String(),
		ShardId:                c.ShardID.String(),
		ShardIteratorType:      string(c.IteratorType),
		StartingSequenceNumber: optionalStringer(c.StartingSequenceNumber),
	}

	return marshalDocument(getShardIteratorOperation, document)
}

// DecodeResponse decodes a successful wire response into a
// GetShardIteratorResponse, failing with a DecodeError when the iterator
// is missing or empty.
func (c GetShardIteratorCommand) DecodeResponse(body []byte) (GetShardIteratorResponse, error) {
	document := getShardIteratorResponseDocument{}
	if err := unmarshalDocument(getShardIteratorOperation, body, &document); err != nil {
		return GetShardIteratorResponse{}, err
	}

	if document.ShardIterator == nil || *document.ShardIterator == "" {
		return GetShardIteratorResponse{}, DecodeError{Operation: getShardIteratorOperation, Field: "ShardIterator"}
	}

	return GetShardIteratorResponse{ShardIterator: ShardIterator(*document.ShardIterator)}, nil
}

// DecodeGetShardIteratorCommand decodes a request wire document back into
// a GetShardIteratorCommand. It is the left inverse of EncodeBody and
// supports local service emulators and test doubles.
func DecodeGetShardIteratorCommand(body []byte) (GetShardIteratorCommand, error) {
	document := getShardIteratorRequestDocument{}
	if err := unmarshalDocument(getShardIteratorOperation, body, &document); err != nil {
		return GetShardIteratorCommand{}, err
	}

	streamName, err := BuildStreamName(document.StreamName)
	if err != nil {
		return GetShardIteratorCommand{}, DecodeError{Operation: getShardIteratorOperation, Field: "StreamName", Reason: err.Error()}
	}

	shardID, err := BuildShardID(document.ShardId)
	if err != nil {
		return GetShardIteratorCommand{}, DecodeError{Operation: getShardIteratorOperation, Field: "ShardId", Reason: err.Error()}
	}

	command, err := BuildGetShardIteratorCommand(streamName, shardID, ShardIteratorType(document.ShardIteratorType))
	if err != nil {
		return GetShardIteratorCommand{}, DecodeError{Operation: getShardIteratorOperation, Field: "ShardIteratorType", Reason: err.Error()}
	}

	if document.StartingSequenceNumber != nil {
		sequenceNumber, seqErr := BuildSequenceNumber(*document.StartingSequenceNumber)
		if seqErr != nil {
			return GetShardIteratorCommand{}, DecodeError{Operation: getShardIteratorOperation, Field: "StartingSequenceNumber", Reason: seqErr.Error()}
		}

		command = command.WithStartingSequenceNumber(sequenceNumber)
	}

	return command, nil
}

// GetShardIteratorResponse carries the opaque read cursor for subsequent
// GetRecords calls.
type GetShardIteratorResponse struct {
	ShardIterator ShardIterator
}

// GetShardIteratorFaults is the closed set of documented service faults
// for GetShardIterator.
var GetShardIteratorFaults = BuildFaultCatalog(
	F("InvalidArgumentException", 400),
	F("ProvisionedThroughputExceededException", 400),
	F("ResourceNotFoundException", 400),
)
