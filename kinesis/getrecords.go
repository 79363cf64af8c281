package kinesis

const getRecordsOperation = "GetRecords"

const maxGetRecordsLimit = 10000

// GetRecordsCommand represents the intent to read a batch of records from
// the shard position of an iterator.
//
// It should only be constructed with BuildGetRecordsCommand.
type GetRecordsCommand struct {
	ShardIterator ShardIterator
	Limit         *int
}

// BuildGetRecordsCommand is a factory method for GetRecordsCommand.
func BuildGetRecordsCommand(shardIterator ShardIterator) (GetRecordsCommand, error) {
	if shardIterator == "" {
		return GetRecordsCommand{}, ValidationError{Field: "ShardIterator", Reason: "must not be empty"}
	}

	return GetRecordsCommand{ShardIterator: shardIterator}, nil
}

// WithLimit returns a copy of the command bounding the number of records
// returned.
func (c GetRecordsCommand) WithLimit(limit int) (GetRecordsCommand, error) {
	if limit < 1 || limit > maxGetRecordsLimit {
		return GetRecordsCommand{}, ValidationError{Field: "Limit", Reason: "must be between 1 and 10000"}
	}

	c.Limit = &limit

	return c, nil
}

// Action returns the operation identifier for this command.
func (c GetRecordsCommand) Action() Action {
	return ActionGetRecords
}

type getRecordsRequestDocument struct {
	ShardIterator string `json:"ShardIterator"`
	Limit         *int   `json:"Limit"`
}

type recordDocument struct {
	Data           []byte  `json:"Data"`
	PartitionKey   *string `json:"PartitionKey"`
	SequenceNumber *string `json:"SequenceNumber"`
}

type getRecordsResponseDocument struct {
	Records           []recordDocument `json:"Records"`
	NextShardIterator *string          `json:"NextShardIterator"`
}

// EncodeBody encodes the command into its JSON wire document. Absent
// optional fields are emitted as explicit null, not omitted.
func (c GetRecordsCommand) EncodeBody() ([]byte, error) {
	document := getRecordsRequestDocument{
		ShardIterator: c.ShardIterator.String(),
		Limit:         optionalInt(c.Limit),
	}

	return marshalDocument(getRecordsOperation, document)
}

// DecodeResponse decodes a successful wire response into a
// GetRecordsResponse, failing with a DecodeError when a required field is
// missing or malformed. Unknown extra fields are ignored.
func (c GetRecordsCommand) DecodeResponse(body []byte) (GetRecordsResponse, error) {
	document := getRecordsResponseDocument{}
	if err := unmarshalDocument(getRecordsOperation, body, &document); err != nil {
		return GetRecordsResponse{}, err
	}

	if document.Records == nil {
		return GetRecordsResponse{}, DecodeError{Operation: getRecordsOperation, Field: "Records"}
	}

	records := make([]Record, 0, len(document.Records))

	for _, recordDoc := range document.Records {
		record, recordErr := recordFrom(recordDoc)
		if recordErr != nil {
			return GetRecordsResponse{}, recordErr
		}

		records = append(records, record)
	}

	response := GetRecordsResponse{Records: records}

	if document.NextShardIterator != nil && *document.NextShardIterator != "" {
		next := ShardIterator(*document.NextShardIterator)
		response.NextShardIterator = &next
	}

	return response, nil
}

func recordFrom(document recordDocument) (Record, error) {
	if len(document.Data) == 0 {
		return Record{}, DecodeError{Operation: getRecordsOperation, Field: "Data"}
	}

	if document.PartitionKey == nil {
		return Record{}, DecodeError{Operation: getRecordsOperation, Field: "PartitionKey"}
	}

	if document.SequenceNumber == nil {
		return Record{}, DecodeError{Operation: getRecordsOperation, Field: "SequenceNumber"}
	}

	partitionKey, err := BuildPartitionKey(*document.PartitionKey)
	if err != nil {
		return Record{}, DecodeError{Operation: getRecordsOperation, Field: "PartitionKey", Reason: err.Error()}
	}

	sequenceNumber, err := BuildSequenceNumber(*document.SequenceNumber)
	if err != nil {
		return Record{}, DecodeError{Operation: getRecordsOperation, Field: "SequenceNumber", Reason: err.Error()}
	}

	return Record{
		Data:           document.Data,
		PartitionKey:   partitionKey,
		SequenceNumber: sequenceNumber,
	}, nil
}

// DecodeGetRecordsCommand decodes a request wire document back into a
// GetRecordsCommand. It is the left inverse of EncodeBody and supports
// local service emulators and test doubles.
func DecodeGetRecordsCommand(body []byte) (GetRecordsCommand, error) {
	document := getRecordsRequestDocument{}
	if err := unmarshalDocument(getRecordsOperation, body, &document); err != nil {
		return GetRecordsCommand{}, err
	}

	command, err := BuildGetRecordsCommand(ShardIterator(document.ShardIterator))
	if err != nil {
		return GetRecordsCommand{}, DecodeError{Operation: getRecordsOperation, Field: "ShardIterator", Reason: err.Error()}
	}

	if document.Limit != nil {
		command, err = command.WithLimit(*document.Limit)
		if err != nil {
			return GetRecordsCommand{}, DecodeError{Operation: getRecordsOperation, Field: "Limit", Reason: err.Error()}
		}
	}

	return command, nil
}

// Record is one data record read from a shard.
type Record struct {
	Data           []byte
	PartitionKey   PartitionKey
	SequenceNumber SequenceNumber
}

// GetRecordsResponse carries one batch of records and the iterator for the
// next read. A nil NextShardIterator means the shard has been closed and
// fully consumed.
type GetRecordsResponse struct {
	Records           []Record
	NextShardIterator *ShardIterator
}

// Owned returns a deep copy whose record data no longer references
// transport-owned buffers.
func (r GetRecordsResponse) Owned() GetRecordsResponse {
	records := make([]Record, len(r.Records))

	for i, record := range r.Records {
		data := make([]byte, len(record.Data))
		copy(data, record.Data)

		records[i] = Record{
			Data:           data,
			PartitionKey:   record.PartitionKey,
			SequenceNumber: record.SequenceNumber,
		}
	}

	owned := r
	owned.Records = records

	return owned
}

// GetRecordsFaults is the closed set of documented service faults for
// GetRecords.
var GetRecordsFaults = BuildFaultCatalog(
	F("ExpiredIteratorException", 400),
	F("InvalidArgumentException", 400),
	F("ProvisionedThroughputExceededException", 400),
	F("ResourceNotFoundException", 400),
)
