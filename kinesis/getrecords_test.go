package kinesis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamkit/kinesis-commands-go/kinesis"
)

func Test_GetRecordsCommand_DecodeResponse(t *testing.T) {
	command, err := kinesis.BuildGetRecordsCommand("AAAAAAAAAAF7")
	require.NoError(t, err)

	body := `{
		"Records": [
			{"Data": "Zmlyc3Q=", "PartitionKey": "order-1", "SequenceNumber": "100"},
			{"Data": "c2Vjb25k", "PartitionKey": "order-2", "SequenceNumber": "101"}
		],
		"NextShardIterator": "AAAAAAAAAAG9"
	}`

	response, err := command.DecodeResponse([]byte(body))
	require.NoError(t, err)

	require.Len(t, response.Records, 2)
	assert.Equal(t, []byte("first"), response.Records[0].Data, "record data is base64 on the wire")
	assert.Equal(t, "order-1", response.Records[0].PartitionKey.String())
	assert.Equal(t, "100", response.Records[0].SequenceNumber.String())
	assert.Equal(t, []byte("second"), response.Records[1].Data)

	require.NotNil(t, response.NextShardIterator)
	assert.Equal(t, "AAAAAAAAAAG9", response.NextShardIterator.String())
}

func Test_GetRecordsCommand_DecodeResponse_ClosedShard(t *testing.T) {
	command, err := kinesis.BuildGetRecordsCommand("AAAAAAAAAAF7")
	require.NoError(t, err)

	response, err := command.DecodeResponse([]byte(`{"Records": [], "NextShardIterator": null}`))
	require.NoError(t, err)

	assert.Empty(t, response.Records)
	assert.Nil(t, response.NextShardIterator, "a closed, fully consumed shard has no next iterator")
}

func Test_GetRecordsCommand_DecodeResponse_MissingRequiredFields(t *testing.T) {
	command, err := kinesis.BuildGetRecordsCommand("AAAAAAAAAAF7")
	require.NoError(t, err)

	tests := []struct {
		name          string
		body          string
		expectedField string
	}{
		{
			name:          "missing_records",
			body:          `{"NextShardIterator": "AAAAAAAAAAG9"}`,
			expectedField: "Records",
		},
		{
			name:          "record_missing_partition_key",
			body:          `{"Records": [{"Data": "Zmlyc3Q=", "SequenceNumber": "100"}]}`,
			expectedField: "PartitionKey",
		},
		{
			name:          "record_missing_sequence_number",
			body:          `{"Records": [{"Data": "Zmlyc3Q=", "PartitionKey": "order-1"}]}`,
			expectedField: "SequenceNumber",
		},
		{
			name:          "record_with_invalid_sequence_number",
			body:          `{"Records": [{"Data": "Zmlyc3Q=", "PartitionKey": "order-1", "SequenceNumber": "12a4"}]}`,
			expectedField: "SequenceNumber",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, decodeErr := command.DecodeResponse([]byte(tt.body))

			var typedErr kinesis.DecodeError
			require.ErrorAs(t, decodeErr, &typedErr)
			assert.Equal(t, "GetRecords", typedErr.Operation)
			assert.Equal(t, tt.expectedField, typedErr.Field)
		})
	}
}

func Test_GetRecordsResponse_Owned_DetachesRecordData(t *testing.T) {
	command, err := kinesis.BuildGetRecordsCommand("AAAAAAAAAAF7")
	require.NoError(t, err)

	response, err := command.DecodeResponse(
		[]byte(`{"Records": [{"Data": "Zmlyc3Q=", "PartitionKey": "order-1", "SequenceNumber": "100"}]}`),
	)
	require.NoError(t, err)

	owned := kinesis.OwnedResponse(response)

	response.Records[0].Data[0] = 'X'

	assert.Equal(t, []byte("first"), owned.Records[0].Data)
}

func Test_OwnedResponse_PassesThroughResponsesWithoutSharedStorage(t *testing.T) {
	unit := kinesis.OwnedResponse(kinesis.UnitResponse{})
	assert.Equal(t, kinesis.UnitResponse{}, unit)

	iterator := kinesis.OwnedResponse(kinesis.GetShardIteratorResponse{ShardIterator: "AAAAAAAAAAF7"})
	assert.Equal(t, kinesis.ShardIterator("AAAAAAAAAAF7"), iterator.ShardIterator)
}
