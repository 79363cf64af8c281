package kinesis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamkit/kinesis-commands-go/kinesis"
)

// Round-trip coverage for the command codecs not exercised in their own
// test files: decode must be the exact left inverse of encode on the
// command's public fields for every command built from valid inputs.

func Test_CreateStreamCommand_RoundTrip(t *testing.T) {
	command, err := kinesis.BuildCreateStreamCommand(mustStreamName(t, "orders"), 4)
	require.NoError(t, err)

	body, err := command.EncodeBody()
	require.NoError(t, err)

	decoded, err := kinesis.DecodeCreateStreamCommand(body)
	require.NoError(t, err)
	assert.Equal(t, command, decoded)
}

func Test_BuildCreateStreamCommand_ValidatesShardCount(t *testing.T) {
	_, err := kinesis.BuildCreateStreamCommand(mustStreamName(t, "orders"), 0)

	var validationErr kinesis.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "ShardCount", validationErr.Field)

	_, err = kinesis.BuildCreateStreamCommand(mustStreamName(t, "orders"), 100001)
	assert.Error(t, err)
}

func Test_DescribeStreamCommand_RoundTrip(t *testing.T) {
	shardID, err := kinesis.BuildShardID("shardId-000000000007")
	require.NoError(t, err)

	command, err := kinesis.BuildDescribeStreamCommand(mustStreamName(t, "orders")).WithLimit(100)
	require.NoError(t, err)

	command = command.WithExclusiveStartShardID(shardID)

	body, err := command.EncodeBody()
	require.NoError(t, err)

	decoded, err := kinesis.DecodeDescribeStreamCommand(body)
	require.NoError(t, err)
	assert.Equal(t, command, decoded)
}

func Test_ListStreamsCommand_RoundTrip(t *testing.T) {
	command, err := kinesis.BuildListStreamsCommand().
		WithExclusiveStartStreamName(mustStreamName(t, "orders")).
		WithLimit(25)
	require.NoError(t, err)

	body, err := command.EncodeBody()
	require.NoError(t, err)

	decoded, err := kinesis.DecodeListStreamsCommand(body)
	require.NoError(t, err)
	assert.Equal(t, command, decoded)
}

func Test_ListStreamsCommand_RoundTrip_Empty(t *testing.T) {
	command := kinesis.BuildListStreamsCommand()

	body, err := command.EncodeBody()
	require.NoError(t, err)

	decoded, err := kinesis.DecodeListStreamsCommand(body)
	require.NoError(t, err)
	assert.Equal(t, command, decoded)
}

func Test_GetShardIteratorCommand_RoundTrip(t *testing.T) {
	shardID, err := kinesis.BuildShardID("shardId-000000000001")
	require.NoError(t, err)

	sequenceNumber, err := kinesis.BuildSequenceNumber("42")
	require.NoError(t, err)

	command, err := kinesis.BuildGetShardIteratorCommand(
		mustStreamName(t, "orders"),
		shardID,
		kinesis.IteratorAfterSequenceNumber,
	)
	require.NoError(t, err)

	command = command.WithStartingSequenceNumber(sequenceNumber)

	body, err := command.EncodeBody()
	require.NoError(t, err)

	decoded, err := kinesis.DecodeGetShardIteratorCommand(body)
	require.NoError(t, err)
	assert.Equal(t, command, decoded)
}

func Test_GetShardIteratorCommand_EncodeBody_EnforcesAnchorRule(t *testing.T) {
	shardID, err := kinesis.BuildShardID("shardId-000000000001")
	require.NoError(t, err)

	missingAnchor, err := kinesis.BuildGetShardIteratorCommand(
		mustStreamName(t, "orders"),
		shardID,
		kinesis.IteratorAtSequenceNumber,
	)
	require.NoError(t, err)

	_, err = missingAnchor.EncodeBody()
	var validationErr kinesis.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "StartingSequenceNumber", validationErr.Field)

	sequenceNumber, err := kinesis.BuildSequenceNumber("42")
	require.NoError(t, err)

	latest, err := kinesis.BuildGetShardIteratorCommand(mustStreamName(t, "orders"), shardID, kinesis.IteratorLatest)
	require.NoError(t, err)

	_, err = latest.WithStartingSequenceNumber(sequenceNumber).EncodeBody()
	assert.Error(t, err)
}

func Test_BuildGetShardIteratorCommand_RejectsUnknownIteratorType(t *testing.T) {
	shardID, err := kinesis.BuildShardID("shardId-000000000001")
	require.NoError(t, err)

	_, err = kinesis.BuildGetShardIteratorCommand(mustStreamName(t, "orders"), shardID, "SOMEWHERE")

	var validationErr kinesis.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "ShardIteratorType", validationErr.Field)
}

func Test_GetRecordsCommand_RoundTrip(t *testing.T) {
	command, err := kinesis.BuildGetRecordsCommand("AAAAopaque-iterator-token")
	require.NoError(t, err)

	command, err = command.WithLimit(500)
	require.NoError(t, err)

	body, err := command.EncodeBody()
	require.NoError(t, err)

	decoded, err := kinesis.DecodeGetRecordsCommand(body)
	require.NoError(t, err)
	assert.Equal(t, command, decoded)
}

func Test_MergeShardsCommand_RoundTrip(t *testing.T) {
	left, err := kinesis.BuildShardID("shardId-000000000001")
	require.NoError(t, err)

	right, err := kinesis.BuildShardID("shardId-000000000002")
	require.NoError(t, err)

	command, err := kinesis.BuildMergeShardsCommand(mustStreamName(t, "orders"), left, right)
	require.NoError(t, err)

	body, err := command.EncodeBody()
	require.NoError(t, err)

	decoded, err := kinesis.DecodeMergeShardsCommand(body)
	require.NoError(t, err)
	assert.Equal(t, command, decoded)
}

func Test_BuildMergeShardsCommand_RejectsSelfMerge(t *testing.T) {
	shardID, err := kinesis.BuildShardID("shardId-000000000001")
	require.NoError(t, err)

	_, err = kinesis.BuildMergeShardsCommand(mustStreamName(t, "orders"), shardID, shardID)

	var validationErr kinesis.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "AdjacentShardToMerge", validationErr.Field)
}

func Test_SplitShardCommand_RoundTrip(t *testing.T) {
	shardID, err := kinesis.BuildShardID("shardId-000000000001")
	require.NoError(t, err)

	hash, err := kinesis.BuildPartitionHash("170141183460469231731687303715884105728")
	require.NoError(t, err)

	command := kinesis.BuildSplitShardCommand(mustStreamName(t, "orders"), shardID, hash)

	body, err := command.EncodeBody()
	require.NoError(t, err)

	decoded, err := kinesis.DecodeSplitShardCommand(body)
	require.NoError(t, err)
	assert.Equal(t, command, decoded)
}

func Test_BuildQuery_WrapsActionAndBody(t *testing.T) {
	command := kinesis.BuildDeleteStreamCommand(mustStreamName(t, "orders"))

	envelope, err := kinesis.BuildQuery(command)
	require.NoError(t, err)

	expectedBody, err := command.EncodeBody()
	require.NoError(t, err)

	assert.Equal(t, kinesis.ActionDeleteStream, envelope.Action())
	assert.Equal(t, "Kinesis_20131202.DeleteStream", envelope.Target())
	assert.Equal(t, expectedBody, envelope.Body())
}

func Test_BuildQuery_IsDeterministic(t *testing.T) {
	sequenceNumber, err := kinesis.BuildSequenceNumber("42")
	require.NoError(t, err)

	command := buildPutRecordCommand(t).WithSequenceNumberForOrdering(sequenceNumber)

	first, err := kinesis.BuildQuery(command)
	require.NoError(t, err)

	second, err := kinesis.BuildQuery(command)
	require.NoError(t, err)

	assert.Equal(t, first.Body(), second.Body())
	assert.Equal(t, first.Target(), second.Target())
}
