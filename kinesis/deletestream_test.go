package kinesis_test

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamkit/kinesis-commands-go/kinesis"
)

func Test_DeleteStreamCommand_EncodeBody(t *testing.T) {
	command := kinesis.BuildDeleteStreamCommand(mustStreamName(t, "orders"))

	body, err := command.EncodeBody()
	require.NoError(t, err)

	document := map[string]any{}
	require.NoError(t, jsoniter.Unmarshal(body, &document))
	assert.Equal(t, map[string]any{"StreamName": "orders"}, document)
}

func Test_DeleteStreamCommand_RoundTrip(t *testing.T) {
	command := kinesis.BuildDeleteStreamCommand(mustStreamName(t, "orders"))

	body, err := command.EncodeBody()
	require.NoError(t, err)

	decoded, err := kinesis.DecodeDeleteStreamCommand(body)
	require.NoError(t, err)
	assert.Equal(t, command, decoded)
}

func Test_DeleteStreamCommand_DecodeResponse_AlwaysYieldsUnit(t *testing.T) {
	command := kinesis.BuildDeleteStreamCommand(mustStreamName(t, "orders"))

	tests := []struct {
		name string
		body []byte
	}{
		{name: "empty_body", body: nil},
		{name: "empty_object", body: []byte(`{}`)},
		{name: "arbitrary_extra_fields", body: []byte(`{"Ignored": "value", "Also": 42}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := command.DecodeResponse(tt.body)
			require.NoError(t, err)
			assert.Equal(t, kinesis.UnitResponse{}, response)
		})
	}
}

func Test_DeleteStreamCommand_ActionAndAdvisory(t *testing.T) {
	command := kinesis.BuildDeleteStreamCommand(mustStreamName(t, "orders"))

	assert.Equal(t, kinesis.ActionDeleteStream, command.Action())

	limit, documented := command.Action().AdvisoryRateLimit()
	require.True(t, documented)
	assert.Equal(t, 5, limit.TransactionsPerSecond)
}
