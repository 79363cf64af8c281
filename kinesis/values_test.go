package kinesis_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamkit/kinesis-commands-go/kinesis"
)

func Test_BuildStreamName_ValidationBoundary(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{name: "simple_name_is_valid", input: "orders", expectError: false},
		{name: "name_with_allowed_punctuation_is_valid", input: "orders_v2.prod-eu", expectError: false},
		{name: "name_of_128_bytes_is_valid", input: strings.Repeat("a", 128), expectError: false},
		{name: "name_of_129_bytes_is_invalid", input: strings.Repeat("a", 129), expectError: true},
		{name: "empty_name_is_invalid", input: "", expectError: true},
		{name: "name_with_space_is_invalid", input: "orders prod", expectError: true},
		{name: "name_with_slash_is_invalid", input: "orders/prod", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			streamName, err := kinesis.BuildStreamName(tt.input)

			if tt.expectError {
				var validationErr kinesis.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "StreamName", validationErr.Field)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input, streamName.String())
		})
	}
}

func Test_BuildPartitionKey_ValidationBoundary(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{name: "simple_key_is_valid", input: "customer-42", expectError: false},
		{name: "unicode_key_is_valid", input: "kunde-äöü", expectError: false},
		{name: "key_of_256_bytes_is_valid", input: strings.Repeat("k", 256), expectError: false},
		{name: "key_of_257_bytes_is_invalid", input: strings.Repeat("k", 257), expectError: true},
		{name: "multibyte_key_over_256_bytes_is_invalid", input: strings.Repeat("ä", 129), expectError: true},
		{name: "empty_key_is_invalid", input: "", expectError: true},
		{name: "invalid_utf8_key_is_invalid", input: string([]byte{0xff, 0xfe}), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			partitionKey, err := kinesis.BuildPartitionKey(tt.input)

			if tt.expectError {
				var validationErr kinesis.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "PartitionKey", validationErr.Field)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input, partitionKey.String())
		})
	}
}

func Test_BuildShardID_ValidationBoundary(t *testing.T) {
	shardID, err := kinesis.BuildShardID("shardId-000000000001")
	require.NoError(t, err)
	assert.Equal(t, "shardId-000000000001", shardID.String())

	_, err = kinesis.BuildShardID("")
	var validationErr kinesis.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "ShardId", validationErr.Field)

	_, err = kinesis.BuildShardID("shard id")
	assert.Error(t, err)
}

func Test_BuildSequenceNumber_ValidationBoundary(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{name: "digit_string_is_valid", input: "21269319989653637946712965403778482177", expectError: false},
		{name: "single_digit_is_valid", input: "7", expectError: false},
		{name: "empty_is_invalid", input: "", expectError: true},
		{name: "hex_digits_are_invalid", input: "21269319989653637946712965403778482a", expectError: true},
		{name: "negative_is_invalid", input: "-42", expectError: true},
		{name: "over_128_digits_is_invalid", input: strings.Repeat("9", 129), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sequenceNumber, err := kinesis.BuildSequenceNumber(tt.input)

			if tt.expectError {
				var validationErr kinesis.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "SequenceNumber", validationErr.Field)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input, sequenceNumber.String())
		})
	}
}

func Test_BuildSequenceNumber_TrimsLeadingZeros(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "leading_zeros_are_trimmed", input: "007", expected: "7"},
		{name: "all_zeros_canonicalize_to_zero", input: "0000", expected: "0"},
		{name: "padded_128_digit_limit_applies_to_canonical_form", input: "0" + strings.Repeat("9", 128), expected: strings.Repeat("9", 128)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sequenceNumber, err := kinesis.BuildSequenceNumber(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, sequenceNumber.String())
		})
	}
}

func Test_SequenceNumber_Compare_OrdersNumerically(t *testing.T) {
	small, err := kinesis.BuildSequenceNumber("999")
	require.NoError(t, err)

	large, err := kinesis.BuildSequenceNumber("1000")
	require.NoError(t, err)

	assert.Equal(t, -1, small.Compare(large))
	assert.Equal(t, 1, large.Compare(small))
	assert.Equal(t, 0, small.Compare(small))
}

func Test_SequenceNumber_Compare_NumericAcrossLeadingZeroInput(t *testing.T) {
	seven, err := kinesis.BuildSequenceNumber("007")
	require.NoError(t, err)

	eight, err := kinesis.BuildSequenceNumber("8")
	require.NoError(t, err)

	assert.Equal(t, -1, seven.Compare(eight))
	assert.Equal(t, 1, eight.Compare(seven))
}

func Test_ValueTypes_StructuralEquality(t *testing.T) {
	first, err := kinesis.BuildStreamName("orders")
	require.NoError(t, err)

	second, err := kinesis.BuildStreamName("orders")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 0, first.Compare(second))
	assert.Negative(t, first.Compare(mustStreamName(t, "payments")))
	assert.Positive(t, mustStreamName(t, "payments").Compare(first))
}

func mustStreamName(t *testing.T, value string) kinesis.StreamName {
	t.Helper()

	streamName, err := kinesis.BuildStreamName(value)
	require.NoError(t, err)

	return streamName
}
