package kinesis

import (
	"strings"
	"unicode/utf8"
)

const (
	maxStreamNameBytes     = 128
	maxPartitionKeyBytes   = 256
	maxShardIDBytes        = 128
	maxSequenceNumberChars = 128
)

/***** StreamName *****/

// StreamName is the validated identifier of a stream.
//
// It should only be constructed with BuildStreamName.
type StreamName struct {
	value string
}

// BuildStreamName is a factory method for StreamName.
//
// Valid names are 1 to 128 bytes long and consist of letters, digits,
// underscores, dots, and hyphens.
func BuildStreamName(value string) (StreamName, error) {
	if value == "" {
		return StreamName{}, ValidationError{Field: "StreamName", Reason: "must not be empty"}
	}

	if len(value) > maxStreamNameBytes {
		return StreamName{}, ValidationError{Field: "StreamName", Reason: "must not exceed 128 bytes"}
	}

	if !isIdentifierString(value) {
		return StreamName{}, ValidationError{Field: "StreamName", Reason: "must only contain letters, digits, underscores, dots, and hyphens"}
	}

	return StreamName{value: value}, nil
}

func (n StreamName) String() string {
	return n.value
}

// Compare returns -1, 0, or +1 ordering stream names lexicographically.
func (n StreamName) Compare(other StreamName) int {
	return strings.Compare(n.value, other.value)
}

/***** PartitionKey *****/

// PartitionKey is the caller-supplied string that deterministically selects
// a shard via its hash.
//
// It should only be constructed with BuildPartitionKey.
type PartitionKey struct {
	value string
}

// BuildPartitionKey is a factory method for PartitionKey.
//
// Valid keys are valid UTF-8 and 1 to 256 bytes long. The bound applies to
// the byte length, not the rune count.
func BuildPartitionKey(value string) (PartitionKey, error) {
	if value == "" {
		return PartitionKey{}, ValidationError{Field: "PartitionKey", Reason: "must not be empty"}
	}

	if len(value) > maxPartitionKeyBytes {
		return PartitionKey{}, ValidationError{Field: "PartitionKey", Reason: "must not exceed 256 bytes"}
	}

	if !utf8.ValidString(value) {
		return PartitionKey{}, ValidationError{Field: "PartitionKey", Reason: "must be valid UTF-8"}
	}

	return PartitionKey{value: value}, nil
}

func (k PartitionKey) String() string {
	return k.value
}

// Compare returns -1, 0, or +1 ordering partition keys lexicographically.
func (k PartitionKey) Compare(other PartitionKey) int {
	return strings.Compare(k.value, other.value)
}

/***** ShardID *****/

// ShardID is the opaque identifier of a shard as reported by the service.
//
// It should only be constructed with BuildShardID.
type ShardID struct {
	value string
}

// BuildShardID is a factory method for ShardID.
func BuildShardID(value string) (ShardID, error) {
	if value == "" {
		return ShardID{}, ValidationError{Field: "ShardId", Reason: "must not be empty"}
	}

	if len(value) > maxShardIDBytes {
		return ShardID{}, ValidationError{Field: "ShardId", Reason: "must not exceed 128 bytes"}
	}

	if !isIdentifierString(value) {
		return ShardID{}, ValidationError{Field: "ShardId", Reason: "must only contain letters, digits, underscores, dots, and hyphens"}
	}

	return ShardID{value: value}, nil
}

func (s ShardID) String() string {
	return s.value
}

// Compare returns -1, 0, or +1 ordering shard ids lexicographically.
func (s ShardID) Compare(other ShardID) int {
	return strings.Compare(s.value, other.value)
}

/***** SequenceNumber *****/

// SequenceNumber is the per-record identifier returned by the service for
// each successful put, or supplied by the caller as
// SequenceNumberForOrdering to request strict per-partition-key ordering
// relative to a prior put.
//
// Callers requesting strict ordering must chain sequence numbers: each
// subsequent put for a partition key must carry the sequence number
// returned by the immediately preceding put for that key. The client does
// not enforce this chain.
//
// It should only be constructed with BuildSequenceNumber.
type SequenceNumber struct {
	value string
}

// BuildSequenceNumber is a factory method for SequenceNumber.
//
// The wire form is a non-empty decimal digit string of at most 128 digits.
// Leading zeros are trimmed so that Compare and the checkpoint store's
// length-then-lexicographic ordering match the numeric interpretation.
func BuildSequenceNumber(value string) (SequenceNumber, error) {
	if value == "" {
		return SequenceNumber{}, ValidationError{Field: "SequenceNumber", Reason: "must not be empty"}
	}

	if !isDigitString(value) {
		return SequenceNumber{}, ValidationError{Field: "SequenceNumber", Reason: "must only contain decimal digits"}
	}

	canonical := strings.TrimLeft(value, "0")
	if canonical == "" {
		canonical = "0"
	}

	if len(canonical) > maxSequenceNumberChars {
		return SequenceNumber{}, ValidationError{Field: "SequenceNumber", Reason: "must not exceed 128 digits"}
	}

	return SequenceNumber{value: canonical}, nil
}

func (s SequenceNumber) String() string {
	return s.value
}

// Compare returns -1, 0, or +1 ordering sequence numbers by their numeric
// interpretation. Shorter digit strings order before longer ones; equal
// lengths order lexicographically.
func (s SequenceNumber) Compare(other SequenceNumber) int {
	return compareDigitStrings(s.value, other.value)
}

/***** shared helpers *****/

func isIdentifierString(value string) bool {
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '.' || r == '-':
		default:
			return false
		}
	}

	return true
}

func isDigitString(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// compareDigitStrings orders canonical decimal digit strings numerically.
// Both inputs must be free of leading zeros for the ordering to hold.
func compareDigitStrings(left string, right string) int {
	if len(left) != len(right) {
		if len(left) < len(right) {
			return -1
		}

		return 1
	}

	return strings.Compare(left, right)
}
