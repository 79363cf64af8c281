package kinesis

import (
	"crypto/md5" //nolint:gosec // the wire contract pins MD5 for shard routing, not for security
	"math/big"
	"strings"
)

const maxHashKeyDigits = 39 // len of 2^128 - 1 in decimal

/***** PartitionHash *****/

// PartitionHash is the 128-bit hash value that selects a shard. When it is
// supplied explicitly on a command it overrides the hash computed from the
// partition key.
//
// The wire form is pinned to the canonical decimal rendering of an
// unsigned 128-bit integer: no sign, no leading zeros, "0" for zero. The
// canonical form is stored internally, so structural equality and the
// derived ordering hold without normalization at comparison time.
//
// It should only be constructed with BuildPartitionHash or
// DerivePartitionHash.
type PartitionHash struct {
	value string
}

// BuildPartitionHash is a factory method for PartitionHash.
//
// It parses the decimal wire form, canonicalizing by trimming leading
// zeros. It fails with a MalformedHashError on empty input, non-digit
// input, or values of 2^128 and above.
func BuildPartitionHash(decimal string) (PartitionHash, error) {
	if decimal == "" {
		return PartitionHash{}, MalformedHashError{Input: decimal, Reason: "must not be empty"}
	}

	if !isDigitString(decimal) {
		return PartitionHash{}, MalformedHashError{Input: decimal, Reason: "must only contain decimal digits"}
	}

	canonical := strings.TrimLeft(decimal, "0")
	if canonical == "" {
		canonical = "0"
	}

	if len(canonical) > maxHashKeyDigits {
		return PartitionHash{}, MalformedHashError{Input: decimal, Reason: "exceeds the unsigned 128-bit range"}
	}

	if len(canonical) == maxHashKeyDigits {
		parsed, ok := new(big.Int).SetString(canonical, 10)
		if !ok || parsed.BitLen() > 128 {
			return PartitionHash{}, MalformedHashError{Input: decimal, Reason: "exceeds the unsigned 128-bit range"}
		}
	}

	return PartitionHash{value: canonical}, nil
}

// DerivePartitionHash computes the shard-routing hash for a partition key.
//
// The derivation is pinned to: MD5 digest of the UTF-8 bytes of the key,
// interpreted as a big-endian unsigned 128-bit integer. The wire
// documentation leaves algorithm and byte order open; this choice is the
// one conventional clients agree on and must not change, because explicit
// hash keys produced from it land records on specific shards.
func DerivePartitionHash(key PartitionKey) PartitionHash {
	digest := md5.Sum([]byte(key.String())) //nolint:gosec // see import note

	return PartitionHash{value: new(big.Int).SetBytes(digest[:]).String()}
}

// String returns the canonical decimal wire form.
func (h PartitionHash) String() string {
	return h.value
}

// BigInt returns the hash as a freshly allocated big integer.
func (h PartitionHash) BigInt() *big.Int {
	if h.value == "" {
		return new(big.Int)
	}

	parsed, _ := new(big.Int).SetString(h.value, 10)

	return parsed
}

// Compare returns -1, 0, or +1 ordering hashes by their numeric value.
func (h PartitionHash) Compare(other PartitionHash) int {
	left := h.value
	if left == "" {
		left = "0"
	}

	right := other.value
	if right == "" {
		right = "0"
	}

	return compareDigitStrings(left, right)
}
