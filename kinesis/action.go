package kinesis

// targetPrefix is the API version prefix carried in the transport's
// routing header, e.g. "Kinesis_20131202.PutRecord".
const targetPrefix = "Kinesis_20131202"

// Action is the closed enumeration of supported operations. Every command
// type maps to exactly one Action, and every Action maps to exactly one
// canonical wire action name. Adding an operation requires adding exactly
// one enumeration case here; this is the single registration point for
// new commands.
type Action int

const (
	ActionCreateStream Action = iota + 1
	ActionDeleteStream
	ActionDescribeStream
	ActionListStreams
	ActionPutRecord
	ActionGetShardIterator
	ActionGetRecords
	ActionMergeShards
	ActionSplitShard
)

// Actions returns all members of the enumeration in a stable order.
func Actions() []Action {
	return []Action{
		ActionCreateStream,
		ActionDeleteStream,
		ActionDescribeStream,
		ActionListStreams,
		ActionPutRecord,
		ActionGetShardIterator,
		ActionGetRecords,
		ActionMergeShards,
		ActionSplitShard,
	}
}

// String returns the bare operation name, e.g. "PutRecord".
func (a Action) String() string {
	switch a {
	case ActionCreateStream:
		return "CreateStream"
	case ActionDeleteStream:
		return "DeleteStream"
	case ActionDescribeStream:
		return "DescribeStream"
	case ActionListStreams:
		return "ListStreams"
	case ActionPutRecord:
		return "PutRecord"
	case ActionGetShardIterator:
		return "GetShardIterator"
	case ActionGetRecords:
		return "GetRecords"
	case ActionMergeShards:
		return "MergeShards"
	case ActionSplitShard:
		return "SplitShard"
	default:
		return "Unknown"
	}
}

// WireName returns the canonical action name consumed by the transport's
// routing header, e.g. "Kinesis_20131202.PutRecord".
func (a Action) WireName() string {
	return targetPrefix + "." + a.String()
}

/***** advisory rate limits *****/

// RateLimit is documented, advisory throttling metadata for an operation.
// It is surfaced for consumption by external throttling tooling and is
// never enforced by this package.
type RateLimit struct {
	TransactionsPerSecond int
	Scope                 string
}

const RateLimitScopeAccount = "account"

// AdvisoryRateLimit returns the documented rate limit for an Action, if
// one is documented. Operations whose limits are expressed as per-shard
// throughput rather than transactions per second report none.
func (a Action) AdvisoryRateLimit() (RateLimit, bool) {
	switch a {
	case ActionCreateStream, ActionDeleteStream, ActionListStreams, ActionMergeShards, ActionSplitShard:
		return RateLimit{TransactionsPerSecond: 5, Scope: RateLimitScopeAccount}, true
	case ActionDescribeStream:
		return RateLimit{TransactionsPerSecond: 10, Scope: RateLimitScopeAccount}, true
	default:
		return RateLimit{}, false
	}
}
