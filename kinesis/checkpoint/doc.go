// Package checkpoint persists the last committed sequence number per
// (application, stream, shard) in PostgreSQL, so a consumer can resume a
// shard where it left off after a restart.
//
// A Store works with any of pgxpool.Pool, sql.DB or sqlx.DB through its
// factory methods. Commits are protected against going backwards: a commit
// carrying a sequence number that is not strictly larger than the stored
// one fails with ErrStaleSequenceNumber, using the numeric ordering of the
// wire's decimal digit strings.
//
// Usage:
//
//	store, err := checkpoint.NewStoreFromPGXPool(pool, checkpoint.WithTableName("order_checkpoints"))
//	if err != nil {
//		// handle err
//	}
//
//	err = store.Commit(ctx, checkpoint.Position{
//		Application:    "order-projector",
//		StreamName:     streamName,
//		ShardID:        shardID,
//		SequenceNumber: record.SequenceNumber,
//	})
package checkpoint
