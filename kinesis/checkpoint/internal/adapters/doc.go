// Package adapters provides the database adapter implementations for the
// checkpoint store.
//
// The adapter pattern lets the store work with multiple PostgreSQL client
// libraries: pgxpool.Pool, sql.DB, and sqlx.DB. All adapters present the
// same DBAdapter interface for query execution and result handling.
package adapters
