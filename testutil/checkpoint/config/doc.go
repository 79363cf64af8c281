// Package config provides database connection configuration helpers for
// checkpoint store integration tests, covering all three supported client
// libraries: pgxpool.Pool, sql.DB, and sqlx.DB.
package config
