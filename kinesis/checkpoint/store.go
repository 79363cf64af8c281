package checkpoint

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/streamkit/kinesis-commands-go/kinesis"
	"github.com/streamkit/kinesis-commands-go/kinesis/checkpoint/internal/adapters"
)

const (
	defaultCheckpointTableName = "checkpoints"

	logMsgBuildUpsertQueryFailed = "failed to build upsert query"
	logMsgBuildSelectQueryFailed = "failed to build select query"
	logMsgDBExecFailed           = "database execution failed during checkpoint commit"
	logMsgRowsAffectedFailed     = "failed to get rows affected count"
	logMsgStaleSequenceNumber    = "stale sequence number rejected"
	logMsgCheckpointCommitted    = "checkpoint committed"
	logAttrError                 = "error"
	logAttrApplication           = "application"
	logAttrStreamName            = "stream_name"
	logAttrShardID               = "shard_id"
	logAttrSequenceNumber        = "sequence_number"
	logAttrDurationMS            = "duration_ms"

	commitDurationMetric = "checkpoint_commit_duration"
	staleCommitsMetric   = "checkpoint_stale_commits_total"

	colApplication    = "application"
	colStreamName     = "stream_name"
	colShardID        = "shard_id"
	colSequenceNumber = "sequence_number"
	colUpdatedAt      = "updated_at"
	dialectPostgres   = "postgres"
)

var (
	// ErrNilDatabaseConnection is returned when a nil database connection is provided to a factory method.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrEmptyApplication is returned when a Position carries no application name.
	ErrEmptyApplication = errors.New("application must not be empty")

	// ErrStaleSequenceNumber is returned when a commit does not advance the
	// stored sequence number. The stored checkpoint is left untouched.
	ErrStaleSequenceNumber = errors.New("sequence number is not larger than the committed one")
)

// Position is one checkpoint: the last committed sequence number of an
// application on one shard of one stream.
type Position struct {
	Application    string
	StreamName     kinesis.StreamName
	ShardID        kinesis.ShardID
	SequenceNumber kinesis.SequenceNumber
}

// Store persists checkpoints in a PostgreSQL table keyed by
// (application, stream_name, shard_id). It leverages a database adapter and
// supports customizable logging and table configuration.
type Store struct {
	db               adapters.DBAdapter
	tableName        string
	logger           Logger
	metricsCollector MetricsCollector
}

// NewStoreFromPGXPool creates a new Store using a pgx Pool with optional configuration.
func NewStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewPGXAdapter(db), options...)
}

// NewStoreFromSQLDB creates a new Store using a sql.DB with optional configuration.
func NewStoreFromSQLDB(db *sql.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLAdapter(db), options...)
}

// NewStoreFromSQLX creates a new Store using a sqlx.DB with optional configuration.
func NewStoreFromSQLX(db *sqlx.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLXAdapter(db), options...)
}

func newStore(db adapters.DBAdapter, options ...Option) (Store, error) {
	store := Store{
		db:        db,
		tableName: defaultCheckpointTableName,
	}

	for _, option := range options {
		if err := option(&store); err != nil {
			return Store{}, err
		}
	}

	return store, nil
}

// Commit upserts the position, but only forward: when a row for the
// position's key already exists, the update is guarded so the stored
// sequence number can only grow under the decimal digit-string ordering
// (shorter means smaller, equal length compares lexicographically). A
// commit that does not advance the checkpoint fails with
// ErrStaleSequenceNumber and leaves the stored row untouched.
func (s Store) Commit(ctx context.Context, position Position) error {
	if position.Application == "" {
		return ErrEmptyApplication
	}

	start := time.Now()

	sqlQuery, err := s.buildUpsertQuery(position)
	if err != nil {
		s.logError(logMsgBuildUpsertQueryFailed, err)
		return err
	}

	result, err := s.db.Exec(ctx, sqlQuery)
	if err != nil {
		s.logError(logMsgDBExecFailed, err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		s.logError(logMsgRowsAffectedFailed, err)
		return err
	}

	if rowsAffected == 0 {
		s.observeStaleCommit(position)
		return ErrStaleSequenceNumber
	}

	s.observeCommit(position, time.Since(start))

	return nil
}

// Load reads the committed position for the given key. The second return
// value reports whether a checkpoint exists.
func (s Store) Load(
	ctx context.Context,
	application string,
	streamName kinesis.StreamName,
	shardID kinesis.ShardID,
) (kinesis.SequenceNumber, bool, error) {

	var empty kinesis.SequenceNumber

	if application == "" {
		return empty, false, ErrEmptyApplication
	}

	sqlQuery, err := s.buildSelectQuery(application, streamName, shardID)
	if err != nil {
		s.logError(logMsgBuildSelectQueryFailed, err)
		return empty, false, err
	}

	var stored string

	scanErr := s.db.QueryRow(ctx, sqlQuery).Scan(&stored)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return empty, false, nil
	}

	if scanErr != nil {
		return empty, false, scanErr
	}

	sequenceNumber, err := kinesis.BuildSequenceNumber(stored)
	if err != nil {
		return empty, false, err
	}

	return sequenceNumber, true, nil
}

func (s Store) buildUpsertQuery(position Position) (string, error) {
	// The guard compares (length, value) tuples, which is exactly the
	// numeric ordering of decimal digit strings without leading zeros.
	guard := fmt.Sprintf(
		"(char_length(%s.%s), %s.%s) < (char_length(excluded.%s), excluded.%s)",
		s.tableName, colSequenceNumber, s.tableName, colSequenceNumber, colSequenceNumber, colSequenceNumber,
	)

	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(s.tableName).
		Rows(goqu.Record{
			colApplication:    position.Application,
			colStreamName:     position.StreamName.String(),
			colShardID:        position.ShardID.String(),
			colSequenceNumber: position.SequenceNumber.String(),
			colUpdatedAt:      goqu.L("now()"),
		}).
		OnConflict(goqu.DoUpdate(
			fmt.Sprintf("%s, %s, %s", colApplication, colStreamName, colShardID),
			goqu.Record{
				colSequenceNumber: position.SequenceNumber.String(),
				colUpdatedAt:      goqu.L("now()"),
			},
		).Where(goqu.L(guard)))

	sqlQuery, _, err := insertStmt.ToSQL()

	return sqlQuery, err
}

func (s Store) buildSelectQuery(
	application string,
	streamName kinesis.StreamName,
	shardID kinesis.ShardID,
) (string, error) {

	selectStmt := goqu.Dialect(dialectPostgres).
		From(s.tableName).
		Select(colSequenceNumber).
		Where(goqu.Ex{
			colApplication: application,
			colStreamName:  streamName.String(),
			colShardID:     shardID.String(),
		})

	sqlQuery, _, err := selectStmt.ToSQL()

	return sqlQuery, err
}

func (s Store) logError(msg string, err error) {
	if s.logger != nil {
		s.logger.Error(msg, logAttrError, err.Error())
	}
}

func (s Store) observeStaleCommit(position Position) {
	if s.logger != nil {
		s.logger.Info(logMsgStaleSequenceNumber,
			logAttrApplication, position.Application,
			logAttrStreamName, position.StreamName.String(),
			logAttrShardID, position.ShardID.String(),
			logAttrSequenceNumber, position.SequenceNumber.String(),
		)
	}

	if s.metricsCollector != nil {
		s.metricsCollector.IncrementCounter(staleCommitsMetric, map[string]string{
			logAttrApplication: position.Application,
			logAttrStreamName:  position.StreamName.String(),
		})
	}
}

func (s Store) observeCommit(position Position, duration time.Duration) {
	if s.logger != nil {
		s.logger.Debug(logMsgCheckpointCommitted,
			logAttrApplication, position.Application,
			logAttrStreamName, position.StreamName.String(),
			logAttrShardID, position.ShardID.String(),
			logAttrSequenceNumber, position.SequenceNumber.String(),
			logAttrDurationMS, duration.Milliseconds(),
		)
	}

	if s.metricsCollector != nil {
		s.metricsCollector.RecordDuration(commitDurationMetric, duration, map[string]string{
			logAttrApplication: position.Application,
			logAttrStreamName:  position.StreamName.String(),
		})
	}
}
