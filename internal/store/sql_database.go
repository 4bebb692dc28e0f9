package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-address-book/internal/config"
	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/migrations"
)

const (
	defaultTxRetries   = 3
	defaultTxRetryBase = 20 * time.Millisecond
)

// DB is a database handle bound to one SQL dialect. It carries the squirrel
// statement builder with the dialect's placeholder format and the classifier
// for the dialect's driver errors.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	txRetries   uint64
	txRetryBase time.Duration
}

func newDB(conn *sql.DB, driver string, placeholder sq.PlaceholderFormat, classificator ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
		txRetries:          defaultTxRetries,
		txRetryBase:        defaultTxRetryBase,
	}
}

// NewConnect opens the database named by cfg using the driver-specific
// constructor.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Driver returns the database/sql driver name the handle was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver)
}

// Reset drops and recreates the schema.
func (db *DB) Reset(ctx context.Context) error {
	return migrations.Reset(ctx, db.DB, db.driver)
}

// WithTx runs fn inside a transaction, committing on success and rolling
// back on error or panic.
//
// When the dialect classifier marks the failure as transient (lock contention,
// serialization failure, dropped connection) the whole transaction is run
// again with exponential backoff, up to txRetries extra attempts. fn must
// therefore be safe to repeat.
func (db *DB) WithTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	backoff := retry.WithMaxRetries(db.txRetries, retry.NewExponential(db.txRetryBase))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := db.runTx(ctx, fn)
		if err == nil {
			return nil
		}

		if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "DB.WithTx").
				Int("attempt", attempt).
				Msg("transient database error, retrying transaction")
			return retry.RetryableError(err)
		}

		return err
	})
}

func (db *DB) runTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.FromContext(ctx).Err(rbErr).Str("func", "DB.runTx").Msg("rollback failed")
			}
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// constraintError maps a constraint violation reported by the driver to a
// repository sentinel. onUnique is used for primary key and unique
// violations. It returns nil if err is not a constraint violation.
func (db *DB) constraintError(err error, onUnique error) error {
	if db.errorClassificator == nil {
		return nil
	}

	switch db.errorClassificator.Constraint(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", onUnique, err)
	case ForeignKeyViolation, OtherConstraintViolation:
		return fmt.Errorf("%w: %w", ErrIntegrityViolation, err)
	default:
		return nil
	}
}
