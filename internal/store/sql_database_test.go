package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-address-book/internal/config"
	"github.com/MKhiriev/go-address-book/internal/logger"
)

func TestWithTx_GivesUpAfterMaxRetries(t *testing.T) {
	db, mock := newMockDB(t)
	db.txRetries = 2

	for range 3 {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE").WillReturnError(pgError(pgerrcode.SerializationFailure))
		mock.ExpectRollback()
	}

	attempts := 0
	err := db.WithTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		attempts++
		_, err := tx.ExecContext(ctx, "UPDATE contacts SET name = 'x'")
		return err
	})

	require.Error(t, err)
	assert.Equal(t, 3, attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = db.WithTx(context.Background(), func(ctx context.Context, tx DBTX) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_CommitFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	err := db.WithTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		return nil
	})
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{DSN: "x", Driver: "mysql"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "book.db?"+sqliteConnParams, sqliteDSN("book.db"))
	assert.Equal(t, "file:book.db?cache=shared&"+sqliteConnParams, sqliteDSN("file:book.db?cache=shared"))

	assert.True(t, isInMemorySQLite(":memory:"))
	assert.True(t, isInMemorySQLite("file:x?mode=memory"))
	assert.False(t, isInMemorySQLite("book.db"))
}

func TestStorages_SQLite(t *testing.T) {
	ctx := context.Background()
	dsn := t.TempDir() + "/book.db"

	s, err := NewStorages(ctx, config.DB{DSN: dsn, Driver: config.DriverSQLite}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Ping(ctx))

	contacts, err := s.ContactRepository.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}
