// Package migrations holds the embedded goose schema migrations for the
// address book and helpers to apply or roll them back.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

var errNilDB = errors.New("db is nil")

func dialectFor(driver string) (goose.Dialect, error) {
	switch driver {
	case "sqlite3":
		return goose.DialectSQLite3, nil
	case "pgx":
		return goose.DialectPostgres, nil
	default:
		return "", fmt.Errorf("unsupported driver %q", driver)
	}
}

func newProvider(db *sql.DB, driver string) (*goose.Provider, error) {
	if db == nil {
		return nil, errNilDB
	}

	dialect, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}

	return goose.NewProvider(dialect, db, embedMigrations)
}

// Migrate applies every pending migration. It is safe to call on each start:
// an up-to-date schema is left untouched and tables written by older
// releases are upgraded in place.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	provider, err := newProvider(db, driver)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Reset rolls every migration back and applies them again, leaving an empty
// schema at the latest version.
func Reset(ctx context.Context, db *sql.DB, driver string) error {
	provider, err := newProvider(db, driver)
	if err != nil {
		return fmt.Errorf("reset error: %w", err)
	}

	if _, err := provider.DownTo(ctx, 0); err != nil {
		return fmt.Errorf("reset error rolling back: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("reset error re-applying: %w", err)
	}

	return nil
}

// Version reports the schema version currently recorded in db.
func Version(ctx context.Context, db *sql.DB, driver string) (int64, error) {
	provider, err := newProvider(db, driver)
	if err != nil {
		return 0, err
	}

	return provider.GetDBVersion(ctx)
}
