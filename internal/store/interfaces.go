package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-address-book/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ContactRepository owns the durable contact and email rows.
//
// Every write touches the contact row and its emails in one transaction:
// either all rows persist or none do.
type ContactRepository interface {
	// List returns every contact sorted by name, ties broken by id.
	List(ctx context.Context) ([]models.Contact, error)
	// Get returns the contact with id or [ErrContactNotFound].
	Get(ctx context.Context, id string) (models.Contact, error)
	// Search returns the contacts whose name, phone, address, legacy email or
	// any associated email contains query, case-insensitively. Each contact
	// appears once. query must be non-empty.
	Search(ctx context.Context, query string) ([]models.Contact, error)
	// Insert stores a new contact and its emails. A duplicate id yields
	// [ErrContactAlreadyExists].
	Insert(ctx context.Context, contact models.Contact) error
	// Replace overwrites the contact's fields and its whole email list.
	// An unknown id yields [ErrContactNotFound].
	Replace(ctx context.Context, contact models.Contact) error
	// Delete removes the contact; its emails go with it. An unknown id
	// yields [ErrContactNotFound].
	Delete(ctx context.Context, id string) error
}

// UserRepository stores login accounts.
type UserRepository interface {
	// CreateUserIfNotExists inserts user unless the username is taken.
	// created reports whether a row was written.
	CreateUserIfNotExists(ctx context.Context, user models.User) (created bool, err error)
	// FindUserByUsername returns the user or [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// ErrorClassificator inspects driver errors for a single SQL dialect.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed if retried.
	Classify(err error) ErrorClassification
	// Constraint reports which integrity constraint, if any, err violated.
	Constraint(err error) ConstraintViolation
}

// DBTX is the subset of database/sql used by the repositories.
// Both *sql.DB and *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
