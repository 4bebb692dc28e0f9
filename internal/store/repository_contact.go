package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/models"
)

// contactRepository is the SQL implementation of [ContactRepository] over
// the "contacts" and "contact_emails" tables.
//
// Reads run inside a transaction too, so a contact and its emails always come
// from the same snapshot.
type contactRepository struct {
	*DB
	logger *logger.Logger
}

// NewContactRepository constructs a [ContactRepository] backed by db.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *contactRepository) List(ctx context.Context) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	var contacts []models.Contact
	err := r.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		query, args, err := r.buildSelectContactsQuery()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		contacts, err = r.queryContacts(ctx, tx, query, args, false)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "contactRepository.List").Msg("failed to list contacts")
		return nil, err
	}

	sortContacts(contacts)
	return contacts, nil
}

func (r *contactRepository) Get(ctx context.Context, id string) (models.Contact, error) {
	log := logger.FromContext(ctx)

	var contacts []models.Contact
	err := r.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		query, args, err := r.buildSelectContactQuery(id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		contacts, err = r.queryContacts(ctx, tx, query, args, true)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "contactRepository.Get").Str("id", id).Msg("failed to get contact")
		return models.Contact{}, err
	}

	if len(contacts) == 0 {
		return models.Contact{}, ErrContactNotFound
	}

	return contacts[0], nil
}

func (r *contactRepository) Search(ctx context.Context, query string) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	var contacts []models.Contact
	err := r.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		sqlQuery, args, err := r.buildSearchContactsQuery(query)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		contacts, err = r.queryContacts(ctx, tx, sqlQuery, args, true)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "contactRepository.Search").Msg("failed to search contacts")
		return nil, err
	}

	sortContacts(contacts)
	return contacts, nil
}

func (r *contactRepository) Insert(ctx context.Context, contact models.Contact) error {
	log := logger.FromContext(ctx)

	err := r.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		query, args, err := r.buildInsertContactQuery(contact)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			if constraintErr := r.constraintError(err, ErrContactAlreadyExists); constraintErr != nil {
				return constraintErr
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return r.insertEmails(ctx, tx, contact.ID, contact.Emails)
	})
	if err != nil {
		log.Err(err).Str("func", "contactRepository.Insert").Str("id", contact.ID).Msg("failed to insert contact")
		return err
	}

	return nil
}

func (r *contactRepository) Replace(ctx context.Context, contact models.Contact) error {
	log := logger.FromContext(ctx)

	err := r.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		query, args, err := r.buildUpdateContactQuery(contact)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err = r.execAffectingOne(ctx, tx, query, args); err != nil {
			return err
		}

		query, args, err = r.buildDeleteEmailsQuery(contact.ID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return r.insertEmails(ctx, tx, contact.ID, contact.Emails)
	})
	if err != nil {
		log.Err(err).Str("func", "contactRepository.Replace").Str("id", contact.ID).Msg("failed to replace contact")
		return err
	}

	return nil
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	err := r.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		query, args, err := r.buildDeleteContactQuery(id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		// emails are removed by ON DELETE CASCADE
		return r.execAffectingOne(ctx, tx, query, args)
	})
	if err != nil {
		log.Err(err).Str("func", "contactRepository.Delete").Str("id", id).Msg("failed to delete contact")
		return err
	}

	return nil
}

// execAffectingOne runs an UPDATE or DELETE keyed by contact id and reports
// [ErrContactNotFound] when no row matched.
func (r *contactRepository) execAffectingOne(ctx context.Context, tx DBTX, query string, args []any) error {
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		if constraintErr := r.constraintError(err, ErrIntegrityViolation); constraintErr != nil {
			return constraintErr
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

func (r *contactRepository) insertEmails(ctx context.Context, tx DBTX, contactID string, emails []string) error {
	if len(emails) == 0 {
		return nil
	}

	query, args, err := r.buildInsertEmailsQuery(contactID, emails)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		if constraintErr := r.constraintError(err, ErrIntegrityViolation); constraintErr != nil {
			return constraintErr
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// queryContacts runs a contacts SELECT and attaches each contact's emails.
// With filterEmails the emails are loaded only for the returned ids,
// otherwise the whole emails table is read.
func (r *contactRepository) queryContacts(ctx context.Context, tx DBTX, query string, args []any, filterEmails bool) ([]models.Contact, error) {
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0, 16)
	for rows.Next() {
		var c models.Contact
		if err = rows.Scan(&c.ID, &c.Name, &c.LegacyEmail, &c.Phone, &c.Address); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		contacts = append(contacts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	rows.Close()

	if len(contacts) == 0 {
		return contacts, nil
	}

	var ids []string
	if filterEmails {
		ids = make([]string, len(contacts))
		for i, c := range contacts {
			ids[i] = c.ID
		}
	}

	emails, err := r.loadEmails(ctx, tx, ids)
	if err != nil {
		return nil, err
	}

	for i := range contacts {
		contacts[i].Emails = emails[contacts[i].ID]
		if contacts[i].Emails == nil {
			contacts[i].Emails = []string{}
		}
	}

	return contacts, nil
}

func (r *contactRepository) loadEmails(ctx context.Context, tx DBTX, ids []string) (map[string][]string, error) {
	query, args, err := r.buildSelectEmailsQuery(ids...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	emails := make(map[string][]string)
	for rows.Next() {
		var contactID, email string
		if err = rows.Scan(&contactID, &email); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		emails[contactID] = append(emails[contactID], email)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return emails, nil
}

// sortContacts orders by name compared byte-wise, then by id.
func sortContacts(contacts []models.Contact) {
	slices.SortFunc(contacts, func(a, b models.Contact) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
}
