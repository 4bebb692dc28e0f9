package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-address-book/models"
)

const (
	contactsTable      = "contacts"
	contactEmailsTable = "contact_emails"
	usersTable         = "users"

	likeEscape = `\`
)

var contactColumns = []string{"c.id", "c.name", "c.email", "c.phone", "c.address"}

func (db *DB) buildSelectContactsQuery() (string, []any, error) {
	return db.builder.
		Select(contactColumns...).
		From(contactsTable + " c").
		ToSql()
}

func (db *DB) buildSelectContactQuery(id string) (string, []any, error) {
	return db.builder.
		Select(contactColumns...).
		From(contactsTable + " c").
		Where(sq.Eq{"c.id": id}).
		ToSql()
}

// buildSearchContactsQuery matches the lowercased, LIKE-escaped query against
// every text column of the contact and, through EXISTS, against its emails,
// so a contact with several matching emails is returned once.
func (db *DB) buildSearchContactsQuery(query string) (string, []any, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	like := func(column string) sq.Sqlizer {
		return sq.Expr("LOWER("+column+") LIKE ? ESCAPE '"+likeEscape+"'", pattern)
	}

	// built with "?" so the outer builder numbers every placeholder once
	emailMatch := sq.
		Select("1").
		From(contactEmailsTable + " e").
		Where("e.contact_id = c.id").
		Where(like("e.email"))

	emailSQL, emailArgs, err := emailMatch.ToSql()
	if err != nil {
		return "", nil, err
	}

	return db.builder.
		Select(contactColumns...).
		From(contactsTable + " c").
		Where(sq.Or{
			like("c.name"),
			like("c.phone"),
			like("c.address"),
			like("c.email"),
			sq.Expr("EXISTS ("+emailSQL+")", emailArgs...),
		}).
		ToSql()
}

// buildSelectEmailsQuery loads emails ordered by position. With no ids it
// loads the emails of every contact.
func (db *DB) buildSelectEmailsQuery(ids ...string) (string, []any, error) {
	query := db.builder.
		Select("contact_id", "email").
		From(contactEmailsTable).
		OrderBy("contact_id", "position")

	if len(ids) > 0 {
		query = query.Where(sq.Eq{"contact_id": ids})
	}

	return query.ToSql()
}

func (db *DB) buildInsertContactQuery(contact models.Contact) (string, []any, error) {
	return db.builder.
		Insert(contactsTable).
		Columns("id", "name", "email", "phone", "address").
		Values(contact.ID, contact.Name, contact.PrimaryEmail(), contact.Phone, contact.Address).
		ToSql()
}

func (db *DB) buildUpdateContactQuery(contact models.Contact) (string, []any, error) {
	return db.builder.
		Update(contactsTable).
		Set("name", contact.Name).
		Set("email", contact.PrimaryEmail()).
		Set("phone", contact.Phone).
		Set("address", contact.Address).
		Where(sq.Eq{"id": contact.ID}).
		ToSql()
}

func (db *DB) buildDeleteContactQuery(id string) (string, []any, error) {
	return db.builder.
		Delete(contactsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildDeleteEmailsQuery(contactID string) (string, []any, error) {
	return db.builder.
		Delete(contactEmailsTable).
		Where(sq.Eq{"contact_id": contactID}).
		ToSql()
}

// buildInsertEmailsQuery writes all emails in one statement, numbering them
// by their position in the list.
func (db *DB) buildInsertEmailsQuery(contactID string, emails []string) (string, []any, error) {
	query := db.builder.
		Insert(contactEmailsTable).
		Columns("contact_id", "position", "email")

	for position, email := range emails {
		query = query.Values(contactID, position, email)
	}

	return query.ToSql()
}

func (db *DB) buildInsertUserIfNotExistsQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns("username", "password_hash").
		Values(user.Username, user.PasswordHash).
		Suffix("ON CONFLICT (username) DO NOTHING").
		ToSql()
}

func (db *DB) buildSelectUserQuery(username string) (string, []any, error) {
	return db.builder.
		Select("username", "password_hash", "created_at").
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

var likeReplacer = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// escapeLike makes %, _ and the escape character match literally.
func escapeLike(s string) string {
	return likeReplacer.Replace(s)
}
