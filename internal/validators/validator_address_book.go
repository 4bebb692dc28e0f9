package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-address-book/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the display name of a contact. It must contain at
	// least one non-whitespace character.
	FieldName = "name"

	// FieldID targets the identifier of a stored contact.
	FieldID = "id"

	// FieldUsername targets the username of a login request.
	FieldUsername = "username"

	// FieldPassword targets the password of a login request.
	FieldPassword = "password"
)

// AddressBookValidator implements [Validator] for contact payloads, stored
// contacts and login credentials.
//
// Emails, phone and address are free-form and never rejected.
type AddressBookValidator struct{}

// NewAddressBookValidator constructs an [AddressBookValidator].
func NewAddressBookValidator() Validator {
	return &AddressBookValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted for:
//   - models.ContactRequest (default fields: name)
//   - models.Contact (default fields: id, name)
//   - models.Credentials (default fields: username, password)
//
// Returns ErrUnsupportedType for any other type.
func (v *AddressBookValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ContactRequest:
		return v.validateContactRequest(value, fields...)
	case *models.ContactRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateContactRequest(*value, fields...)
	case models.Contact:
		return v.validateContact(value, fields...)
	case *models.Contact:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateContact(*value, fields...)
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AddressBookValidator) validateContactRequest(request models.ContactRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(request.Name) {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AddressBookValidator) validateContact(contact models.Contact, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if contact.ID == "" {
				return ErrEmptyID
			}
		case FieldName:
			if isBlank(contact.Name) {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AddressBookValidator) validateCredentials(credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if credentials.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
