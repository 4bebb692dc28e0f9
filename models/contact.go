// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Contact is the canonical, storage-facing representation of an address book
// entry. Emails is the single source of truth for the addresses of a contact;
// the legacy scalar e-mail is derived from it at the presentation boundary
// (see [Contact.PrimaryEmail] and [NewContactResponse]).
type Contact struct {
	// ID is the opaque, immutable identifier assigned on creation.
	ID string

	// Name is the display name of the contact. Required, non-empty.
	Name string

	// Phone is an optional free-form phone number.
	Phone string

	// Address is an optional free-form postal address.
	Address string

	// Emails holds every address of the contact in insertion order.
	// The first element is the primary email.
	Emails []string

	// LegacyEmail is the value of the scalar "email" column kept for rows
	// written before multi-email support existed. It is only consulted when
	// Emails is empty.
	LegacyEmail string
}

// PrimaryEmail returns the first email of the contact or, when the contact has
// no associated emails, the legacy scalar value (possibly empty).
func (c Contact) PrimaryEmail() string {
	if len(c.Emails) > 0 {
		return c.Emails[0]
	}

	return c.LegacyEmail
}

// ContactRequest is the payload accepted by the create and update endpoints.
//
// Clients may send either the "emails" list or the legacy singular "email"
// field; the service layer reconciles both into a single list.
type ContactRequest struct {
	Name    string   `json:"name"`
	Email   string   `json:"email,omitempty"`
	Emails  []string `json:"emails,omitempty"`
	Phone   string   `json:"phone,omitempty"`
	Address string   `json:"address,omitempty"`
}

// ContactResponse is the wire shape of a contact. Email always equals the
// primary email so that clients unaware of multi-email support keep working.
type ContactResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Emails  []string `json:"emails"`
	Phone   string   `json:"phone"`
	Address string   `json:"address"`
}

// NewContactResponse shapes c for transport. Emails is never nil so that it is
// encoded as [] rather than null.
func NewContactResponse(c Contact) ContactResponse {
	emails := make([]string, len(c.Emails))
	copy(emails, c.Emails)

	return ContactResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.PrimaryEmail(),
		Emails:  emails,
		Phone:   c.Phone,
		Address: c.Address,
	}
}

// NewContactResponses shapes a list of contacts. The result is never nil.
func NewContactResponses(contacts []Contact) []ContactResponse {
	responses := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		responses = append(responses, NewContactResponse(c))
	}

	return responses
}
