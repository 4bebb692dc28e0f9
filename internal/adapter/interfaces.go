// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for talking to the
// address book server.
//
// The primary abstraction is [AddressBookAdapter], which decouples the
// command-line client from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-address-book/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AddressBookAdapter defines communication with the address book server.
// Implementations are responsible for serialisation, authentication header
// management and mapping transport-level errors to the sentinel values
// defined in this package.
type AddressBookAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none has been set.
	Token() string

	// Login exchanges credentials for a session token. On success the token
	// is stored via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)

	ListContacts(ctx context.Context) ([]models.ContactResponse, error)
	GetContact(ctx context.Context, id string) (models.ContactResponse, error)
	CreateContact(ctx context.Context, request models.ContactRequest) (models.ContactResponse, error)
	UpdateContact(ctx context.Context, id string, request models.ContactRequest) (models.ContactResponse, error)
	DeleteContact(ctx context.Context, id string) error
	SearchContacts(ctx context.Context, query string) ([]models.ContactResponse, error)

	// Version returns the server's reported version string.
	Version(ctx context.Context) (string, error)
}
