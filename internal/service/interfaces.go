package service

import (
	"context"

	"github.com/MKhiriev/go-address-book/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ContactService orchestrates contact operations: it normalizes request
// payloads, assigns identifiers and maps repository outcomes to the service
// error taxonomy.
type ContactService interface {
	ListContacts(ctx context.Context) ([]models.Contact, error)
	GetContact(ctx context.Context, id string) (models.Contact, error)
	CreateContact(ctx context.Context, request models.ContactRequest) (models.Contact, error)
	UpdateContact(ctx context.Context, id string, request models.ContactRequest) (models.Contact, error)
	DeleteContact(ctx context.Context, id string) error
	SearchContacts(ctx context.Context, query string) ([]models.Contact, error)
}

type AuthService interface {
	SeedDefaultUser(ctx context.Context) error
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
