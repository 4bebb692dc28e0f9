package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-address-book/internal/validators"
	"github.com/MKhiriev/go-address-book/models"
)

// ContactServiceWrapper defines middleware composition for ContactService.
// Implementations wrap an existing ContactService to add behavior such as
// validation.
type ContactServiceWrapper interface {
	Wrap(ContactService) ContactService
}

// ContactValidationService rejects invalid payloads before they reach the
// wrapped ContactService, so no repository call is made for them.
type ContactValidationService struct {
	inner     ContactService
	validator validators.Validator
}

func NewContactValidationService() ContactServiceWrapper {
	return &ContactValidationService{
		validator: validators.NewAddressBookValidator(),
	}
}

func (v *ContactValidationService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return v.inner.ListContacts(ctx)
}

func (v *ContactValidationService) GetContact(ctx context.Context, id string) (models.Contact, error) {
	return v.inner.GetContact(ctx, id)
}

func (v *ContactValidationService) CreateContact(ctx context.Context, request models.ContactRequest) (models.Contact, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.CreateContact(ctx, request)
}

func (v *ContactValidationService) UpdateContact(ctx context.Context, id string, request models.ContactRequest) (models.Contact, error) {
	if err := v.validator.Validate(ctx, models.Contact{ID: id}, validators.FieldID); err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.UpdateContact(ctx, id, request)
}

func (v *ContactValidationService) DeleteContact(ctx context.Context, id string) error {
	return v.inner.DeleteContact(ctx, id)
}

func (v *ContactValidationService) SearchContacts(ctx context.Context, query string) ([]models.Contact, error) {
	return v.inner.SearchContacts(ctx, query)
}

func (v *ContactValidationService) Wrap(wrapped ContactService) ContactService {
	v.inner = wrapped
	return v
}
