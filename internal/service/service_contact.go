package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/internal/store"
	"github.com/MKhiriev/go-address-book/internal/utils"
	"github.com/MKhiriev/go-address-book/models"
)

type contactService struct {
	contactRepository store.ContactRepository
	idGenerator       utils.IDGenerator

	logger *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, idGenerator utils.IDGenerator, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		idGenerator:       idGenerator,
		logger:            logger,
	}
}

func (s *contactService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.contactRepository.List(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return contacts, nil
}

func (s *contactService) GetContact(ctx context.Context, id string) (models.Contact, error) {
	contact, err := s.contactRepository.Get(ctx, id)
	if err != nil {
		return models.Contact{}, mapRepositoryError(err)
	}

	return contact, nil
}

// CreateContact assigns a fresh id and stores the contact with its emails in
// one write.
func (s *contactService) CreateContact(ctx context.Context, request models.ContactRequest) (models.Contact, error) {
	contact := contactFromRequest(s.idGenerator.Generate(), request)

	if err := s.contactRepository.Insert(ctx, contact); err != nil {
		return models.Contact{}, mapRepositoryError(err)
	}

	logger.FromContext(ctx).Info().Str("id", contact.ID).Int("emails", len(contact.Emails)).Msg("contact created")
	return contact, nil
}

// UpdateContact overwrites the contact's fields and replaces its whole email
// list. Emails missing from the request are dropped.
func (s *contactService) UpdateContact(ctx context.Context, id string, request models.ContactRequest) (models.Contact, error) {
	contact := contactFromRequest(id, request)

	if err := s.contactRepository.Replace(ctx, contact); err != nil {
		return models.Contact{}, mapRepositoryError(err)
	}

	logger.FromContext(ctx).Info().Str("id", contact.ID).Int("emails", len(contact.Emails)).Msg("contact updated")
	return contact, nil
}

func (s *contactService) DeleteContact(ctx context.Context, id string) error {
	if err := s.contactRepository.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	logger.FromContext(ctx).Info().Str("id", id).Msg("contact deleted")
	return nil
}

// SearchContacts returns the contacts matching query. A blank query matches
// nothing rather than everything.
func (s *contactService) SearchContacts(ctx context.Context, query string) ([]models.Contact, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Contact{}, nil
	}

	contacts, err := s.contactRepository.Search(ctx, query)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return contacts, nil
}

// contactFromRequest reconciles the legacy single "email" field with the
// "emails" list: the scalar is used only when the list is empty.
func contactFromRequest(id string, request models.ContactRequest) models.Contact {
	emails := make([]string, 0, len(request.Emails))
	switch {
	case len(request.Emails) > 0:
		emails = append(emails, request.Emails...)
	case request.Email != "":
		emails = append(emails, request.Email)
	}

	contact := models.Contact{
		ID:      id,
		Name:    request.Name,
		Phone:   request.Phone,
		Address: request.Address,
		Emails:  emails,
	}
	contact.LegacyEmail = contact.PrimaryEmail()

	return contact
}

func mapRepositoryError(err error) error {
	switch {
	case errors.Is(err, store.ErrContactNotFound):
		return ErrContactNotFound
	case errors.Is(err, store.ErrContactAlreadyExists), errors.Is(err, store.ErrIntegrityViolation):
		return fmt.Errorf("%w: %w", ErrContactConflict, err)
	default:
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
}
