package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-address-book/internal/config"
	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/internal/utils"
	"github.com/MKhiriev/go-address-book/models"
)

const (
	apiPrefix    = "/api"
	contactsPath = apiPrefix + "/contacts"
)

type httpAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAdapter constructs the HTTP/REST implementation of
// [AddressBookAdapter]. It normalises the base URL from cfg.HTTPAddress: a
// missing scheme defaults to http and trailing slashes are dropped.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a URL.
func NewHTTPAdapter(cfg config.ClientAdapter, logger *logger.Logger) (AddressBookAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login POSTs credentials to /api/auth/login. The token is taken from the
// Authorization response header, falling back to the body.
func (h *httpAdapter) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	var loginResponse models.LoginResponse

	resp, err := h.request(ctx).
		SetBody(credentials).
		SetResult(&loginResponse).
		Post(apiPrefix + "/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	if token, parseErr := utils.ParseBearerToken(resp.Header().Get("Authorization")); parseErr == nil {
		loginResponse.Token = token
	}
	if loginResponse.Token == "" {
		return models.LoginResponse{}, fmt.Errorf("login response carries no token")
	}

	h.SetToken(loginResponse.Token)
	h.logger.Debug().Str("username", loginResponse.Username).Msg("logged in")
	return loginResponse, nil
}

func (h *httpAdapter) ListContacts(ctx context.Context) ([]models.ContactResponse, error) {
	var contacts []models.ContactResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&contacts).
		Get(contactsPath)
	if err != nil {
		return nil, fmt.Errorf("list contacts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return nonNil(contacts), nil
}

func (h *httpAdapter) GetContact(ctx context.Context, id string) (models.ContactResponse, error) {
	var contact models.ContactResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&contact).
		Get(contactsPath + "/{id}")
	if err != nil {
		return models.ContactResponse{}, fmt.Errorf("get contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ContactResponse{}, err
	}

	return contact, nil
}

func (h *httpAdapter) CreateContact(ctx context.Context, request models.ContactRequest) (models.ContactResponse, error) {
	var contact models.ContactResponse

	resp, err := h.authedRequest(ctx).
		SetBody(request).
		SetResult(&contact).
		Post(contactsPath)
	if err != nil {
		return models.ContactResponse{}, fmt.Errorf("create contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ContactResponse{}, err
	}

	return contact, nil
}

func (h *httpAdapter) UpdateContact(ctx context.Context, id string, request models.ContactRequest) (models.ContactResponse, error) {
	var contact models.ContactResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetBody(request).
		SetResult(&contact).
		Put(contactsPath + "/{id}")
	if err != nil {
		return models.ContactResponse{}, fmt.Errorf("update contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ContactResponse{}, err
	}

	return contact, nil
}

func (h *httpAdapter) DeleteContact(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete(contactsPath + "/{id}")
	if err != nil {
		return fmt.Errorf("delete contact request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAdapter) SearchContacts(ctx context.Context, query string) ([]models.ContactResponse, error) {
	var contacts []models.ContactResponse

	resp, err := h.authedRequest(ctx).
		SetQueryParam("q", query).
		SetResult(&contacts).
		Get(contactsPath + "/search")
	if err != nil {
		return nil, fmt.Errorf("search contacts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return nonNil(contacts), nil
}

func (h *httpAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).
		SetHeader("Accept", "text/plain").
		Get(apiPrefix + "/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetError(&models.ErrorResponse{})
}

func (h *httpAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func nonNil(contacts []models.ContactResponse) []models.ContactResponse {
	if contacts == nil {
		return []models.ContactResponse{}
	}
	return contacts
}
