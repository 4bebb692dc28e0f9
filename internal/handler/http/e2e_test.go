package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-address-book/internal/config"
	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/internal/service"
	"github.com/MKhiriev/go-address-book/internal/store"
	"github.com/MKhiriev/go-address-book/models"
)

// newAddressBookServer wires the real services over a fresh SQLite file.
func newAddressBookServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:     "e2e-sign-key",
			TokenAlgorithm:   config.DefaultTokenAlgorithm,
			TokenIssuer:      config.DefaultTokenIssuer,
			TokenDuration:    time.Hour,
			PasswordHashCost: bcrypt.MinCost,
			DefaultUsername:  config.DefaultUsername,
			DefaultPassword:  config.DefaultPassword,
		},
		Storage: config.Storage{DB: config.DB{
			Driver: config.DriverSQLite,
			DSN:    filepath.Join(t.TempDir(), "book.db"),
		}},
		Server: config.Server{RequestTimeout: 5 * time.Second, CORSAllowedOrigins: []string{"*"}},
	}

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services := service.NewServices(storages, cfg, models.NewAppBuildInfo("v0.0.1", "", ""), logger.Nop())
	require.NoError(t, services.AuthService.SeedDefaultUser(ctx))

	server := httptest.NewServer(NewHandler(services, cfg, logger.Nop()).Init())
	t.Cleanup(server.Close)
	return server
}

func call(t *testing.T, server *httptest.Server, method, path, token, body string, out any) int {
	t.Helper()

	req, err := http.NewRequest(method, server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestAddressBook_EndToEnd(t *testing.T) {
	server := newAddressBookServer(t)

	var login models.LoginResponse
	status := call(t, server, http.MethodPost, "/auth/login", "", `{"username":"admin","password":"admin"}`, &login)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, login.Token)
	token := login.Token

	var created models.ContactResponse
	status = call(t, server, http.MethodPost, "/contacts", token,
		`{"name":"Ada","emails":["ada@x.com","a@x.com"],"phone":"555"}`, &created)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "ada@x.com", created.Email)
	assert.Equal(t, []string{"ada@x.com", "a@x.com"}, created.Emails)

	var found []models.ContactResponse
	status = call(t, server, http.MethodGet, "/contacts/search?q=A@X.COM", token, "", &found)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, found, 1)
	assert.Equal(t, created.ID, found[0].ID)

	var updated models.ContactResponse
	status = call(t, server, http.MethodPut, "/api/contacts/"+created.ID, token, `{"name":"Ada L.","email":"lovelace@x.com"}`, &updated)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"lovelace@x.com"}, updated.Emails)

	var fetched models.ContactResponse
	status = call(t, server, http.MethodGet, "/contacts/"+created.ID, token, "", &fetched)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, updated, fetched)

	var deleted models.MessageResponse
	status = call(t, server, http.MethodDelete, "/contacts/"+created.ID, token, "", &deleted)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Contact deleted", deleted.Message)

	found = nil
	status = call(t, server, http.MethodGet, "/contacts/search?q=ada", token, "", &found)
	require.Equal(t, http.StatusOK, status)
	assert.NotNil(t, found)
	assert.Empty(t, found)

	var missing models.ErrorResponse
	status = call(t, server, http.MethodDelete, "/contacts/"+created.ID, token, "", &missing)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "contact_not_found", missing.Reason)
}

func TestAddressBook_RejectsBadLogin(t *testing.T) {
	server := newAddressBookServer(t)

	var resp models.ErrorResponse
	status := call(t, server, http.MethodPost, "/auth/login", "", `{"username":"admin","password":"nope"}`, &resp)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "incorrect_password", resp.Reason)

	status = call(t, server, http.MethodGet, "/contacts", "not-a-jwt", "", &resp)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "invalid_token", resp.Reason)
}
