package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-address-book/internal/adapter"
	"github.com/MKhiriev/go-address-book/internal/app"
	"github.com/MKhiriev/go-address-book/internal/config"
	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/internal/mock"
	"github.com/MKhiriev/go-address-book/models"
)

var ada = models.ContactResponse{
	ID:     "id-1",
	Name:   "Ada",
	Email:  "ada@x.com",
	Emails: []string{"ada@x.com", "a@x.com"},
	Phone:  "555",
}

type testApp struct {
	app     *App
	adapter *mock.MockAddressBookAdapter
	out     *bytes.Buffer
	copied  []string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)

	ta := &testApp{
		adapter: mock.NewMockAddressBookAdapter(ctrl),
		out:     &bytes.Buffer{},
	}
	cfg := &config.ClientConfig{SessionFile: filepath.Join(t.TempDir(), "session")}
	ta.app = NewApp(ta.adapter, cfg, ta.out, logger.Nop())
	ta.app.copyToClipboard = func(s string) error {
		ta.copied = append(ta.copied, s)
		return nil
	}
	return ta
}

// loggedIn stores a session token and expects the adapter to receive it.
func (ta *testApp) loggedIn(t *testing.T) {
	t.Helper()
	require.NoError(t, ta.app.session.Save("session-token"))
	ta.adapter.EXPECT().SetToken("session-token")
}

func TestLogin_SavesSession(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().Login(gomock.Any(), models.Credentials{Username: "admin", Password: "admin"}).
		Return(models.LoginResponse{Token: "tok", Username: "admin"}, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"login", "admin", "admin", "--copy"}))

	token, err := ta.app.session.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.Equal(t, []string{"tok"}, ta.copied)
	assert.Contains(t, ta.out.String(), "logged in as admin")
}

func TestLogin_Failure(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{}, adapter.ErrUnauthorized)

	err := ta.app.Run(context.Background(), []string{"login", "admin", "wrong"})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, app.MsgInvalidLoginPassword, UserMessage(err))

	_, err = ta.app.session.Load()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestCommandsRequireSession(t *testing.T) {
	for _, args := range [][]string{
		{"list"},
		{"get", "id-1"},
		{"add", "--name", "Ada"},
		{"update", "id-1", "--name", "Ada"},
		{"delete", "id-1"},
		{"search", "ada"},
	} {
		ta := newTestApp(t)
		err := ta.app.Run(context.Background(), args)
		assert.ErrorIs(t, err, ErrNotLoggedIn, args)
	}
}

func TestList(t *testing.T) {
	ta := newTestApp(t)
	ta.loggedIn(t)
	ta.adapter.EXPECT().ListContacts(gomock.Any()).Return([]models.ContactResponse{ada}, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"list"}))

	out := ta.out.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "ada@x.com, a@x.com")
}

func TestList_Empty(t *testing.T) {
	ta := newTestApp(t)
	ta.loggedIn(t)
	ta.adapter.EXPECT().ListContacts(gomock.Any()).Return([]models.ContactResponse{}, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"list"}))
	assert.Contains(t, ta.out.String(), "no contacts")
}

func TestAdd_RepeatedEmailFlags(t *testing.T) {
	ta := newTestApp(t)
	ta.loggedIn(t)
	ta.adapter.EXPECT().CreateContact(gomock.Any(), models.ContactRequest{
		Name:   "Ada",
		Emails: []string{"ada@x.com", "a@x.com"},
		Phone:  "555",
	}).Return(ada, nil)

	err := ta.app.Run(context.Background(), []string{
		"add", "--name", "Ada", "--email", "ada@x.com", "--email", "a@x.com", "--phone", "555",
	})
	require.NoError(t, err)
	assert.Contains(t, ta.out.String(), "id-1")
}

func TestUpdate(t *testing.T) {
	ta := newTestApp(t)
	ta.loggedIn(t)
	ta.adapter.EXPECT().UpdateContact(gomock.Any(), "id-1", models.ContactRequest{Name: "Ada L."}).
		Return(models.ContactResponse{ID: "id-1", Name: "Ada L.", Emails: []string{}}, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"update", "id-1", "--name", "Ada L."}))
	assert.Contains(t, ta.out.String(), "Ada L.")
}

func TestGetAndDelete(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().SetToken("session-token").Times(2)
	require.NoError(t, ta.app.session.Save("session-token"))

	ta.adapter.EXPECT().GetContact(gomock.Any(), "id-1").Return(ada, nil)
	ta.adapter.EXPECT().DeleteContact(gomock.Any(), "id-1").Return(nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"get", "id-1"}))
	assert.Contains(t, ta.out.String(), "a@x.com")

	require.NoError(t, ta.app.Run(context.Background(), []string{"delete", "id-1"}))
	assert.Contains(t, ta.out.String(), "contact id-1 deleted")
}

func TestDelete_NotFound(t *testing.T) {
	ta := newTestApp(t)
	ta.loggedIn(t)
	ta.adapter.EXPECT().DeleteContact(gomock.Any(), "nope").Return(adapter.ErrNotFound)

	err := ta.app.Run(context.Background(), []string{"delete", "nope"})
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestSearch_JoinsArguments(t *testing.T) {
	ta := newTestApp(t)
	ta.loggedIn(t)
	ta.adapter.EXPECT().SearchContacts(gomock.Any(), "ada lovelace").Return([]models.ContactResponse{}, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"search", "ada", "lovelace"}))
}

func TestSearch_BlankQuery(t *testing.T) {
	ta := newTestApp(t)

	err := ta.app.Run(context.Background(), []string{"search", "  "})
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestLogout(t *testing.T) {
	ta := newTestApp(t)
	require.NoError(t, ta.app.session.Save("session-token"))

	require.NoError(t, ta.app.Run(context.Background(), []string{"logout"}))
	_, err := ta.app.session.Load()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	// logging out twice is fine
	require.NoError(t, ta.app.Run(context.Background(), []string{"logout"}))
}

func TestVersion(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().Version(gomock.Any()).Return("v1.0.0", nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"version"}))
	assert.Contains(t, ta.out.String(), "v1.0.0")
}

func TestUnknownCommand(t *testing.T) {
	ta := newTestApp(t)
	assert.Error(t, ta.app.Run(context.Background(), []string{"frobnicate"}))
}

func TestSessionStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session")
	s := newSessionStore(path)

	_, err := s.Load()
	require.ErrorIs(t, err, ErrNotLoggedIn)

	require.NoError(t, s.Save("abc"))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	token, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))
	_, err = s.Load()
	assert.True(t, errors.Is(err, ErrNotLoggedIn))
}

func TestRedactArgs(t *testing.T) {
	args := []string{"login", "admin", "secret"}
	assert.Equal(t, []string{"login", "admin", "***"}, redactArgs(args))
	assert.Equal(t, "secret", args[2])
	assert.Equal(t, []string{"list"}, redactArgs([]string{"list"}))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: bad token", adapter.ErrUnauthorized), app.MsgTokenIsExpiredOrInvalid},
		{fmt.Errorf("%w: gone", adapter.ErrNotFound), app.MsgContactNotFound},
		{adapter.ErrConflict, app.MsgContactConflict},
		{adapter.ErrInternalServerError, app.MsgInternalServerError},
		{fmt.Errorf("%w: name is required (missing_name)", adapter.ErrBadRequest), "bad request: name is required (missing_name)"},
		{ErrNotLoggedIn, ErrNotLoggedIn.Error()},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, UserMessage(tt.err))
	}
}
