package client

import (
	"context"
	"fmt"
	"io"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-address-book/internal/adapter"
	"github.com/MKhiriev/go-address-book/internal/config"
	"github.com/MKhiriev/go-address-book/internal/logger"
)

type App struct {
	adapter adapter.AddressBookAdapter
	session *sessionStore

	out io.Writer
	// copyToClipboard is swapped out in tests.
	copyToClipboard func(string) error

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.AddressBookAdapter, cfg *config.ClientConfig, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter:         serverAdapter,
		session:         newSessionStore(cfg.SessionFile),
		out:             out,
		copyToClipboard: clipboard.WriteAll,
		logger:          logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.out)

	if err := root.ExecuteContext(ctx); err != nil {
		a.logger.Err(err).Strs("args", redactArgs(args)).Msg("command failed")
		return err
	}
	return nil
}

// restoreSession hands the saved token to the adapter.
func (a *App) restoreSession() error {
	token, err := a.session.Load()
	if err != nil {
		return err
	}

	a.adapter.SetToken(token)
	return nil
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

// redactArgs drops the password positional of "login" before logging.
func redactArgs(args []string) []string {
	redacted := make([]string, len(args))
	copy(redacted, args)
	if len(redacted) >= 3 && redacted[0] == "login" {
		redacted[2] = "***"
	}
	return redacted
}
