package client

import "errors"

var (
	ErrNotLoggedIn = errors.New("not logged in: run `login` first")
	ErrEmptyQuery  = errors.New("search query is empty")

	// ErrLoginRejected marks an unauthorized answer to login itself, as
	// opposed to a rejected session token.
	ErrLoginRejected = errors.New("login rejected")
)
