// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages the command-line client
// prints when a command fails.
//
// Keeping them in one place ensures consistent wording across commands.
package app

const (
	// MsgInvalidLoginPassword is printed when the server rejects the
	// username/password pair given to login.
	MsgInvalidLoginPassword = "invalid username/password"

	// MsgTokenIsExpiredOrInvalid is printed when the stored session token is
	// rejected by the server.
	MsgTokenIsExpiredOrInvalid = "session is expired or invalid, run `login` again"

	// MsgContactNotFound is printed when get, update or delete target an id
	// the server does not know.
	MsgContactNotFound = "contact not found"

	// MsgContactConflict is printed when the server refuses a write that
	// conflicts with stored data.
	MsgContactConflict = "contact conflicts with stored data"

	// MsgInternalServerError is printed for failures the user cannot resolve.
	MsgInternalServerError = "internal server error, see the client log for details"
)
