package service

import "errors"

var (
	// ErrValidation wraps every payload rejection. The wrapped validator
	// error names the offending field.
	ErrValidation = errors.New("validation error")

	ErrContactNotFound = errors.New("contact not found")
	// ErrContactConflict is returned for a duplicate id or a broken
	// integrity constraint.
	ErrContactConflict = errors.New("contact conflicts with stored data")

	ErrUsernameNotFound  = errors.New("username not found")
	ErrIncorrectPassword = errors.New("incorrect password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrStorage is returned for any repository failure the service does not
	// recognise.
	ErrStorage = errors.New("storage error")
)
