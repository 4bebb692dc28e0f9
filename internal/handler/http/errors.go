// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/internal/service"
	"github.com/MKhiriev/go-address-book/internal/utils"
	"github.com/MKhiriev/go-address-book/internal/validators"
	"github.com/MKhiriev/go-address-book/models"
)

// Transport-level sentinel errors. Callers can match against them with
// [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidCredentials replaces both login failures when credential
	// errors are hidden.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// errorStatus is the HTTP status and stable machine-readable reason reported
// for a sentinel error.
type errorStatus struct {
	target error
	status int
	reason string
}

// errorStatusMap is scanned in order and the first sentinel matched with
// [errors.Is] wins, so field-specific validation errors precede the generic
// service.ErrValidation that wraps them.
var errorStatusMap = []errorStatus{
	{validators.ErrEmptyName, http.StatusBadRequest, "missing_name"},
	{validators.ErrEmptyID, http.StatusBadRequest, "missing_id"},
	{validators.ErrEmptyUsername, http.StatusBadRequest, "missing_username"},
	{validators.ErrEmptyPassword, http.StatusBadRequest, "missing_password"},
	{service.ErrValidation, http.StatusBadRequest, "validation_error"},
	{utils.ErrEmptyBody, http.StatusBadRequest, "empty_body"},
	{ErrInvalidJSON, http.StatusBadRequest, "invalid_json"},

	{service.ErrContactNotFound, http.StatusNotFound, "contact_not_found"},
	{service.ErrContactConflict, http.StatusConflict, "conflict"},

	{ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{service.ErrUsernameNotFound, http.StatusUnauthorized, "username_not_found"},
	{service.ErrIncorrectPassword, http.StatusUnauthorized, "incorrect_password"},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, "missing_token"},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, "invalid_authorization_header"},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "invalid_token"},

	{ErrRouteNotFound, http.StatusNotFound, "not_found"},
	{ErrMethodNotAllowed, http.StatusMethodNotAllowed, "method_not_allowed"},

	{service.ErrTokenCreationFailed, http.StatusInternalServerError, "token_creation_failed"},
	{service.ErrStorage, http.StatusInternalServerError, "storage_error"},
}

var internalError = errorStatus{
	target: errors.New(http.StatusText(http.StatusInternalServerError)),
	status: http.StatusInternalServerError,
	reason: "internal_error",
}

func statusFromError(err error) errorStatus {
	for _, s := range errorStatusMap {
		if errors.Is(err, s.target) {
			return s
		}
	}
	return internalError
}

// writeError answers with the structured error body for err. The message is
// the text of the matched sentinel, never the wrapped internal error, unless
// error details are exposed.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	s := statusFromError(err)
	if s.status >= http.StatusInternalServerError {
		log.Err(err).Str("reason", s.reason).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("reason", s.reason).Msg("request rejected")
	}

	response := models.ErrorResponse{
		Error:  s.target.Error(),
		Reason: s.reason,
	}
	if h.exposeErrorDetails {
		response.Detail = err.Error()
	}

	utils.WriteJSON(w, response, s.status)
}
