package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/internal/service"
	"github.com/MKhiriev/go-address-book/internal/utils"
	"github.com/MKhiriev/go-address-book/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeBody(r, &credentials); err != nil {
		h.writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		if h.hideCredentialErrors && (errors.Is(err, service.ErrUsernameNotFound) || errors.Is(err, service.ErrIncorrectPassword)) {
			err = fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("username", foundUser.Username).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		Token:    token.SignedString,
		Username: foundUser.Username,
	}, http.StatusOK)
}

// decodeBody decodes the JSON request body into dst. A missing body yields
// [utils.ErrEmptyBody], anything undecodable [ErrInvalidJSON].
func decodeBody(r *http.Request, dst any) error {
	err := utils.DecodeJSON(r.Body, dst)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}
