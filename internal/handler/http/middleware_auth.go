package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/internal/utils"
)

// auth is the bearer-token gate in front of every contact route.
//
// It reads the "Authorization" header, extracts the bearer token, validates
// it via [service.AuthService.ParseToken] and on success stores the token
// subject in the request context under [utils.UsernameCtxKey].
//
// A missing, malformed, expired or otherwise invalid token is rejected with
// 401 Unauthorized before the wrapped handler runs.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("error occurred during parsing token: %w", err))
			return
		}

		ctx = context.WithValue(ctx, utils.UsernameCtxKey, token.Username)

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("username", token.Username)
		})

		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}
