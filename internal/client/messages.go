package client

import (
	"errors"

	"github.com/MKhiriev/go-address-book/internal/adapter"
	"github.com/MKhiriev/go-address-book/internal/app"
)

// UserMessage returns the line printed for a failed command. Validation
// failures keep the server's own wording since it names the bad field.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrLoginRejected):
		return app.MsgInvalidLoginPassword
	case errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgTokenIsExpiredOrInvalid
	case errors.Is(err, adapter.ErrNotFound):
		return app.MsgContactNotFound
	case errors.Is(err, adapter.ErrConflict):
		return app.MsgContactConflict
	case errors.Is(err, adapter.ErrInternalServerError):
		return app.MsgInternalServerError
	default:
		return err.Error()
	}
}
