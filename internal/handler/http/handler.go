package http

import (
	"time"

	"github.com/MKhiriev/go-address-book/internal/config"
	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/internal/service"
)

type Handler struct {
	services *service.Services

	// hideCredentialErrors collapses username_not_found and
	// incorrect_password into invalid_credentials.
	hideCredentialErrors bool
	// exposeErrorDetails fills ErrorResponse.Detail with the wrapped error.
	exposeErrorDetails bool

	requestTimeout     time.Duration
	corsAllowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:             services,
		hideCredentialErrors: cfg.App.HideCredentialErrors,
		exposeErrorDetails:   cfg.App.ExposeErrorDetails,
		requestTimeout:       cfg.Server.RequestTimeout,
		corsAllowedOrigins:   cfg.Server.CORSAllowedOrigins,
		logger:               logger,
	}
}
