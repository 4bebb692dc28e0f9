package service

import (
	"github.com/MKhiriev/go-address-book/internal/config"
	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/internal/store"
	"github.com/MKhiriev/go-address-book/internal/utils"
	"github.com/MKhiriev/go-address-book/models"
)

type Services struct {
	AuthService    AuthService
	ContactService ContactService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	contactService := NewContactValidationService().
		Wrap(NewContactService(storages.ContactRepository, utils.NewUUIDGenerator(), logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ContactService: contactService,
		AppInfoService: NewAppInfoService(cfg.App, buildInfo, logger),
	}
}
