package service

import (
	"fmt"

	"github.com/MKhiriev/smoke-stack/internal/config"
	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/internal/store"
)

// Services groups the server-side services handed to the HTTP handlers.
type Services struct {
	StrainService  StrainService
	AppInfoService AppInfoService
}

// NewServices wires the catalog service behind its validation decorator.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	strainService := NewStrainValidationService().Wrap(
		NewStrainService(storages.StrainRepository, logger),
	)

	return &Services{
		StrainService:  strainService,
		AppInfoService: appInfo,
	}, nil
}
