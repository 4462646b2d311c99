package service

import (
	"context"
	"time"

	"github.com/MKhiriev/smoke-stack/internal/app"
	"github.com/MKhiriev/smoke-stack/internal/config"
	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/models"
)

type appInfoService struct {
	appVersion  string
	environment string

	now    func() time.Time
	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:  cfg.Version,
		environment: cfg.Environment,
		now:         time.Now,
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetEnvironment(ctx context.Context) string {
	return s.environment
}

func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		Status:      app.MsgHealthOK,
		Timestamp:   s.now().UTC(),
		Environment: s.environment,
		Version:     s.appVersion,
	}
}
