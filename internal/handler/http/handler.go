package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/smoke-stack/internal/config"
	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	registry *prometheus.Registry
	metrics  *requestMetrics

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. Request metrics are registered on a
// registry owned by the handler and exposed at GET /metrics.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	registry := prometheus.NewRegistry()

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		registry: registry,
		metrics:  newRequestMetrics(registry),
		logger:   logger,
	}
}
