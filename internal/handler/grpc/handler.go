package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/smoke-stack/internal/logger"
)

// ServiceName is the gRPC health service name reported alongside the
// overall ("") status.
const ServiceName = "smokestack.StrainCatalog"

const defaultCheckInterval = 10 * time.Second

// Pinger reports whether the record store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves grpc.health.v1.Health. The status is SERVING while the
// store answers pings and NOT_SERVING otherwise.
type Handler struct {
	health *health.Server
	pinger Pinger

	checkInterval time.Duration

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The initial status is NOT_SERVING until
// the first successful check.
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	h := &Handler{
		health:        health.NewServer(),
		pinger:        pinger,
		checkInterval: defaultCheckInterval,
		logger:        logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Check pings the store once and updates the status.
func (h *Handler) Check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, h.checkInterval)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.Check").Msg("store ping failed")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// Watch runs Check immediately and then every check interval until ctx is
// done.
func (h *Handler) Watch(ctx context.Context) {
	h.Check(ctx)

	ticker := time.NewTicker(h.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}

// Shutdown sets every service to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
