package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/smoke-stack/internal/adapter"
	"github.com/MKhiriev/smoke-stack/internal/app"
	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/models"
)

// HealthStatus is the outcome of one probe.
type HealthStatus struct {
	Online bool
	Health models.HealthResponse
	Err    error
	At     time.Time
}

// HealthProbe polls GET /health and reports every result to onStatus. It
// never touches the client collection.
type HealthProbe struct {
	adapter  adapter.ServerAdapter
	interval time.Duration
	onStatus func(HealthStatus)

	now    func() time.Time
	logger *logger.Logger
}

func NewHealthProbe(serverAdapter adapter.ServerAdapter, interval time.Duration, onStatus func(HealthStatus), logger *logger.Logger) *HealthProbe {
	return &HealthProbe{
		adapter:  serverAdapter,
		interval: interval,
		onStatus: onStatus,
		now:      time.Now,
		logger:   logger,
	}
}

// Run probes immediately and then on every interval tick until ctx is done.
func (p *HealthProbe) Run(ctx context.Context) {
	p.probe(ctx)
	if p.interval <= 0 {
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *HealthProbe) probe(ctx context.Context) {
	health, err := p.adapter.Health(ctx)
	if ctx.Err() != nil {
		return
	}

	status := HealthStatus{
		Online: err == nil && health.Status == app.MsgHealthOK,
		Health: health,
		Err:    err,
		At:     p.now(),
	}
	if err != nil {
		p.logger.Debug().Err(err).Str("func", "*HealthProbe.probe").Msg("api health check failed")
	}

	p.onStatus(status)
}
