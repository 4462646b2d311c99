package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/smoke-stack/internal/adapter"
	"github.com/MKhiriev/smoke-stack/internal/config"
	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/internal/workers"
)

type App struct {
	ui      UI
	workers *workers.Workers
	storage io.Closer
	logger  *logger.Logger
}

// NewApp wires the health probe to ui. storage is closed when Run returns.
func NewApp(ui UI, serverAdapter adapter.ServerAdapter, storage io.Closer, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNilUI
	}

	probe := workers.NewHealthProbe(serverAdapter, cfg.HealthInterval, ui.Notify, logger)

	return &App{
		ui:      ui,
		workers: workers.NewWorkers(probe),
		storage: storage,
		logger:  logger,
	}, nil
}

// Run starts the background workers and the UI and blocks until the UI
// exits or the process receives SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	workersCtx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Go(func() {
		a.workers.Run(workersCtx)
	})

	a.logger.Info().Str("func", "*App.run").Msg("client started")
	uiErr := a.ui.Run(ctx)

	cancel()
	wg.Wait()

	if a.storage != nil {
		if err := a.storage.Close(); err != nil {
			a.logger.Err(err).Str("func", "*App.run").Msg("error closing local storage")
		}
	}

	if uiErr != nil {
		return fmt.Errorf("ui error: %w", uiErr)
	}

	a.logger.Info().Str("func", "*App.run").Msg("client stopped")
	return nil
}
