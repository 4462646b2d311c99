package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/smoke-stack/internal/adapter"
	"github.com/MKhiriev/smoke-stack/internal/client"
	"github.com/MKhiriev/smoke-stack/internal/config"
	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/internal/seed"
	"github.com/MKhiriev/smoke-stack/internal/service"
	"github.com/MKhiriev/smoke-stack/internal/store"
	"github.com/MKhiriev/smoke-stack/internal/tui"
	"github.com/MKhiriev/smoke-stack/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	// the terminal belongs to the UI, so logs go to a file
	log := logger.NewClientLogger("smokestack-client", cfg.Storage.LogPath)

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(localStorage, serverAdapter, seed.Bundled, cfg.App, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, serverAdapter, localStorage, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "client run error: %v\n", err)
		log.Fatal().Err(err).Msg("client run error")
	}
}
