// Command inspect prints every record of the catalog database.
package main

import (
	"context"
	"os"

	"github.com/MKhiriev/smoke-stack/internal/config"
	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/internal/seed"
	"github.com/MKhiriev/smoke-stack/internal/store"
)

func main() {
	log := logger.NewLogger("smokestack-inspect")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	strains, err := storages.StrainRepository.ListAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error listing strains")
	}

	if err = seed.WriteReport(os.Stdout, strains, cfg.Storage.DB.DSN); err != nil {
		log.Fatal().Err(err).Msg("error writing report")
	}
}
