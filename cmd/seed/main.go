// Command seed imports a JSON dataset into an empty catalog database.
//
// Without -seed-file the dataset bundled into the binaries is used.
package main

import (
	"context"
	"errors"

	"github.com/MKhiriev/smoke-stack/internal/config"
	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/internal/seed"
	"github.com/MKhiriev/smoke-stack/internal/store"
	"github.com/MKhiriev/smoke-stack/models"
)

func main() {
	log := logger.NewLogger("smokestack-seed")
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

	var inputs []models.StrainInput
	if cfg.Storage.SeedFile != "" {
		inputs, err = seed.LoadFile(cfg.Storage.SeedFile)
	} else {
		inputs, err = seed.BundledInputs()
	}
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Storage.SeedFile).Msg("error reading dataset")
	}

	result, err := seed.NewImporter(storages.StrainRepository, log).Import(ctx, inputs)
	if errors.Is(err, seed.ErrDatabaseNotEmpty) {
		log.Warn().Msg("catalog already has data, nothing imported")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error importing dataset")
	}

	log.Info().
		Int("imported", result.Imported).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Int("total", result.Total).
		Msg("seeding finished")
}
