package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/internal/store"
	"github.com/MKhiriev/smoke-stack/models"
)

// Result counts the outcome of an import.
type Result struct {
	Imported int
	Skipped  int
	Failed   int
	Total    int
}

type Importer struct {
	repo   store.StrainRepository
	logger *logger.Logger
}

func NewImporter(repo store.StrainRepository, logger *logger.Logger) *Importer {
	return &Importer{repo: repo, logger: logger}
}

// Import inserts every entry into an empty store. Each entry's id becomes its
// alias. Duplicates are skipped; other insert errors are counted as failures
// and do not stop the import. Total is the row count afterwards.
func (i *Importer) Import(ctx context.Context, inputs []models.StrainInput) (Result, error) {
	existing, err := i.repo.Count(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("error counting strains: %w", err)
	}
	if existing > 0 {
		return Result{Total: existing}, fmt.Errorf("%w: %d rows", ErrDatabaseNotEmpty, existing)
	}

	var result Result
	for _, in := range inputs {
		_, err = i.repo.Create(ctx, in.ToStrain())
		switch {
		case err == nil:
			result.Imported++
			i.logger.Info().Str("func", "*Importer.Import").Str("name", in.Name).Msg("imported")
		case errors.Is(err, store.ErrStrainAlreadyExists):
			result.Skipped++
			i.logger.Info().Str("func", "*Importer.Import").Str("name", in.Name).Str("id", in.ID.String()).Msg("skipped duplicate")
		default:
			result.Failed++
			i.logger.Err(err).Str("func", "*Importer.Import").Str("name", in.Name).Msg("error importing strain")
		}
	}

	if result.Total, err = i.repo.Count(ctx); err != nil {
		return result, fmt.Errorf("error counting strains: %w", err)
	}
	return result, nil
}
