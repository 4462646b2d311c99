package store

import (
	"context"

	"github.com/MKhiriev/smoke-stack/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StrainRepository is the persistent record store of the catalog.
//
// Every lookup, update and delete accepts either identifier of a record: the
// internal id is tried first, then the alias.
type StrainRepository interface {
	// ListAll returns every record, newest first.
	ListAll(ctx context.Context) ([]models.Strain, error)

	// GetByInternalID returns the record with the internal id or ErrStrainNotFound.
	GetByInternalID(ctx context.Context, id string) (models.Strain, error)

	// GetByAliasID returns the record with the alias or ErrStrainNotFound.
	GetByAliasID(ctx context.Context, id string) (models.Strain, error)

	// GetByIdentifier resolves idOrAlias as an internal id, then as an alias.
	GetByIdentifier(ctx context.Context, idOrAlias string) (models.Strain, error)

	// Create inserts strain and returns it with identifiers and timestamps
	// assigned.
	Create(ctx context.Context, strain models.Strain) (models.Strain, error)

	// Update overwrites the mutable fields of the matching record and returns
	// the number of rows affected.
	Update(ctx context.Context, idOrAlias string, strain models.Strain) (int64, error)

	// Delete removes the matching record and returns the number of rows
	// affected.
	Delete(ctx context.Context, idOrAlias string) (int64, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	// Ping reports whether the database answers.
	Ping(ctx context.Context) error
}
