package service

import (
	"context"

	"github.com/MKhiriev/smoke-stack/models"
)

// StrainService is the server-side catalog use case layer. Identifiers accept
// either the internal id or the alias of a record.
type StrainService interface {
	List(ctx context.Context) ([]models.Strain, error)
	Get(ctx context.Context, id string) (models.Strain, error)
	Create(ctx context.Context, in models.StrainInput) (models.Strain, error)
	Update(ctx context.Context, id string, in models.StrainInput) (models.Strain, error)
	Delete(ctx context.Context, id string) error
}

// StrainServiceWrapper defines middleware composition for StrainService.
// Implementations wrap an existing StrainService to add behavior such as
// validation.
type StrainServiceWrapper interface {
	Wrap(StrainService) StrainService // returns a decorated StrainService applying additional behavior
}

// AppInfoService reports build and deployment information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetEnvironment(ctx context.Context) string
	Health(ctx context.Context) models.HealthResponse
}
