package http

import (
	"context"
	"time"

	"github.com/MKhiriev/smoke-stack/models"
)

// ---- Mock: StrainService ----

type mockStrainService struct {
	listFn   func(ctx context.Context) ([]models.Strain, error)
	getFn    func(ctx context.Context, id string) (models.Strain, error)
	createFn func(ctx context.Context, in models.StrainInput) (models.Strain, error)
	updateFn func(ctx context.Context, id string, in models.StrainInput) (models.Strain, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockStrainService) List(ctx context.Context) ([]models.Strain, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockStrainService) Get(ctx context.Context, id string) (models.Strain, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Strain{}, nil
}

func (m *mockStrainService) Create(ctx context.Context, in models.StrainInput) (models.Strain, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	return models.Strain{}, nil
}

func (m *mockStrainService) Update(ctx context.Context, id string, in models.StrainInput) (models.Strain, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, in)
	}
	return models.Strain{}, nil
}

func (m *mockStrainService) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ---- Mock: AppInfoService ----

type mockAppInfoService struct {
	version     string
	environment string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetEnvironment(_ context.Context) string {
	return m.environment
}

func (m *mockAppInfoService) Health(_ context.Context) models.HealthResponse {
	return models.HealthResponse{
		Status:      "ok",
		Timestamp:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Environment: m.environment,
		Version:     m.version,
	}
}
