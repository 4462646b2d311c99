package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/smoke-stack/internal/validators"
	"github.com/MKhiriev/smoke-stack/models"
)

type strainValidationService struct {
	inner     StrainService
	validator validators.Validator
}

// NewStrainValidationService returns a decorator that rejects a create or
// update without name or type before the wrapped service runs.
func NewStrainValidationService() StrainServiceWrapper {
	return &strainValidationService{
		validator: validators.NewStrainValidator(),
	}
}

func (v *strainValidationService) List(ctx context.Context) ([]models.Strain, error) {
	return v.inner.List(ctx)
}

func (v *strainValidationService) Get(ctx context.Context, id string) (models.Strain, error) {
	return v.inner.Get(ctx, id)
}

func (v *strainValidationService) Create(ctx context.Context, in models.StrainInput) (models.Strain, error) {
	if err := v.validate(ctx, in); err != nil {
		return models.Strain{}, err
	}
	return v.inner.Create(ctx, in)
}

func (v *strainValidationService) Update(ctx context.Context, id string, in models.StrainInput) (models.Strain, error) {
	if err := v.validate(ctx, in); err != nil {
		return models.Strain{}, err
	}
	return v.inner.Update(ctx, id, in)
}

func (v *strainValidationService) Delete(ctx context.Context, id string) error {
	return v.inner.Delete(ctx, id)
}

func (v *strainValidationService) validate(ctx context.Context, in models.StrainInput) error {
	err := v.validator.Validate(ctx, in)
	if err == nil {
		return nil
	}
	if errors.Is(err, validators.ErrNameAndTypeRequired) {
		return fmt.Errorf("%w: %w", ErrValidationNameAndTypeRequired, err)
	}
	return fmt.Errorf("error during strain validation: %w", err)
}

func (v *strainValidationService) Wrap(inner StrainService) StrainService {
	v.inner = inner
	return v
}
