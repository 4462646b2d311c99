// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/internal/store"
	"github.com/MKhiriev/smoke-stack/models"
)

type strainService struct {
	strainRepository store.StrainRepository

	logger *logger.Logger
}

// NewStrainService constructs the catalog service over repo. It performs no
// input validation; wrap it with [NewStrainValidationService].
func NewStrainService(repo store.StrainRepository, logger *logger.Logger) StrainService {
	return &strainService{
		strainRepository: repo,
		logger:           logger,
	}
}

func (s *strainService) List(ctx context.Context) ([]models.Strain, error) {
	return s.strainRepository.ListAll(ctx)
}

func (s *strainService) Get(ctx context.Context, id string) (models.Strain, error) {
	strain, err := s.strainRepository.GetByIdentifier(ctx, id)
	if err != nil {
		return models.Strain{}, mapStoreError(err)
	}
	return strain, nil
}

// Create inserts the record and returns it as re-read by its internal id.
func (s *strainService) Create(ctx context.Context, in models.StrainInput) (models.Strain, error) {
	log := logger.FromContext(ctx)

	created, err := s.strainRepository.Create(ctx, in.ToStrain())
	if err != nil {
		return models.Strain{}, mapStoreError(err)
	}
	log.Info().Str("func", "*strainService.Create").Str("_id", created.InternalID).Str("id", created.AliasID).Msg("strain created")

	stored, err := s.strainRepository.GetByInternalID(ctx, created.InternalID)
	if err != nil {
		return models.Strain{}, fmt.Errorf("error reading created strain: %w", mapStoreError(err))
	}
	return stored, nil
}

// Update checks that the record exists before writing, so a missing record
// is reported as [ErrStrainNotFound] without touching the table.
func (s *strainService) Update(ctx context.Context, id string, in models.StrainInput) (models.Strain, error) {
	existing, err := s.strainRepository.GetByIdentifier(ctx, id)
	if err != nil {
		return models.Strain{}, mapStoreError(err)
	}

	affected, err := s.strainRepository.Update(ctx, existing.InternalID, existing.Apply(in))
	if err != nil {
		return models.Strain{}, err
	}
	if affected == 0 {
		return models.Strain{}, ErrStrainNotFound
	}

	updated, err := s.strainRepository.GetByInternalID(ctx, existing.InternalID)
	if err != nil {
		return models.Strain{}, fmt.Errorf("error reading updated strain: %w", mapStoreError(err))
	}
	return updated, nil
}

func (s *strainService) Delete(ctx context.Context, id string) error {
	affected, err := s.strainRepository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStrainNotFound
	}

	logger.FromContext(ctx).Info().Str("func", "*strainService.Delete").Str("id", id).Msg("strain deleted")
	return nil
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrStrainNotFound):
		return ErrStrainNotFound
	case errors.Is(err, store.ErrStrainAlreadyExists):
		return ErrStrainAlreadyExists
	default:
		return err
	}
}
