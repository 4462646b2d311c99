// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/internal/utils"
	"github.com/MKhiriev/smoke-stack/models"
)

// strainRepository is the SQL implementation of [StrainRepository]. It
// executes every catalog operation against the "strains" table using the
// embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database interactions are traced with the
// request's trace id.
type strainRepository struct {
	*DB
	logger *logger.Logger

	now   func() time.Time
	newID func() string
}

// NewStrainRepository constructs a [StrainRepository] backed by the provided
// database connection and logger.
func NewStrainRepository(db *DB, logger *logger.Logger) StrainRepository {
	logger.Debug().Msg("creating strain repository")
	return &strainRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
		newID:  utils.NewRecordID,
	}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanStrain(row scanner) (models.Strain, error) {
	var s models.Strain
	err := row.Scan(
		&s.InternalID,
		&s.AliasID,
		&s.Name,
		&s.Type,
		&s.Source,
		&s.Image,
		&s.Setting,
		&s.Format,
		&s.Stoner,
		&s.Impressions,
		&s.Other,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// ListAll returns every record ordered by created_at descending.
func (r *strainRepository) ListAll(ctx context.Context) ([]models.Strain, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListStrainsQuery(r.builder())
	if err != nil {
		log.Err(err).Str("func", "*strainRepository.ListAll").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*strainRepository.ListAll").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	strains := make([]models.Strain, 0, 64)
	for rows.Next() {
		s, scanErr := scanStrain(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*strainRepository.ListAll").Int("row", len(strains)).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		strains = append(strains, s)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*strainRepository.ListAll").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return strains, nil
}

func (r *strainRepository) GetByInternalID(ctx context.Context, id string) (models.Strain, error) {
	return r.getBy(ctx, columnInternalID, id)
}

func (r *strainRepository) GetByAliasID(ctx context.Context, id string) (models.Strain, error) {
	return r.getBy(ctx, columnAliasID, id)
}

// GetByIdentifier tries idOrAlias as an internal id first and falls back to
// the alias.
func (r *strainRepository) GetByIdentifier(ctx context.Context, idOrAlias string) (models.Strain, error) {
	s, err := r.GetByInternalID(ctx, idOrAlias)
	if !errors.Is(err, ErrStrainNotFound) {
		return s, err
	}
	return r.GetByAliasID(ctx, idOrAlias)
}

func (r *strainRepository) getBy(ctx context.Context, column, value string) (models.Strain, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetStrainQuery(r.builder(), column, value)
	if err != nil {
		log.Err(err).Str("func", "*strainRepository.getBy").Str("column", column).Msg("failed to build query")
		return models.Strain{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	s, err := scanStrain(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Strain{}, ErrStrainNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*strainRepository.getBy").Str("column", column).Str("value", value).Msg("failed to scan row")
		return models.Strain{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return s, nil
}

// Create inserts strain. An empty internal id is generated, an empty alias
// defaults to the internal id and both timestamps are set to now (UTC).
//
// A supplied alias that equals any existing internal id or alias yields
// [ErrStrainAlreadyExists], as does a unique constraint violation raised by
// the database.
func (r *strainRepository) Create(ctx context.Context, strain models.Strain) (models.Strain, error) {
	log := logger.FromContext(ctx)

	if strain.AliasID != "" {
		taken, err := r.identifierTaken(ctx, strain.AliasID)
		if err != nil {
			return models.Strain{}, err
		}
		if taken {
			log.Debug().Str("func", "*strainRepository.Create").Str("id", strain.AliasID).Msg("alias is already taken")
			return models.Strain{}, ErrStrainAlreadyExists
		}
	}

	if strain.InternalID == "" {
		strain.InternalID = r.newID()
	}
	if strain.AliasID == "" {
		strain.AliasID = strain.InternalID
	}

	now := r.now().UTC().Truncate(time.Microsecond)
	strain.CreatedAt = now
	strain.UpdatedAt = now

	query, args, err := buildInsertStrainQuery(r.builder(), strain)
	if err != nil {
		log.Err(err).Str("func", "*strainRepository.Create").Msg("failed to build query")
		return models.Strain{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if r.classify(err) == UniqueViolation {
			return models.Strain{}, ErrStrainAlreadyExists
		}
		log.Err(err).Str("func", "*strainRepository.Create").Str("_id", strain.InternalID).
			Bool("transient", r.transient(err)).Msg("failed to insert strain")
		return models.Strain{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return strain, nil
}

func (r *strainRepository) identifierTaken(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildIdentifierTakenQuery(r.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*strainRepository.identifierTaken").Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*strainRepository.identifierTaken").Str("id", id).Msg("failed to execute query")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// Update resolves idOrAlias and overwrites every mutable field of the record,
// refreshing updated_at. It returns 0 and no error when nothing matched.
func (r *strainRepository) Update(ctx context.Context, idOrAlias string, strain models.Strain) (int64, error) {
	log := logger.FromContext(ctx)

	existing, err := r.GetByIdentifier(ctx, idOrAlias)
	if errors.Is(err, ErrStrainNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	strain.UpdatedAt = r.now().UTC().Truncate(time.Microsecond)

	query, args, err := buildUpdateStrainQuery(r.builder(), existing.InternalID, strain)
	if err != nil {
		log.Err(err).Str("func", "*strainRepository.Update").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*strainRepository.Update", query, args)
}

// Delete resolves idOrAlias and removes the record. It returns 0 and no error
// when nothing matched.
func (r *strainRepository) Delete(ctx context.Context, idOrAlias string) (int64, error) {
	log := logger.FromContext(ctx)

	existing, err := r.GetByIdentifier(ctx, idOrAlias)
	if errors.Is(err, ErrStrainNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	query, args, err := buildDeleteStrainQuery(r.builder(), existing.InternalID)
	if err != nil {
		log.Err(err).Str("func", "*strainRepository.Delete").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*strainRepository.Delete", query, args)
}

func (r *strainRepository) exec(ctx context.Context, funcName, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Bool("transient", r.transient(err)).Msg("failed to execute statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read rows affected")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

func (r *strainRepository) Count(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountStrainsQuery(r.builder())
	if err != nil {
		log.Err(err).Str("func", "*strainRepository.Count").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*strainRepository.Count").Msg("failed to execute query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *strainRepository) Ping(ctx context.Context) error {
	return r.PingContext(ctx)
}
