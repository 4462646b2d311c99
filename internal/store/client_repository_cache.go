package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/smoke-stack/internal/logger"
)

// localCache is the SQLite implementation of [LocalCache] over the
// "local_storage" table.
type localCache struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewLocalCache constructs a [LocalCache] backed by db.
func NewLocalCache(db *DB, logger *logger.Logger) LocalCache {
	return &localCache{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (c *localCache) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetCacheValueQuery(c.builder(), key)
	if err != nil {
		c.logger.Err(err).Str("func", "*localCache.Get").Msg("failed to build query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = c.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrCacheKeyNotFound
	}
	if err != nil {
		c.logger.Err(err).Str("func", "*localCache.Get").Str("key", key).Msg("failed to read cache value")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (c *localCache) Put(ctx context.Context, key, value string) error {
	query, args, err := buildPutCacheValueQuery(c.builder(), key, value, c.now().UTC())
	if err != nil {
		c.logger.Err(err).Str("func", "*localCache.Put").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.ExecContext(ctx, query, args...); err != nil {
		c.logger.Err(err).Str("func", "*localCache.Put").Str("key", key).
			Bool("transient", c.transient(err)).Msg("failed to write cache value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (c *localCache) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteCacheValueQuery(c.builder(), key)
	if err != nil {
		c.logger.Err(err).Str("func", "*localCache.Delete").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.ExecContext(ctx, query, args...); err != nil {
		c.logger.Err(err).Str("func", "*localCache.Delete").Str("key", key).Msg("failed to delete cache value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
