package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/smoke-stack/internal/config"
	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/migrations"
)

// ClientStorages groups all client-side storage into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// Cache is the SQLite-backed key/value store holding the collection,
	// the placeholder session and the theme.
	Cache LocalCache

	db *DB
}

// NewClientStorages opens the SQLite cache file at cfg.Cache.DSN, creating it
// when missing, runs the local migrations and wires the cache.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.Cache, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(migrations.LocalCache); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Cache: NewLocalCache(db, logger),
		db:    db,
	}, nil
}

// Close releases the cache database.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
