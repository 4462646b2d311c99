package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/smoke-stack/internal/config"
	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/migrations"
)

const (
	dialectSQLite   = "sqlite3"
	dialectPostgres = "postgres"
)

// DB is a *sql.DB bound to one backend. It knows the backend's placeholder
// format, its goose dialect and how to classify its driver errors.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        squirrel.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the backend selected by cfg.DSN: PostgreSQL for
// postgres:// and postgresql:// URLs, SQLite for anything else.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Migrate applies the embedded migrations of schema.
func (db *DB) Migrate(schema migrations.Schema) error {
	return migrations.Migrate(db.DB, db.dialect, schema)
}

// Dialect returns the goose dialect name of the backend.
func (db *DB) Dialect() string {
	return db.dialect
}

func (db *DB) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(db.placeholder)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// transient reports whether err is a connection or lock failure. Statements
// are never re-run, so a transient failure is only reported.
func (db *DB) transient(err error) bool {
	if db.classify(err) != Retryable {
		return false
	}
	db.logger.Warn().Err(err).Str("func", "*DB.transient").Msg("transient database error, statement not retried")
	return true
}
