// Package migrations embeds the goose migrations of the server record store
// and of the client's local cache.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql client/*.sql
var embedMigrations embed.FS

// Schema selects one of the embedded migration sets.
type Schema string

const (
	// Catalog is the server's strains table.
	Catalog Schema = "server"
	// LocalCache is the client's key/value table.
	LocalCache Schema = "client"
)

// Migrate applies every pending migration of schema to db. dialect is a goose
// dialect name such as "sqlite3" or "postgres".
func Migrate(db *sql.DB, dialect string, schema Schema) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, string(schema)); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
