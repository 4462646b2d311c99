// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "sqlite3", Catalog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "sqlite3", Catalog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "no-such-dialect", Catalog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setting dialect")
}

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrate_CatalogCreatesStrainsTable(t *testing.T) {
	db := openSQLite(t)

	require.NoError(t, Migrate(db, "sqlite3", Catalog))
	// second run is a no-op
	require.NoError(t, Migrate(db, "sqlite3", Catalog))

	var name string
	require.NoError(t, db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='strains'`).Scan(&name))
	assert.Equal(t, "strains", name)
}

func TestMigrate_LocalCacheCreatesTable(t *testing.T) {
	db := openSQLite(t)

	require.NoError(t, Migrate(db, "sqlite3", LocalCache))

	var name string
	require.NoError(t, db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='local_storage'`).Scan(&name))
	assert.Equal(t, "local_storage", name)
}
