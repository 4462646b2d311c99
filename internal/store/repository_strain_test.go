package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/smoke-stack/internal/config"
	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/migrations"
	"github.com/MKhiriev/smoke-stack/models"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// newSQLiteDB opens a migrated catalog database in a temp directory.
func newSQLiteDB(t *testing.T, schema migrations.Schema) *DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "nested", "strains.db")
	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(schema))
	return db
}

func newSQLiteRepo(t *testing.T) *strainRepository {
	t.Helper()
	return NewStrainRepository(newSQLiteDB(t, migrations.Catalog), logger.Nop()).(*strainRepository)
}

// newMockRepo builds a repository over sqlmock using SQLite placeholders.
func newMockRepo(t *testing.T) (*strainRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db := &DB{
		DB:                 sqlDB,
		dialect:            dialectSQLite,
		placeholder:        squirrel.Question,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             logger.Nop(),
	}
	return NewStrainRepository(db, logger.Nop()).(*strainRepository), mock
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestCreate_GeneratesIdentifiersAndTimestamps(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := testContext()

	created, err := repo.Create(ctx, models.Strain{Name: "Blue Dream", Type: "hybrid"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.InternalID)
	assert.Equal(t, created.InternalID, created.AliasID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))
	assert.Equal(t, time.UTC, created.CreatedAt.Location())

	stored, err := repo.GetByInternalID(ctx, created.InternalID)
	require.NoError(t, err)
	assert.Equal(t, "Blue Dream", stored.Name)
	assert.Equal(t, "", stored.Source)
	assert.True(t, created.CreatedAt.Equal(stored.CreatedAt))
}

func TestCreate_KeepsSuppliedAlias(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := testContext()

	created, err := repo.Create(ctx, models.Strain{AliasID: "42", Name: "OG Kush", Type: "indica"})
	require.NoError(t, err)
	assert.Equal(t, "42", created.AliasID)
	assert.NotEqual(t, "42", created.InternalID)

	byAlias, err := repo.GetByAliasID(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, created.InternalID, byAlias.InternalID)
}

func TestCreate_DuplicateAlias(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := testContext()

	_, err := repo.Create(ctx, models.Strain{AliasID: "42", Name: "A", Type: "sativa"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, models.Strain{AliasID: "42", Name: "B", Type: "sativa"})
	assert.ErrorIs(t, err, ErrStrainAlreadyExists)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCreate_AliasCollidesWithInternalID(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := testContext()

	first, err := repo.Create(ctx, models.Strain{Name: "A", Type: "sativa"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, models.Strain{AliasID: first.InternalID, Name: "B", Type: "sativa"})
	assert.ErrorIs(t, err, ErrStrainAlreadyExists)
}

func TestCreate_UniqueConstraintViolation(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := testContext()
	repo.newID = func() string { return "fixed" }

	_, err := repo.Create(ctx, models.Strain{Name: "A", Type: "sativa"})
	require.NoError(t, err)

	// same generated internal id, no alias to pre-check
	_, err = repo.Create(ctx, models.Strain{Name: "B", Type: "sativa"})
	assert.ErrorIs(t, err, ErrStrainAlreadyExists)
}

func TestCreate_ExecError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO strains").WillReturnError(errors.New("disk full"))

	_, err := repo.Create(testContext(), models.Strain{Name: "A", Type: "sativa"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_AliasLookupError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM strains`).WillReturnError(errors.New("boom"))

	_, err := repo.Create(testContext(), models.Strain{AliasID: "1", Name: "A", Type: "sativa"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_BusyDatabaseRunsInsertOnce(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO strains").WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})

	_, err := repo.Create(testContext(), models.Strain{Name: "A", Type: "sativa"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrStrainAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_PostgresConnectionFailureRunsInsertOnce(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db := &DB{
		DB:                 sqlDB,
		dialect:            dialectPostgres,
		placeholder:        squirrel.Dollar,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
	repo := NewStrainRepository(db, logger.Nop()).(*strainRepository)

	// a second INSERT would hit the primary key of the first
	mock.ExpectExec("INSERT INTO strains").WillReturnError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure})

	_, err = repo.Create(testContext(), models.Strain{Name: "A", Type: "sativa"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrStrainAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_BusyDatabaseRunsUpdateOnce(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	cols := []string{"_id", "id", "name", "type", "source", "image", "setting", "format", "stoner", "impressions", "other", "created_at", "updated_at"}
	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("abc", "abc", "n", "t", "", "", "", "", "", "", "", now, now))
	mock.ExpectExec("UPDATE strains").WillReturnError(sqlite3.Error{Code: sqlite3.ErrLocked})

	_, err := repo.Update(testContext(), "abc", models.Strain{Name: "B", Type: "indica"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─────────────────────────────────────────────
// ListAll
// ─────────────────────────────────────────────

func TestListAll_NewestFirst(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := testContext()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		repo.now = fixedClock(base.Add(time.Duration(i) * time.Second))
		_, err := repo.Create(ctx, models.Strain{Name: name, Type: "hybrid"})
		require.NoError(t, err)
	}

	strains, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, strains, 3)
	assert.Equal(t, "third", strains[0].Name)
	assert.Equal(t, "second", strains[1].Name)
	assert.Equal(t, "first", strains[2].Name)
}

func TestListAll_TiesOrderedByInternalID(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := testContext()
	repo.now = fixedClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	ids := []string{"a", "c", "b"}
	for _, id := range ids {
		_, err := repo.Create(ctx, models.Strain{InternalID: id, Name: id, Type: "hybrid"})
		require.NoError(t, err)
	}

	strains, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, strains, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{strains[0].InternalID, strains[1].InternalID, strains[2].InternalID})
}

func TestListAll_Empty(t *testing.T) {
	repo := newSQLiteRepo(t)

	strains, err := repo.ListAll(testContext())
	require.NoError(t, err)
	assert.Empty(t, strains)
	assert.NotNil(t, strains)
}

func TestListAll_QueryError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM strains ORDER BY created_at DESC, _id DESC").
		WillReturnError(errors.New("connection lost"))

	_, err := repo.ListAll(testContext())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAll_ScanError(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"_id"}).AddRow("only-one-column")
	mock.ExpectQuery("SELECT (.+) FROM strains").WillReturnRows(rows)

	_, err := repo.ListAll(testContext())
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ─────────────────────────────────────────────
// lookups
// ─────────────────────────────────────────────

func TestGetByIdentifier(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := testContext()

	created, err := repo.Create(ctx, models.Strain{AliasID: "7", Name: "Sour Diesel", Type: "sativa"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "by internal id", id: created.InternalID},
		{name: "by alias", id: "7"},
		{name: "unknown", id: "nope", wantErr: ErrStrainNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByIdentifier(ctx, tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, created.InternalID, got.InternalID)
		})
	}
}

func TestGetByIdentifier_InternalIDWinsOverAlias(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := testContext()

	first, err := repo.Create(ctx, models.Strain{InternalID: "x1", AliasID: "alias-1", Name: "first", Type: "indica"})
	require.NoError(t, err)

	// inserted directly: the alias of the second record equals the first internal id
	_, err = repo.ExecContext(ctx,
		`INSERT INTO strains (_id, id, name, type, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		"x2", first.InternalID, "second", "indica", time.Now().UTC(), time.Now().UTC())
	require.NoError(t, err)

	got, err := repo.GetByIdentifier(ctx, "x1")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)
}

func TestGetByInternalID_DatabaseError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM strains WHERE _id = \?`).WillReturnError(errors.New("boom"))

	_, err := repo.GetByInternalID(testContext(), "abc")
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.False(t, errors.Is(err, ErrStrainNotFound))
}

// ─────────────────────────────────────────────
// Update / Delete
// ─────────────────────────────────────────────

func TestUpdate_OverwritesMutableFields(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := testContext()

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.now = fixedClock(created)
	orig, err := repo.Create(ctx, models.Strain{AliasID: "9", Name: "Old", Type: "indica", Source: "shop"})
	require.NoError(t, err)

	updated := created.Add(time.Hour)
	repo.now = fixedClock(updated)
	n, err := repo.Update(ctx, "9", models.Strain{Name: "New", Type: "sativa"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.GetByInternalID(ctx, orig.InternalID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, "sativa", got.Type)
	assert.Equal(t, "", got.Source)
	assert.Equal(t, "9", got.AliasID)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.True(t, got.UpdatedAt.Equal(updated))
}

func TestUpdate_NoMatch(t *testing.T) {
	repo := newSQLiteRepo(t)

	n, err := repo.Update(testContext(), "missing", models.Strain{Name: "x", Type: "y"})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDelete(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := testContext()

	s, err := repo.Create(ctx, models.Strain{AliasID: "3", Name: "Gone", Type: "hybrid"})
	require.NoError(t, err)

	n, err := repo.Delete(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.GetByInternalID(ctx, s.InternalID)
	assert.ErrorIs(t, err, ErrStrainNotFound)

	n, err = repo.Delete(ctx, "3")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDelete_ExecError(t *testing.T) {
	repo, mock := newMockRepo(t)

	cols := []string{"_id", "id", "name", "type", "source", "image", "setting", "format", "stoner", "impressions", "other", "created_at", "updated_at"}
	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM strains WHERE _id = \?`).
		WithArgs("abc").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("abc", "abc", "n", "t", "", "", "", "", "", "", "", now, now))
	mock.ExpectExec(`DELETE FROM strains WHERE _id = \?`).
		WithArgs("abc").
		WillReturnError(sql.ErrConnDone)

	_, err := repo.Delete(testContext(), "abc")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount_QueryError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM strains`).WillReturnError(errors.New("boom"))

	_, err := repo.Count(testContext())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
