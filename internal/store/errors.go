package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStrainNotFound is returned when no record matches the requested
	// internal id or alias.
	ErrStrainNotFound = errors.New("strain was not found")

	// ErrStrainAlreadyExists is returned when an INSERT collides with an
	// existing internal id or alias, either by the pre-insert lookup or by
	// the database unique constraint.
	ErrStrainAlreadyExists = errors.New("strain with this id already exists")

	// ErrCacheKeyNotFound is returned by [LocalCache.Get] when the key was
	// never written or has been deleted.
	ErrCacheKeyNotFound = errors.New("cache key was not found")

	// ErrUnsupportedDSN is returned when the DSN selects no known backend.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan strain row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan strain rows")
)
