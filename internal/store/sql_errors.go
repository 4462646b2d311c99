package store

// ErrorClassification is the result of [ErrorClassificator.Classify]. It tells
// repositories whether a failure was transient and whether it was caused by a
// uniqueness violation. Repositories never re-run a failed statement.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default for unrecognised errors.
	NonRetryable ErrorClassification = iota

	// Retryable indicates a transient failure (busy database, lost
	// connection, deadlock rollback). The caller decides whether to try again.
	Retryable

	// UniqueViolation indicates that a primary key or unique constraint
	// rejected the statement.
	UniqueViolation
)

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
