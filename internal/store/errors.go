package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStorageUnavailable is returned (wrapped) whenever the underlying
	// SQLite medium cannot be opened, read, or written. Callers must treat
	// it as non-fatal: offline capability degrades to online-only operation,
	// the sales-entry flow is never blocked by it.
	ErrStorageUnavailable = errors.New("local storage unavailable")

	// ErrProductNotFound is returned when a product lookup by id matches
	// nothing in the local cache.
	ErrProductNotFound = errors.New("product not found in local cache")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
