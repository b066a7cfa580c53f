package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an insert or update fails because
	// another user already owns the requested email address (unique
	// constraint on users.email).
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query targets a user id that does
	// not exist in the database, including a foreign-key violation while
	// inserting an address for a missing user.
	ErrUserNotFound = errors.New("user not found")

	// ErrAddressNotFound is returned when an update or delete targets an
	// address (identified by address id and user id) that does not exist.
	ErrAddressNotFound = errors.New("address not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. a partial update with no SET clauses).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrAcquiringConnection is returned when a dedicated connection cannot
	// be checked out of the pool for a transaction.
	ErrAcquiringConnection = errors.New("failed to acquire connection")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
