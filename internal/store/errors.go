package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateKey is returned by ApplyStatement when the statement
	// violates a unique or primary key constraint, which means the same
	// mutation was already applied in an earlier round.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrUnknownClient is returned when no ambulance_last_update row exists
	// for the requested client id.
	ErrUnknownClient = errors.New("unknown client")

	// ErrRecordNotFound is returned when a record lookup or delete matches no
	// row.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrUserNotFound is returned when an account to disable does not exist.
	ErrUserNotFound = errors.New("user was not found")

	// ErrEmptyUserID is returned when a failed login is recorded without a
	// user id.
	ErrEmptyUserID = errors.New("user id cannot be empty")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingColumn is returned when a structured column cannot be
	// marshalled to or unmarshalled from JSON.
	ErrEncodingColumn = errors.New("failed to encode column")
)
