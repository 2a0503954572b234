package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.withRetry] whether a failed statement may be
// repeated.
type ErrorClassification int

const (
	// NonRetryable is the default for every error not known to be transient.
	NonRetryable ErrorClassification = iota

	// Retryable marks errors after which the same statement may succeed.
	Retryable
)

// retryablePgCodes are transient codes outside the connection-exception and
// transaction-rollback classes. Appends serialize on the mutation_log_clock
// row and DisableUser locks the user row, so lock waits and server restarts
// are the usual suspects.
var retryablePgCodes = map[string]struct{}{
	pgerrcode.LockNotAvailable: {}, // 55P03
	pgerrcode.CannotConnectNow: {}, // 57P03
	pgerrcode.AdminShutdown:    {}, // 57P01
	pgerrcode.CrashShutdown:    {}, // 57P02
}

// PostgresErrorClassifier implements [ErrorClassificator] for the server
// store.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that are not
// *pgconn.PgError are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a PostgreSQL error code. Connection exceptions
// (class 08) and transaction rollbacks (class 40: serialization failure,
// deadlock) are retryable, as are the codes in retryablePgCodes. Query
// cancellation (57014) is not: it follows the caller's context.
//
// Unique violations are never retried; record inserts and client
// provisioning resolve them with ON CONFLICT.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code
	if pgerrcode.IsConnectionException(code) || pgerrcode.IsTransactionRollback(code) {
		return Retryable
	}
	if _, ok := retryablePgCodes[code]; ok {
		return Retryable
	}
	return NonRetryable
}
