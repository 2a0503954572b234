package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-epr-sync/internal/logger"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository] against the "users" table.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// DisableUserStatement is the log statement clients apply to disable userID
// locally.
func DisableUserStatement(userID string) string {
	return fmt.Sprintf("UPDATE users SET disabled = 1 WHERE user_id = '%s'", strings.ReplaceAll(userID, "'", "''"))
}

// DisableUser locks the account row, disables it and appends exactly one log
// entry, all in one transaction.
//
// Error handling:
//   - no such account → [ErrUserNotFound].
//   - serialization failures and deadlocks are retried.
func (r *accountRepository) DisableUser(ctx context.Context, userID string) (bool, error) {
	log := logger.FromContext(ctx)

	var alreadyDisabled bool
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.inTx(ctx, func(tx *sql.Tx) error {
			var disabled int
			err := tx.QueryRowContext(ctx, lockUser, userID).Scan(&disabled)
			if errors.Is(err, sql.ErrNoRows) {
				return ErrUserNotFound
			}
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}

			if disabled != 0 {
				alreadyDisabled = true
				return nil
			}
			alreadyDisabled = false

			if _, err = tx.ExecContext(ctx, disableUser, userID); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			_, err = appendLogEntry(ctx, tx, DisableUserStatement(userID), r.now())
			return err
		})
	})
	if err != nil {
		log.Err(err).
			Str("func", "*accountRepository.DisableUser").
			Str("user_id", userID).
			Str("pg_code", postgresError(err)).
			Msg("error disabling user")
		return false, err
	}

	return alreadyDisabled, nil
}
