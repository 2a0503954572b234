// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/models"
)

type localSyncRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSyncRepository(db *DB, logger *logger.Logger) LocalSyncRepository {
	return &localSyncRepository{
		DB:     db,
		logger: logger,
	}
}

// GetSyncState returns the stored state of clientID. A client that never
// synchronized gets a state with a nil watermark.
func (l *localSyncRepository) GetSyncState(ctx context.Context, clientID string) (models.ClientSyncState, error) {
	log := logger.FromContext(ctx)

	var (
		state       models.ClientSyncState
		watermark   sql.NullInt64
		lastContact sql.NullTime
	)
	err := l.DB.QueryRowContext(ctx, getSyncState, clientID).
		Scan(&state.ClientID, &watermark, &lastContact, &state.Message)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ClientSyncState{ClientID: clientID}, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "localSyncRepository.GetSyncState").
			Str("client_id", clientID).
			Msg("failed to read sync state")
		return models.ClientSyncState{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if watermark.Valid {
		state.Watermark = &watermark.Int64
	}
	if lastContact.Valid {
		state.LastContact = lastContact.Time
	}

	return state, nil
}

func (l *localSyncRepository) SaveSyncState(ctx context.Context, state models.ClientSyncState) error {
	log := logger.FromContext(ctx)

	var (
		watermark   sql.NullInt64
		lastContact sql.NullTime
	)
	if state.Watermark != nil {
		watermark = sql.NullInt64{Int64: *state.Watermark, Valid: true}
	}
	if !state.LastContact.IsZero() {
		lastContact = sql.NullTime{Time: state.LastContact.UTC(), Valid: true}
	}

	_, err := l.DB.ExecContext(ctx, saveSyncState, state.ClientID, watermark, lastContact, state.Message)
	if err != nil {
		log.Err(err).
			Str("func", "localSyncRepository.SaveSyncState").
			Str("client_id", state.ClientID).
			Msg("failed to save sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListBlockedLogins returns accounts at or above [models.BlockedLoginThreshold].
func (l *localSyncRepository) ListBlockedLogins(ctx context.Context) ([]models.BlockedLoginEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, listBlockedLogins, models.BlockedLoginThreshold)
	if err != nil {
		log.Err(err).Str("func", "localSyncRepository.ListBlockedLogins").Msg("failed to query blocked logins")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.BlockedLoginEntry
	for rows.Next() {
		var entry models.BlockedLoginEntry
		if err = rows.Scan(&entry.UserID, &entry.FailedAttempts); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (l *localSyncRepository) ClearBlockedLogins(ctx context.Context, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("login_attempts").
		Where(sq.Eq{"user_id": userIDs}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localSyncRepository.ClearBlockedLogins").
			Strs("user_ids", userIDs).
			Msg("failed to clear blocked logins")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// RecordFailedLogin counts one refused login of userID. A blank id could
// never be reported to the server and is refused.
func (l *localSyncRepository) RecordFailedLogin(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrEmptyUserID
	}
	if _, err := l.DB.ExecContext(ctx, recordFailedLogin, userID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// ApplyStatement runs statement in its own transaction. Busy databases are
// retried.
func (l *localSyncRepository) ApplyStatement(ctx context.Context, statement string) error {
	log := logger.FromContext(ctx)

	err := l.withRetry(ctx, func(ctx context.Context) error {
		return l.inTx(ctx, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, statement)
			return err
		})
	})
	if err == nil {
		return nil
	}

	if isSQLiteDuplicate(err) {
		log.Debug().Str("func", "localSyncRepository.ApplyStatement").Msg("statement already applied")
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}

	log.Err(err).Str("func", "localSyncRepository.ApplyStatement").Msg("failed to apply statement")
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
