// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/models"
)

const (
	liveLogTable    = "mutation_log"
	historyLogTable = "mutation_log_history"
)

type mutationLogRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

func NewMutationLogRepository(db *DB, logger *logger.Logger) MutationLogRepository {
	logger.Debug().Msg("creating mutation log repository")
	return &mutationLogRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Append stores statement under the next server timestamp.
func (r *mutationLogRepository) Append(ctx context.Context, statement string) (models.MutationLogEntry, error) {
	var entry models.MutationLogEntry

	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.inTx(ctx, func(tx *sql.Tx) error {
			var err error
			entry, err = appendLogEntry(ctx, tx, statement, r.now())
			return err
		})
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*mutationLogRepository.Append").
			Msg("error appending log entry")
		return models.MutationLogEntry{}, err
	}

	return entry, nil
}

// appendLogEntry assigns max(now, last+1) in unix microseconds under the
// clock row lock, so timestamps are strictly increasing even after archiving.
func appendLogEntry(ctx context.Context, tx *sql.Tx, statement string, now time.Time) (models.MutationLogEntry, error) {
	entry := models.MutationLogEntry{Statement: statement}

	if err := tx.QueryRowContext(ctx, tickClock, now.UnixMicro()).Scan(&entry.Timestamp); err != nil {
		return models.MutationLogEntry{}, fmt.Errorf("%w: log clock: %w", ErrExecutingStatement, err)
	}
	if _, err := tx.ExecContext(ctx, insertLogEntry, entry.Timestamp, entry.Statement); err != nil {
		return models.MutationLogEntry{}, fmt.Errorf("%w: insert log entry: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

// Select returns the archived and live log ordered by timestamp. With a nil
// after the whole log is returned (bootstrap); otherwise only entries with a
// timestamp strictly greater than *after.
func (r *mutationLogRepository) Select(ctx context.Context, after *int64) ([]models.MutationLogEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectLogQuery(after)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*mutationLogRepository.Select").Msg("error selecting log entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.MutationLogEntry, 0)
	for rows.Next() {
		var entry models.MutationLogEntry
		if err = rows.Scan(&entry.Timestamp, &entry.Statement); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func selectLogQuery(after *int64) (string, []any, error) {
	history := sq.Select("ts", "statement").From(historyLogTable)
	live := sq.Select("ts", "statement").From(liveLogTable)
	if after != nil {
		history = history.Where(sq.Gt{"ts": *after})
		live = live.Where(sq.Gt{"ts": *after})
	}

	historySQL, historyArgs, err := history.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	liveSQL, liveArgs, err := live.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query, err := sq.Dollar.ReplacePlaceholders(historySQL + " UNION ALL " + liveSQL + " ORDER BY ts")
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, append(historyArgs, liveArgs...), nil
}

// Archive moves live entries older than before into the history table and
// returns how many were moved.
func (r *mutationLogRepository) Archive(ctx context.Context, before int64) (int64, error) {
	copyQuery, copyArgs, err := sq.Insert(historyLogTable).
		Columns("ts", "statement").
		Select(sq.Select("ts", "statement").From(liveLogTable).Where(sq.Lt{"ts": before})).
		Suffix("ON CONFLICT (ts) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deleteQuery, deleteArgs, err := sq.Delete(liveLogTable).
		Where(sq.Lt{"ts": before}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var moved int64
	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, copyQuery, copyArgs...); err != nil {
			return fmt.Errorf("%w: copy to history: %w", ErrExecutingStatement, err)
		}
		res, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...)
		if err != nil {
			return fmt.Errorf("%w: delete archived: %w", ErrExecutingStatement, err)
		}
		moved, err = res.RowsAffected()
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mutationLogRepository.Archive").Msg("error archiving log")
		return 0, err
	}

	return moved, nil
}
