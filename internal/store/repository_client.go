package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/models"
)

type clientRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	logger.Debug().Msg("creating client repository")
	return &clientRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureClient provisions an ambulance_last_update row with a nil watermark.
// An existing row is left untouched.
func (r *clientRepository) EnsureClient(ctx context.Context, clientID string) error {
	if _, err := r.db.ExecContext(ctx, ensureClient, clientID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*clientRepository.EnsureClient").
			Str("client_id", clientID).
			Msg("error provisioning client")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *clientRepository) GetClientState(ctx context.Context, clientID string) (models.ServerClientState, error) {
	var (
		state         models.ServerClientState
		acked, served sql.NullInt64
		lastContact   sql.NullTime
	)

	err := r.db.QueryRowContext(ctx, getClientState, clientID).
		Scan(&state.ClientID, &acked, &served, &lastContact, &state.Message)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ServerClientState{}, ErrUnknownClient
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*clientRepository.GetClientState").
			Str("client_id", clientID).
			Msg("error reading client state")
		return models.ServerClientState{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if acked.Valid {
		state.AckedWatermark = &acked.Int64
	}
	if served.Valid {
		state.ServedWatermark = &served.Int64
	}
	if lastContact.Valid {
		state.LastContact = &lastContact.Time
	}

	return state, nil
}

// MarkServed records the newest timestamp sent to the client. The acked
// watermark is not touched.
func (r *clientRepository) MarkServed(ctx context.Context, clientID string, served *int64, message string) error {
	return r.update(ctx, "MarkServed", markServed, clientID, served, message)
}

// StoreAck records the watermark acknowledged by the client. A nil watermark
// only refreshes contact time and message.
func (r *clientRepository) StoreAck(ctx context.Context, clientID string, watermark *int64, message string) error {
	return r.update(ctx, "StoreAck", storeAck, clientID, watermark, message)
}

func (r *clientRepository) update(ctx context.Context, op, query, clientID string, watermark *int64, message string) error {
	var wm sql.NullInt64
	if watermark != nil {
		wm = sql.NullInt64{Int64: *watermark, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, query, clientID, wm, message)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*clientRepository."+op).
			Str("client_id", clientID).
			Msg("error updating client state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUnknownClient
	}
	return nil
}

// MinAckedWatermark is the oldest position any client acknowledged, or nil
// when no client acknowledged anything yet.
func (r *clientRepository) MinAckedWatermark(ctx context.Context) (*int64, error) {
	query, args, err := sq.Select("MIN(acked_watermark)").
		From("ambulance_last_update").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var minAcked sql.NullInt64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&minAcked); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if !minAcked.Valid {
		return nil, nil
	}
	return &minAcked.Int64, nil
}
