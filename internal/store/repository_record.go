package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/models"
)

// recordRepository is the PostgreSQL-backed implementation of
// [RecordRepository].
type recordRepository struct {
	logger *logger.Logger
	db     *DB
}

// observations is the JSONB column layout of the nested sub-packets.
type observations struct {
	Parameters []models.ObservationParameter `json:"parameters"`
	Positions  []models.ObservationPosition  `json:"positions"`
	Scores     []models.ObservationScore     `json:"scores"`
	Texts      []models.ObservationText      `json:"texts"`
}

func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		db:     db,
		logger: logger,
	}
}

// SaveRecord inserts record or, when the same (client, local id, created at)
// triple was stored before, returns the existing server id.
func (r *recordRepository) SaveRecord(ctx context.Context, clientID string, record models.PendingRecord) (int64, error) {
	log := logger.FromContext(ctx)

	header, err := json.Marshal(record.Header)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	obs, err := json.Marshal(observations{
		Parameters: record.Parameters,
		Positions:  record.Positions,
		Scores:     record.Scores,
		Texts:      record.Texts,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}

	var serverID int64
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, saveRecord, clientID, record.LocalID, record.CreatedAt.UTC(), header, obs).
			Scan(&serverID)
	})
	if err != nil {
		log.Err(err).
			Str("func", "*recordRepository.SaveRecord").
			Str("client_id", clientID).
			Int64("local_id", record.LocalID).
			Msg("error saving record")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return serverID, nil
}

func (r *recordRepository) GetRecord(ctx context.Context, clientID string, serverID int64) (models.PendingRecord, error) {
	log := logger.FromContext(ctx)

	var (
		record      models.PendingRecord
		header, obs []byte
	)
	err := r.db.QueryRowContext(ctx, getRecord, clientID, serverID).
		Scan(&record.LocalID, &record.CreatedAt, &header, &obs)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PendingRecord{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*recordRepository.GetRecord").
			Int64("server_id", serverID).
			Msg("error reading record")
		return models.PendingRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var o observations
	if err = json.Unmarshal(header, &record.Header); err != nil {
		return models.PendingRecord{}, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	if err = json.Unmarshal(obs, &o); err != nil {
		return models.PendingRecord{}, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	record.Parameters, record.Positions, record.Scores, record.Texts = o.Parameters, o.Positions, o.Scores, o.Texts

	return record, nil
}
