package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/models"
)

type localRecordRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalRecordRepository(db *DB, logger *logger.Logger) LocalRecordRepository {
	return &localRecordRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localRecordRepository) SaveRecord(ctx context.Context, record models.PendingRecord) (int64, error) {
	log := logger.FromContext(ctx)

	cols, err := encodeObservations(record)
	if err != nil {
		return 0, err
	}

	res, err := l.DB.ExecContext(ctx, savePendingRecord,
		record.CreatedAt.UTC(),
		record.Header.MissionNumber,
		record.Header.VehicleID,
		record.Header.CrewMemberID,
		record.Header.PatientName,
		record.Header.PatientBirth,
		cols[0], cols[1], cols[2], cols[3],
	)
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.SaveRecord").
			Str("mission_number", record.Header.MissionNumber).
			Msg("failed to insert pending record")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.LastInsertId()
}

func (l *localRecordRepository) ListPendingRecords(ctx context.Context) ([]models.PendingRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, listPendingRecords)
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.ListPendingRecords").
			Msg("failed to query pending records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.PendingRecord
	for rows.Next() {
		var (
			record models.PendingRecord
			cols   [4]string
		)
		scanErr := rows.Scan(
			&record.LocalID,
			&record.CreatedAt,
			&record.Header.MissionNumber,
			&record.Header.VehicleID,
			&record.Header.CrewMemberID,
			&record.Header.PatientName,
			&record.Header.PatientBirth,
			&cols[0], &cols[1], &cols[2], &cols[3],
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localRecordRepository.ListPendingRecords").
				Msg("failed to scan pending record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		if err = decodeObservations(&record, cols); err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localRecordRepository.ListPendingRecords").
			Msg("error iterating pending record rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

func (l *localRecordRepository) DeleteRecord(ctx context.Context, localID int64) error {
	log := logger.FromContext(ctx)

	res, err := l.DB.ExecContext(ctx, deletePendingRecord, localID)
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.DeleteRecord").
			Int64("local_id", localID).
			Msg("failed to delete pending record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// encodeObservations renders the four observation lists as JSON columns.
func encodeObservations(record models.PendingRecord) ([4]string, error) {
	var cols [4]string
	for i, v := range []any{
		nonNil(record.Parameters),
		nonNil(record.Positions),
		nonNil(record.Scores),
		nonNil(record.Texts),
	} {
		b, err := json.Marshal(v)
		if err != nil {
			return cols, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
		}
		cols[i] = string(b)
	}
	return cols, nil
}

func decodeObservations(record *models.PendingRecord, cols [4]string) error {
	for i, dst := range []any{
		&record.Parameters,
		&record.Positions,
		&record.Scores,
		&record.Texts,
	} {
		if err := json.Unmarshal([]byte(cols[i]), dst); err != nil {
			return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
		}
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
