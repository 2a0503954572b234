package service

import (
	"context"

	"github.com/MKhiriev/go-epr-sync/internal/app"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/store"
	"github.com/MKhiriev/go-epr-sync/models"
)

type recordService struct {
	records store.RecordRepository
	logger  *logger.Logger
}

func NewRecordService(records store.RecordRepository, logger *logger.Logger) RecordService {
	return &recordService{
		records: records,
		logger:  logger,
	}
}

// Accept implements RecordService. A record resent after a lost ack maps to
// the server id it got the first time.
func (s *recordService) Accept(ctx context.Context, clientID string, item models.RecordBatchItem) models.RecordAck {
	serverID, err := s.records.SaveRecord(ctx, clientID, item.Record)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "recordService.Accept").
			Str("client_id", clientID).
			Int64("local_id", item.Record.LocalID).
			Msg("record not stored")
		return models.RecordAck{
			LocalID: item.Record.LocalID,
			Message: app.MsgRecordNotStored,
			Failed:  true,
		}
	}

	return models.RecordAck{
		LocalID:  item.Record.LocalID,
		ServerID: serverID,
		Message:  app.MsgRecordStored,
	}
}
