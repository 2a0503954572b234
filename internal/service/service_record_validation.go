package service

import (
	"context"

	"github.com/MKhiriev/go-epr-sync/internal/app"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/validators"
	"github.com/MKhiriev/go-epr-sync/models"
)

// RecordValidationService rejects malformed records before they reach the
// store.
type RecordValidationService struct {
	inner     RecordService
	validator validators.Validator
}

func NewRecordValidationService() RecordServiceWrapper {
	return &RecordValidationService{
		validator: validators.NewMessageValidator(),
	}
}

func (v *RecordValidationService) Wrap(inner RecordService) RecordService {
	v.inner = inner
	return v
}

func (v *RecordValidationService) Accept(ctx context.Context, clientID string, item models.RecordBatchItem) models.RecordAck {
	if err := v.validator.Validate(ctx, item); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "RecordValidationService.Accept").
			Int64("local_id", item.Record.LocalID).
			Msg("invalid record")
		return models.RecordAck{
			LocalID: item.Record.LocalID,
			Message: app.MsgRecordNotStored,
			Failed:  true,
		}
	}

	return v.inner.Accept(ctx, clientID, item)
}
