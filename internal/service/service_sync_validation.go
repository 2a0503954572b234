package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-epr-sync/internal/app"
	"github.com/MKhiriev/go-epr-sync/internal/validators"
	"github.com/MKhiriev/go-epr-sync/models"
)

// SyncValidationService checks sync requests and acks before the inner
// service sees them.
type SyncValidationService struct {
	inner     SyncService
	validator validators.Validator
}

func NewSyncValidationService() SyncServiceWrapper {
	return &SyncValidationService{
		validator: validators.NewMessageValidator(),
	}
}

func (v *SyncValidationService) Wrap(inner SyncService) SyncService {
	v.inner = inner
	return v
}

func (v *SyncValidationService) Begin(ctx context.Context, peerID string, req models.SyncRequest) (models.SyncResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SyncResponse{
			Entries: []models.MutationLogEntry{},
			Message: app.MsgInvalidRequest,
			Failed:  true,
		}, fmt.Errorf("error during sync request validation: %w", err)
	}

	return v.inner.Begin(ctx, peerID, req)
}

func (v *SyncValidationService) Acknowledge(ctx context.Context, clientID string, ack models.SyncAck) error {
	if err := v.validator.Validate(ctx, ack); err != nil {
		return fmt.Errorf("error during sync ack validation: %w", err)
	}

	return v.inner.Acknowledge(ctx, clientID, ack)
}

func (v *SyncValidationService) Provision(ctx context.Context, clientIDs []string) error {
	return v.inner.Provision(ctx, clientIDs)
}
