// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-epr-sync/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldLocalID targets the client-side primary key of a record.
	FieldLocalID = "local_id"

	// FieldCreatedAt targets the creation time that forms part of the
	// server-side idempotency key.
	FieldCreatedAt = "created_at"

	// FieldMissionNumber targets the mission identification of the header.
	FieldMissionNumber = "mission_number"

	// FieldClientID targets the vehicle identity of a sync request.
	FieldClientID = "client_id"

	// FieldWatermark targets the optional watermark of requests and acks.
	FieldWatermark = "watermark"

	// FieldKind targets the kind of a query request.
	FieldKind = "kind"
)

// MessageValidator checks inbound wire messages on the server before they
// reach the services.
type MessageValidator struct{}

func NewMessageValidator() Validator {
	return &MessageValidator{}
}

// Validate dispatches on the message type. Optional fields restrict
// validation to the named subset; without them every field of the message is
// checked. Returns ErrUnsupportedType for unknown types.
func (v *MessageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RecordBatchItem:
		return v.validateRecord(ctx, value.Record, fields...)
	case *models.RecordBatchItem:
		return v.validateRecord(ctx, value.Record, fields...)

	case models.PendingRecord:
		return v.validateRecord(ctx, value, fields...)

	case models.SyncRequest:
		return v.validateSyncRequest(ctx, value, fields...)
	case *models.SyncRequest:
		return v.validateSyncRequest(ctx, *value, fields...)

	case models.SyncAck:
		return validateWatermark(value.Watermark)
	case *models.SyncAck:
		return validateWatermark(value.Watermark)

	case models.QueryRequest:
		return v.validateQueryRequest(ctx, value, fields...)
	case *models.QueryRequest:
		return v.validateQueryRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRecord checks a pushed record.
//
// Default validated fields: LocalID, CreatedAt, MissionNumber.
func (v *MessageValidator) validateRecord(_ context.Context, record models.PendingRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLocalID, FieldCreatedAt, FieldMissionNumber}
	}

	for _, f := range fields {
		switch f {
		case FieldLocalID:
			if record.LocalID <= 0 {
				return ErrInvalidLocalID
			}
		case FieldCreatedAt:
			if record.CreatedAt.IsZero() {
				return ErrEmptyCreatedAt
			}
		case FieldMissionNumber:
			if record.Header.MissionNumber == "" {
				return ErrEmptyMissionNumber
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSyncRequest checks a sync request.
//
// Default validated fields: ClientID, Watermark. Blocked user ids are
// answered one by one by the sync service.
func (v *MessageValidator) validateSyncRequest(_ context.Context, req models.SyncRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientID, FieldWatermark}
	}

	for _, f := range fields {
		switch f {
		case FieldClientID:
			if req.ClientID == "" {
				return ErrEmptyClientID
			}
		case FieldWatermark:
			if err := validateWatermark(req.Watermark); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MessageValidator) validateQueryRequest(_ context.Context, req models.QueryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKind}
	}

	for _, f := range fields {
		switch f {
		case FieldKind:
			if req.Kind == "" {
				return ErrEmptyQueryKind
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateWatermark(watermark *int64) error {
	if watermark != nil && *watermark < 0 {
		return ErrInvalidWatermark
	}
	return nil
}
