package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-epr-sync/internal/app"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/mock"
	"github.com/MKhiriev/go-epr-sync/models"
)

func validItem(localID int64) models.RecordBatchItem {
	return models.RecordBatchItem{Record: models.PendingRecord{
		LocalID:   localID,
		CreatedAt: time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC),
		Header:    models.RecordHeader{MissionNumber: "M-77"},
	}}
}

func TestRecordService_Accept(t *testing.T) {
	ctrl := gomock.NewController(t)
	records := mock.NewMockRecordRepository(ctrl)
	svc := NewRecordValidationService().Wrap(NewRecordService(records, logger.Nop()))
	ctx := context.Background()

	t.Run("stored", func(t *testing.T) {
		records.EXPECT().SaveRecord(ctx, "amb-01", validItem(4).Record).Return(int64(901), nil)

		ack := svc.Accept(ctx, "amb-01", validItem(4))

		assert.Equal(t, models.RecordAck{LocalID: 4, ServerID: 901, Message: app.MsgRecordStored}, ack)
	})

	t.Run("store failure", func(t *testing.T) {
		records.EXPECT().SaveRecord(ctx, "amb-01", gomock.Any()).Return(int64(0), errors.New("deadlock detected"))

		ack := svc.Accept(ctx, "amb-01", validItem(5))

		assert.True(t, ack.Failed)
		assert.Equal(t, int64(5), ack.LocalID)
		assert.Equal(t, app.MsgRecordNotStored, ack.Message)
	})

	t.Run("invalid record never reaches the store", func(t *testing.T) {
		item := validItem(6)
		item.Record.Header.MissionNumber = ""

		ack := svc.Accept(ctx, "amb-01", item)

		assert.True(t, ack.Failed)
		assert.Equal(t, int64(6), ack.LocalID)
	})
}
