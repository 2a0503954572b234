package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-epr-sync/internal/app"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/mock"
	"github.com/MKhiriev/go-epr-sync/internal/store"
	"github.com/MKhiriev/go-epr-sync/models"
)

func TestQueryService_Answer(t *testing.T) {
	ctx := context.Background()
	record := validItem(3).Record

	tests := []struct {
		name    string
		req     models.QueryRequest
		setup   func(records *mock.MockRecordRepository, clients *mock.MockClientRepository)
		check   func(t *testing.T, resp models.QueryResponse)
		wantMsg string
	}{
		{
			name: "record found",
			req:  models.QueryRequest{Kind: models.QueryKindRecord, Params: map[string]string{ParamServerID: "901"}},
			setup: func(records *mock.MockRecordRepository, _ *mock.MockClientRepository) {
				records.EXPECT().GetRecord(ctx, "amb-01", int64(901)).Return(record, nil)
			},
			check: func(t *testing.T, resp models.QueryResponse) {
				require.NotNil(t, resp.Record)
				assert.Equal(t, "M-77", resp.Record.Header.MissionNumber)
				assert.False(t, resp.Failed)
			},
			wantMsg: app.MsgResponseReceived,
		},
		{
			name: "record not found",
			req:  models.QueryRequest{Kind: models.QueryKindRecord, Params: map[string]string{ParamServerID: "5"}},
			setup: func(records *mock.MockRecordRepository, _ *mock.MockClientRepository) {
				records.EXPECT().GetRecord(ctx, "amb-01", int64(5)).Return(models.PendingRecord{}, store.ErrRecordNotFound)
			},
			wantMsg: app.MsgRecordNotFound,
		},
		{
			name:    "server id not a number",
			req:     models.QueryRequest{Kind: models.QueryKindRecord, Params: map[string]string{ParamServerID: "abc"}},
			wantMsg: app.MsgInvalidQuery,
		},
		{
			name:    "server id missing",
			req:     models.QueryRequest{Kind: models.QueryKindRecord},
			wantMsg: app.MsgInvalidQuery,
		},
		{
			name: "client status",
			req:  models.QueryRequest{Kind: models.QueryKindClientStatus},
			setup: func(_ *mock.MockRecordRepository, clients *mock.MockClientRepository) {
				clients.EXPECT().GetClientState(ctx, "amb-01").Return(models.ServerClientState{ClientID: "amb-01", AckedWatermark: ptr(30)}, nil)
			},
			check: func(t *testing.T, resp models.QueryResponse) {
				require.NotNil(t, resp.ClientState)
				assert.Equal(t, ptr(30), resp.ClientState.AckedWatermark)
				assert.Nil(t, resp.Record)
			},
			wantMsg: app.MsgResponseReceived,
		},
		{
			name: "client status unknown",
			req:  models.QueryRequest{Kind: models.QueryKindClientStatus},
			setup: func(_ *mock.MockRecordRepository, clients *mock.MockClientRepository) {
				clients.EXPECT().GetClientState(ctx, "amb-01").Return(models.ServerClientState{}, store.ErrUnknownClient)
			},
			wantMsg: app.MsgUnknownClient,
		},
		{
			name: "client status store failure",
			req:  models.QueryRequest{Kind: models.QueryKindClientStatus},
			setup: func(_ *mock.MockRecordRepository, clients *mock.MockClientRepository) {
				clients.EXPECT().GetClientState(ctx, "amb-01").Return(models.ServerClientState{}, errors.New("too many connections"))
			},
			wantMsg: app.MsgInternalServerError,
		},
		{
			name:    "unknown kind",
			req:     models.QueryRequest{Kind: "weather"},
			wantMsg: app.MsgUnknownQuery,
		},
		{
			name:    "empty kind",
			req:     models.QueryRequest{},
			wantMsg: app.MsgInvalidQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			records := mock.NewMockRecordRepository(ctrl)
			clients := mock.NewMockClientRepository(ctrl)
			if tt.setup != nil {
				tt.setup(records, clients)
			}

			resp := NewQueryService(records, clients, logger.Nop()).Answer(ctx, "amb-01", tt.req)

			assert.Equal(t, tt.wantMsg, resp.Message)
			if tt.check != nil {
				tt.check(t, resp)
			} else {
				assert.True(t, resp.Failed)
			}
		})
	}
}
