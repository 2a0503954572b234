// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

type syncServiceMocks struct {
	clients  *mock.MockClientRepository
	log      *mock.MockMutationLogRepository
	accounts *mock.MockAccountRepository
}

func newTestServerSyncService(t *testing.T) (SyncService, syncServiceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := syncServiceMocks{
		clients:  mock.NewMockClientRepository(ctrl),
		log:      mock.NewMockMutationLogRepository(ctrl),
		accounts: mock.NewMockAccountRepository(ctrl),
	}
	return NewSyncService(m.clients, m.log, m.accounts, logger.Nop()), m
}

func entries(ts ...int64) []models.MutationLogEntry {
	out := make([]models.MutationLogEntry, 0, len(ts))
	for _, t := range ts {
		out = append(out, models.MutationLogEntry{Timestamp: t, Statement: "SELECT 1"})
	}
	return out
}

func TestSyncService_Begin_Bootstrap(t *testing.T) {
	svc, m := newTestServerSyncService(t)
	ctx := context.Background()

	m.clients.EXPECT().GetClientState(ctx, "amb-01").Return(models.ServerClientState{ClientID: "amb-01"}, nil)
	m.log.EXPECT().Select(ctx, (*int64)(nil)).Return(entries(10, 20, 30), nil)
	m.clients.EXPECT().MarkServed(ctx, "amb-01", ptr(30), "").Return(nil)

	resp, err := svc.Begin(ctx, "amb-01", models.SyncRequest{ClientID: "amb-01"})

	require.NoError(t, err)
	assert.False(t, resp.Failed)
	assert.Len(t, resp.Entries, 3)
}

func TestSyncService_Begin_IncrementalWithoutNewEntries(t *testing.T) {
	svc, m := newTestServerSyncService(t)
	ctx := context.Background()

	m.clients.EXPECT().GetClientState(ctx, "amb-01").Return(models.ServerClientState{ClientID: "amb-01", AckedWatermark: ptr(30)}, nil)
	m.log.EXPECT().Select(ctx, ptr(30)).Return([]models.MutationLogEntry{}, nil)
	m.clients.EXPECT().MarkServed(ctx, "amb-01", (*int64)(nil), "").Return(nil)

	resp, err := svc.Begin(ctx, "amb-01", models.SyncRequest{ClientID: "amb-01", Watermark: ptr(30)})

	require.NoError(t, err)
	assert.Empty(t, resp.Entries)
}

// A request behind the acknowledged position is answered but nothing is
// recorded as served.
func TestSyncService_Begin_ResendDoesNotAdvance(t *testing.T) {
	tests := []struct {
		name      string
		watermark *int64
	}{
		{name: "older watermark", watermark: ptr(20)},
		{name: "bootstrap after ack", watermark: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestServerSyncService(t)
			ctx := context.Background()

			m.clients.EXPECT().GetClientState(ctx, "amb-01").Return(models.ServerClientState{ClientID: "amb-01", AckedWatermark: ptr(30)}, nil)
			m.log.EXPECT().Select(ctx, tt.watermark).Return(entries(30, 40), nil)
			m.clients.EXPECT().MarkServed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			resp, err := svc.Begin(ctx, "amb-01", models.SyncRequest{ClientID: "amb-01", Watermark: tt.watermark})

			require.NoError(t, err)
			assert.Len(t, resp.Entries, 2)
		})
	}
}

func TestSyncService_Begin_BlockedUsers(t *testing.T) {
	svc, m := newTestServerSyncService(t)
	ctx := context.Background()

	m.clients.EXPECT().GetClientState(ctx, "amb-01").Return(models.ServerClientState{ClientID: "amb-01"}, nil)
	gomock.InOrder(
		m.accounts.EXPECT().DisableUser(ctx, "u1").Return(false, nil),
		m.accounts.EXPECT().DisableUser(ctx, "u2").Return(true, nil),
		m.accounts.EXPECT().DisableUser(ctx, "u3").Return(false, store.ErrUserNotFound),
		m.log.EXPECT().Select(ctx, (*int64)(nil)).Return(entries(50), nil),
	)
	wantMessage := "user u1 disabled; user u2 already disabled; user u3 not found"
	m.clients.EXPECT().MarkServed(ctx, "amb-01", ptr(50), wantMessage).Return(nil)

	resp, err := svc.Begin(ctx, "amb-01", models.SyncRequest{ClientID: "amb-01", BlockedUserIDs: []string{"u1", "u2", "u3"}})

	require.NoError(t, err)
	assert.Equal(t, wantMessage, resp.Message)
	assert.Len(t, resp.Entries, 1)
}

func TestSyncService_Begin_BlankAndRepeatedBlockedIDs(t *testing.T) {
	svc, m := newTestServerSyncService(t)
	ctx := context.Background()

	m.clients.EXPECT().GetClientState(ctx, "amb-01").Return(models.ServerClientState{ClientID: "amb-01"}, nil)
	gomock.InOrder(
		m.accounts.EXPECT().DisableUser(ctx, "u1").Return(false, nil).Times(1),
		m.log.EXPECT().Select(ctx, (*int64)(nil)).Return(nil, nil),
	)
	wantMessage := "blank user id skipped; user u1 disabled; blank user id skipped"
	m.clients.EXPECT().MarkServed(ctx, "amb-01", (*int64)(nil), wantMessage).Return(nil)

	resp, err := svc.Begin(ctx, "amb-01", models.SyncRequest{ClientID: "amb-01", BlockedUserIDs: []string{"", "u1", "u1", "  "}})

	require.NoError(t, err)
	assert.False(t, resp.Failed)
	assert.Equal(t, wantMessage, resp.Message)
}

func TestSyncService_Begin_Rejections(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	tests := []struct {
		name    string
		peerID  string
		setup   func(m syncServiceMocks)
		wantMsg string
		wantErr error
	}{
		{
			name:    "certificate of another client",
			peerID:  "amb-02",
			setup:   func(syncServiceMocks) {},
			wantMsg: app.MsgClientMismatch,
			wantErr: ErrClientMismatch,
		},
		{
			name:   "unknown client",
			peerID: "amb-01",
			setup: func(m syncServiceMocks) {
				m.clients.EXPECT().GetClientState(ctx, "amb-01").Return(models.ServerClientState{}, store.ErrUnknownClient)
			},
			wantMsg: app.MsgUnknownClient,
			wantErr: store.ErrUnknownClient,
		},
		{
			name:   "disable fails",
			peerID: "amb-01",
			setup: func(m syncServiceMocks) {
				m.clients.EXPECT().GetClientState(ctx, "amb-01").Return(models.ServerClientState{ClientID: "amb-01"}, nil)
				m.accounts.EXPECT().DisableUser(ctx, "u1").Return(false, dbErr)
			},
			wantMsg: app.MsgInternalServerError,
			wantErr: dbErr,
		},
		{
			name:   "log selection fails",
			peerID: "amb-01",
			setup: func(m syncServiceMocks) {
				m.clients.EXPECT().GetClientState(ctx, "amb-01").Return(models.ServerClientState{ClientID: "amb-01"}, nil)
				m.accounts.EXPECT().DisableUser(ctx, "u1").Return(false, nil)
				m.log.EXPECT().Select(ctx, (*int64)(nil)).Return(nil, dbErr)
			},
			wantMsg: app.MsgInternalServerError,
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestServerSyncService(t)
			tt.setup(m)

			resp, err := svc.Begin(ctx, tt.peerID, models.SyncRequest{ClientID: "amb-01", BlockedUserIDs: []string{"u1"}})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, resp.Failed)
			assert.Equal(t, tt.wantMsg, resp.Message)
			assert.NotNil(t, resp.Entries)
		})
	}
}

func TestSyncService_Acknowledge(t *testing.T) {
	svc, m := newTestServerSyncService(t)
	ctx := context.Background()

	m.clients.EXPECT().StoreAck(ctx, "amb-01", ptr(30), "3 of 3 updates applied").Return(nil)
	require.NoError(t, svc.Acknowledge(ctx, "amb-01", models.SyncAck{Watermark: ptr(30), Message: "3 of 3 updates applied"}))

	m.clients.EXPECT().StoreAck(ctx, "amb-02", (*int64)(nil), "").Return(store.ErrUnknownClient)
	assert.ErrorIs(t, svc.Acknowledge(ctx, "amb-02", models.SyncAck{}), store.ErrUnknownClient)
}

func TestSyncService_Provision(t *testing.T) {
	svc, m := newTestServerSyncService(t)
	ctx := context.Background()

	gomock.InOrder(
		m.clients.EXPECT().EnsureClient(ctx, "amb-01").Return(nil),
		m.clients.EXPECT().EnsureClient(ctx, "amb-02").Return(errors.New("boom")),
	)

	err := svc.Provision(ctx, []string{"amb-01", "", "amb-02", "amb-03"})
	assert.ErrorContains(t, err, "amb-02")
}

func TestSyncValidationService(t *testing.T) {
	inner, m := newTestServerSyncService(t)
	svc := NewSyncValidationService().Wrap(inner)
	ctx := context.Background()

	resp, err := svc.Begin(ctx, "amb-01", models.SyncRequest{ClientID: "amb-01", Watermark: ptr(-1)})
	assert.Error(t, err)
	assert.True(t, resp.Failed)
	assert.Equal(t, app.MsgInvalidRequest, resp.Message)

	// a blank blocked id does not reject the request
	m.clients.EXPECT().GetClientState(ctx, "amb-01").Return(models.ServerClientState{ClientID: "amb-01"}, nil)
	m.log.EXPECT().Select(ctx, (*int64)(nil)).Return(nil, nil)
	m.clients.EXPECT().MarkServed(ctx, "amb-01", (*int64)(nil), app.MsgUserIDBlank).Return(nil)
	resp, err = svc.Begin(ctx, "amb-01", models.SyncRequest{ClientID: "amb-01", BlockedUserIDs: []string{""}})
	require.NoError(t, err)
	assert.False(t, resp.Failed)
	assert.Equal(t, app.MsgUserIDBlank, resp.Message)

	assert.Error(t, svc.Acknowledge(ctx, "amb-01", models.SyncAck{Watermark: ptr(-5)}))

	m.clients.EXPECT().StoreAck(ctx, "amb-01", ptr(5), "").Return(nil)
	assert.NoError(t, svc.Acknowledge(ctx, "amb-01", models.SyncAck{Watermark: ptr(5)}))
}

func TestIsResend(t *testing.T) {
	tests := []struct {
		name             string
		requested, acked *int64
		want             bool
	}{
		{name: "never acked", requested: nil, acked: nil, want: false},
		{name: "first incremental", requested: ptr(10), acked: nil, want: false},
		{name: "in step", requested: ptr(30), acked: ptr(30), want: false},
		{name: "ahead of ack", requested: ptr(40), acked: ptr(30), want: false},
		{name: "behind ack", requested: ptr(20), acked: ptr(30), want: true},
		{name: "bootstrap after ack", requested: nil, acked: ptr(30), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isResend(tt.requested, tt.acked))
		})
	}
}
