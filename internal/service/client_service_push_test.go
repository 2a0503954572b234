package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-epr-sync/internal/app"
	"github.com/MKhiriev/go-epr-sync/internal/channel"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/mock"
	"github.com/MKhiriev/go-epr-sync/internal/protocol"
	"github.com/MKhiriev/go-epr-sync/models"
)

func pendingRecords(ids ...int64) []models.PendingRecord {
	out := make([]models.PendingRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.PendingRecord{
			LocalID:   id,
			CreatedAt: time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC),
			Header:    models.RecordHeader{MissionNumber: "M-1", VehicleID: "RTW-1", CrewMemberID: "c-1"},
		})
	}
	return out
}

// ackEverything answers each record with a successful ack.
func ackEverything(msg models.Message) (models.Message, bool) {
	item, ok := msg.(models.RecordBatchItem)
	if !ok {
		return nil, false
	}
	return models.RecordAck{LocalID: item.Record.LocalID, ServerID: 1000 + item.Record.LocalID, Message: app.MsgRecordStored}, true
}

func newTestPushService(t *testing.T, rounds int) (*clientPushService, *mock.MockLocalRecordRepository, *mock.MockDialer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	records := mock.NewMockLocalRecordRepository(ctrl)
	dialer := mock.NewMockDialer(ctrl)

	svc := NewClientPushService(records, dialer, newTestProvider(ctrl), rounds, time.Millisecond, 200*time.Millisecond, logger.Nop())
	return svc.(*clientPushService), records, dialer
}

func TestClientPushService_Push_NoPendingRecords(t *testing.T) {
	svc, records, _ := newTestPushService(t, 5)
	records.EXPECT().ListPendingRecords(gomock.Any()).Return(nil, nil)

	rec := &statusRecorder{}
	res, err := svc.Push(context.Background(), rec.record, nil)

	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.Equal(t, models.FlowStatus{Flow: models.FlowPush, State: models.StateDone, Message: app.MsgNoPendingRecords}, rec.last())
}

func TestClientPushService_Push_SingleRound(t *testing.T) {
	svc, records, dialer := newTestPushService(t, 5)
	conn := newFakeConn()
	conn.respond = ackEverything

	records.EXPECT().ListPendingRecords(gomock.Any()).Return(pendingRecords(1, 2, 3), nil)
	dialer.EXPECT().Open(gomock.Any(), "server.test", 7000).Return(conn, nil).Times(1)
	gomock.InOrder(
		records.EXPECT().DeleteRecord(gomock.Any(), int64(1)).Return(nil),
		records.EXPECT().DeleteRecord(gomock.Any(), int64(2)).Return(nil),
		records.EXPECT().DeleteRecord(gomock.Any(), int64(3)).Return(nil),
	)

	var acks []models.RecordAck
	rec := &statusRecorder{}
	res, err := svc.Push(context.Background(), rec.record, func(ack models.RecordAck) { acks = append(acks, ack) })

	require.NoError(t, err)
	assert.Equal(t, PushResult{Total: 3, Rounds: 1, Sent: 3, Acked: 3}, res)
	require.Len(t, acks, 3)
	assert.Equal(t, int64(1003), acks[2].ServerID)

	sent := conn.Sent()
	require.Len(t, sent, 3)
	for i, msg := range sent {
		item := msg.(models.RecordBatchItem)
		assert.Equal(t, int64(i+1), item.Record.LocalID)
		assert.Equal(t, i == 2, item.Last, "only the final item is flagged last")
	}

	assert.Equal(t, []models.FlowState{models.StateConnecting, models.StateSending, models.StateDone}, rec.states())
	assert.Equal(t, "3 of 3 records transmitted", rec.last().Message)
}

// Record 1 sends and acks in round 1, record 2 fails in round 1 and goes out
// in round 2. No third round is attempted.
func TestClientPushService_Push_SecondRoundFinishesBatch(t *testing.T) {
	svc, records, dialer := newTestPushService(t, 5)

	first := newFakeConn()
	first.respond = ackEverything
	first.failSend = func(n int, _ models.Message) error {
		if n == 1 {
			return channel.ErrTransport
		}
		return nil
	}
	second := newFakeConn()
	second.respond = ackEverything

	records.EXPECT().ListPendingRecords(gomock.Any()).Return(pendingRecords(1, 2), nil)
	gomock.InOrder(
		dialer.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).Return(first, nil),
		dialer.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).Return(second, nil),
	)
	records.EXPECT().DeleteRecord(gomock.Any(), int64(1)).Return(nil).Times(1)
	records.EXPECT().DeleteRecord(gomock.Any(), int64(2)).Return(nil).Times(1)

	res, err := svc.Push(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 2, res.Rounds)
	assert.Equal(t, 2, res.Acked)

	require.Len(t, second.Sent(), 1)
	item := second.Sent()[0].(models.RecordBatchItem)
	assert.Equal(t, int64(2), item.Record.LocalID)
	assert.True(t, item.Last)
}

// A record the codec refuses stays pending while the records behind it are
// still sent and acked on the same channel.
func TestClientPushService_Push_UnencodableRecordDoesNotBlockBatch(t *testing.T) {
	tests := []struct {
		name      string
		encodeErr error
	}{
		{name: "frame too large", encodeErr: fmt.Errorf("%w: 9000000 bytes", protocol.ErrFrameTooLarge)},
		{name: "malformed", encodeErr: fmt.Errorf("%w: encode record_batch_item", protocol.ErrMalformedFrame)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, records, dialer := newTestPushService(t, 3)

			var conns []*fakeConn
			dialer.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(context.Context, string, int) (channel.Conn, error) {
					conn := newFakeConn()
					conn.respond = ackEverything
					conn.failSend = func(_ int, msg models.Message) error {
						if msg.(models.RecordBatchItem).Record.LocalID == 1 {
							return tt.encodeErr
						}
						return nil
					}
					conns = append(conns, conn)
					return conn, nil
				}).Times(3)

			records.EXPECT().ListPendingRecords(gomock.Any()).Return(pendingRecords(1, 2, 3), nil)
			records.EXPECT().DeleteRecord(gomock.Any(), int64(2)).Return(nil).Times(1)
			records.EXPECT().DeleteRecord(gomock.Any(), int64(3)).Return(nil).Times(1)

			res, err := svc.Push(context.Background(), nil, nil)

			require.ErrorIs(t, err, ErrBoundedAttempts)
			assert.Equal(t, PushResult{Total: 3, Rounds: 3, Sent: 2, Acked: 2}, res)

			require.Len(t, conns, 3)
			first := conns[0].Sent()
			require.Len(t, first, 2, "records behind the refused one go out on the same channel")
			assert.Equal(t, int64(2), first[0].(models.RecordBatchItem).Record.LocalID)
			assert.Equal(t, int64(3), first[1].(models.RecordBatchItem).Record.LocalID)
			assert.Empty(t, conns[1].Sent())
			assert.Empty(t, conns[2].Sent())
		})
	}
}

func TestClientPushService_Push_NeverConnects(t *testing.T) {
	svc, records, dialer := newTestPushService(t, 5)

	records.EXPECT().ListPendingRecords(gomock.Any()).Return(pendingRecords(1, 2), nil)
	dialer.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, channel.ErrConnectFailed).Times(5)
	records.EXPECT().DeleteRecord(gomock.Any(), gomock.Any()).Times(0)

	rec := &statusRecorder{}
	res, err := svc.Push(context.Background(), rec.record, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBoundedAttempts)
	assert.ErrorIs(t, err, ErrConnect)
	assert.Equal(t, 5, res.Rounds)
	assert.Zero(t, res.Acked)
	assert.Equal(t, models.StateFailed, rec.last().State)
	assert.Equal(t, "transmission failed after 5 attempts", rec.last().Message)
}

func TestClientPushService_Push_CertificateRejectedIsNotRetried(t *testing.T) {
	svc, records, dialer := newTestPushService(t, 5)

	records.EXPECT().ListPendingRecords(gomock.Any()).Return(pendingRecords(1), nil)
	dialer.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, channel.ErrCertInvalid).Times(1)

	rec := &statusRecorder{}
	res, err := svc.Push(context.Background(), rec.record, nil)

	assert.ErrorIs(t, err, ErrCredential)
	assert.NotErrorIs(t, err, ErrBoundedAttempts)
	assert.Equal(t, 1, res.Rounds)
	assert.Equal(t, app.MsgCertificateRejected, rec.last().Message)
}

func TestClientPushService_Push_FailedAckKeepsRecord(t *testing.T) {
	svc, records, dialer := newTestPushService(t, 5)
	conn := newFakeConn()
	conn.respond = func(msg models.Message) (models.Message, bool) {
		item := msg.(models.RecordBatchItem)
		if item.Record.LocalID == 2 {
			return models.RecordAck{LocalID: 2, Message: app.MsgRecordNotStored, Failed: true}, true
		}
		return ackEverything(msg)
	}

	records.EXPECT().ListPendingRecords(gomock.Any()).Return(pendingRecords(1, 2), nil)
	dialer.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).Return(conn, nil)
	records.EXPECT().DeleteRecord(gomock.Any(), int64(1)).Return(nil)

	res, err := svc.Push(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Acked)
	assert.Equal(t, 1, res.Rejected)
}

// A complete send with a silent server leaves every record pending.
func TestClientPushService_Push_MissingAcks(t *testing.T) {
	svc, records, dialer := newTestPushService(t, 5)
	svc.ackTimeout = 20 * time.Millisecond
	conn := newFakeConn()

	records.EXPECT().ListPendingRecords(gomock.Any()).Return(pendingRecords(1, 2), nil)
	dialer.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).Return(conn, nil).Times(1)
	records.EXPECT().DeleteRecord(gomock.Any(), gomock.Any()).Times(0)

	res, err := svc.Push(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 2, res.Sent)
	assert.Zero(t, res.Acked)
}

func TestClientPushService_Push_AckOutOfOrderIsProtocolError(t *testing.T) {
	svc, records, dialer := newTestPushService(t, 1)
	conn := newFakeConn()
	conn.reply(models.RecordAck{LocalID: 9, ServerID: 1})

	records.EXPECT().ListPendingRecords(gomock.Any()).Return(pendingRecords(1, 2), nil)
	dialer.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).Return(conn, nil)

	_, err := svc.Push(context.Background(), nil, nil)

	assert.ErrorIs(t, err, ErrProtocol)
}

func TestClientPushService_Push_ListFails(t *testing.T) {
	svc, records, _ := newTestPushService(t, 5)
	records.EXPECT().ListPendingRecords(gomock.Any()).Return(nil, errors.New("disk I/O error"))

	rec := &statusRecorder{}
	_, err := svc.Push(context.Background(), rec.record, nil)

	assert.ErrorIs(t, err, ErrLocalStore)
	assert.Equal(t, app.MsgLocalStoreFailed, rec.last().Message)
}

func TestClientPushService_Push_Cancelled(t *testing.T) {
	svc, records, dialer := newTestPushService(t, 5)
	svc.roundDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	records.EXPECT().ListPendingRecords(gomock.Any()).Return(pendingRecords(1), nil)
	dialer.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, int) (channel.Conn, error) {
			cancel()
			return nil, channel.ErrConnectFailed
		})

	rec := &statusRecorder{}
	_, err := svc.Push(ctx, rec.record, nil)

	assert.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, models.StateCancelled, rec.last().State)
}

func TestNewClientPushService_FloorsRounds(t *testing.T) {
	svc, _, _ := newTestPushService(t, 0)
	assert.Equal(t, 1, svc.rounds)
}
