package service

import (
	"context"
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

func newTestQueryService(t *testing.T) (ClientQueryService, *mock.MockDialer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	dialer := mock.NewMockDialer(ctrl)
	return NewClientQueryService(dialer, newTestProvider(ctrl), time.Millisecond, logger.Nop()), dialer
}

var statusQuery = models.QueryRequest{Kind: models.QueryKindClientStatus}

func TestClientQueryService_Query_RetriesUntilConnected(t *testing.T) {
	svc, dialer := newTestQueryService(t)

	conn := newFakeConn()
	conn.respond = func(models.Message) (models.Message, bool) {
		return models.QueryResponse{
			ClientState: &models.ServerClientState{ClientID: "amb-01", AckedWatermark: ptr(30)},
			Message:     app.MsgResponseReceived,
		}, true
	}
	gomock.InOrder(
		dialer.EXPECT().Open(gomock.Any(), "server.test", 7000).Return(nil, channel.ErrConnectFailed).Times(3),
		dialer.EXPECT().Open(gomock.Any(), "server.test", 7000).Return(conn, nil),
	)

	rec := &statusRecorder{}
	resp, err := svc.Query(context.Background(), statusQuery, rec.record)

	require.NoError(t, err)
	require.NotNil(t, resp.ClientState)
	assert.Equal(t, ptr(30), resp.ClientState.AckedWatermark)
	assert.Equal(t, models.StateDone, rec.last().State)
	assert.Equal(t, []models.Message{statusQuery}, conn.Sent())
}

// A failed send discards the channel and the next attempt dials again.
func TestClientQueryService_Query_RetriesSend(t *testing.T) {
	svc, dialer := newTestQueryService(t)

	broken := newFakeConn()
	broken.failSend = func(int, models.Message) error { return channel.ErrTransport }
	good := newFakeConn()
	good.respond = func(models.Message) (models.Message, bool) {
		return models.QueryResponse{Message: app.MsgResponseReceived}, true
	}
	gomock.InOrder(
		dialer.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).Return(broken, nil),
		dialer.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).Return(good, nil),
	)

	_, err := svc.Query(context.Background(), statusQuery, nil)

	require.NoError(t, err)
	assert.ErrorIs(t, broken.SendObject(context.Background(), statusQuery), channel.ErrClosed)
}

func TestClientQueryService_Query_CertificateErrorNotRetried(t *testing.T) {
	svc, dialer := newTestQueryService(t)
	dialer.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, channel.ErrCertInvalid).Times(1)

	rec := &statusRecorder{}
	_, err := svc.Query(context.Background(), statusQuery, rec.record)

	assert.ErrorIs(t, err, ErrCredential)
	assert.Equal(t, app.MsgCertificateRejected, rec.last().Message)
}

func TestClientQueryService_Query_CancelWhileAwaiting(t *testing.T) {
	svc, dialer := newTestQueryService(t)
	conn := newFakeConn()
	dialer.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).Return(conn, nil)

	ctx, cancel := context.WithCancel(context.Background())
	rec := &statusRecorder{}
	done := make(chan error, 1)
	go func() {
		_, err := svc.Query(ctx, statusQuery, rec.record)
		done <- err
	}()

	require.Eventually(t, func() bool { return len(conn.Sent()) == 1 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrCancelled)
	case <-time.After(time.Second):
		t.Fatal("query did not return after cancel")
	}
	assert.Equal(t, models.FlowStatus{Flow: models.FlowQuery, State: models.StateCancelled, Message: app.MsgCancelled}, rec.last())
}

func TestClientQueryService_Query_CancelWhileRetrying(t *testing.T) {
	svc, dialer := newTestQueryService(t)

	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	dialer.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, int) (channel.Conn, error) {
			attempts++
			if attempts == 2 {
				cancel()
			}
			return nil, channel.ErrConnectFailed
		}).MinTimes(2)

	_, err := svc.Query(ctx, statusQuery, nil)

	assert.ErrorIs(t, err, ErrCancelled)
}

func TestClientQueryService_Query_RejectedAndMalformed(t *testing.T) {
	t.Run("rejected", func(t *testing.T) {
		svc, dialer := newTestQueryService(t)
		conn := newFakeConn().reply(models.QueryResponse{Message: app.MsgRecordNotFound, Failed: true})
		dialer.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).Return(conn, nil)

		rec := &statusRecorder{}
		_, err := svc.Query(context.Background(), statusQuery, rec.record)

		assert.ErrorIs(t, err, ErrServerRejection)
		assert.Equal(t, app.MsgRecordNotFound, rec.last().Message)
	})

	t.Run("malformed", func(t *testing.T) {
		svc, dialer := newTestQueryService(t)
		conn := mock.NewMockConn(gomock.NewController(t))
		conn.EXPECT().SendObject(gomock.Any(), statusQuery).Return(nil)
		conn.EXPECT().ReceiveObject(gomock.Any(), gomock.Any()).Return(protocol.ErrMalformedFrame)
		conn.EXPECT().Close().Return(nil).AnyTimes()
		dialer.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).Return(conn, nil)

		_, err := svc.Query(context.Background(), statusQuery, nil)

		assert.ErrorIs(t, err, ErrProtocol)
		assert.NotErrorIs(t, err, ErrNetwork)
	})
}
