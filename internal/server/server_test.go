package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-epr-sync/internal/channel"
	"github.com/MKhiriev/go-epr-sync/internal/config"
	"github.com/MKhiriev/go-epr-sync/internal/handler"
	"github.com/MKhiriev/go-epr-sync/internal/identity"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/metrics"
	"github.com/MKhiriev/go-epr-sync/internal/mock/servicemock"
	"github.com/MKhiriev/go-epr-sync/internal/protocol"
	"github.com/MKhiriev/go-epr-sync/internal/service"
	"github.com/MKhiriev/go-epr-sync/internal/testutil"
	"github.com/MKhiriev/go-epr-sync/internal/utils"
	"github.com/MKhiriev/go-epr-sync/models"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func newTestServer(t *testing.T, pki *testutil.PKI, services *service.Services, m *metrics.Metrics) *server {
	t.Helper()

	handlers, err := handler.NewHandlers(services, m, logger.Nop())
	require.NoError(t, err)

	cfg := &config.ServerConfig{
		Identity: pki.ServerIdentity(),
		Server: config.Server{
			QueryAddress:      "127.0.0.1:0",
			ConnectionTimeout: 5 * time.Second,
		},
	}
	srv, err := NewServer(handlers, nil, m, nil, cfg, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestServer_QueryRoundTrip(t *testing.T) {
	pki := testutil.NewPKI(t)
	ctrl := gomock.NewController(t)
	queries := servicemock.NewMockQueryService(ctrl)
	m := metrics.New()

	req := models.QueryRequest{Kind: models.QueryKindClientStatus}
	queries.EXPECT().
		Answer(gomock.Any(), "RTW-7", req).
		Return(models.QueryResponse{Message: "response received"})

	s := newTestServer(t, pki, &service.Services{QueryService: queries}, m)
	require.Len(t, s.flows, 1)

	host, portStr, err := net.SplitHostPort(s.flows[0].listener.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		s.run(ctx)
		close(stopped)
	}()

	provider := identity.NewFileProvider(&config.ClientConfig{
		App:      config.ClientApp{ClientID: "RTW-7"},
		Identity: pki.ClientIdentity("RTW-7"),
	})
	dialer := channel.NewTLSDialer(provider, protocol.NewCodec(utils.NewUUIDGenerator()), 2*time.Second, 2*time.Second, logger.Nop())

	conn, err := dialer.Open(context.Background(), host, port)
	require.NoError(t, err)
	require.NoError(t, conn.SendObject(context.Background(), req))

	var resp models.QueryResponse
	require.NoError(t, conn.ReceiveObject(context.Background(), &resp))
	assert.False(t, resp.Failed)
	assert.Equal(t, "response received", resp.Message)
	require.NoError(t, conn.Close())

	cancel()
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = dialer.Open(context.Background(), host, port)
	assert.Error(t, err)
}

func TestNewServer_NoAddresses(t *testing.T) {
	pki := testutil.NewPKI(t)
	handlers, err := handler.NewHandlers(&service.Services{}, metrics.New(), logger.Nop())
	require.NoError(t, err)

	_, err = NewServer(handlers, nil, metrics.New(), nil, &config.ServerConfig{Identity: pki.ServerIdentity()}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_BadIdentity(t *testing.T) {
	handlers, err := handler.NewHandlers(&service.Services{}, metrics.New(), logger.Nop())
	require.NoError(t, err)

	cfg := &config.ServerConfig{
		Identity: config.Identity{CertFile: "missing.crt", KeyFile: "missing.key", CAFile: "missing.ca"},
		Server:   config.Server{QueryAddress: "127.0.0.1:0"},
	}
	_, err = NewServer(handlers, nil, metrics.New(), nil, cfg, logger.Nop())
	assert.Error(t, err)
}

func TestRouter(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		ping       error
		wantStatus int
		wantBody   string
	}{
		{name: "healthy", path: "/healthz", wantStatus: http.StatusOK, wantBody: "ok"},
		{name: "store down", path: "/healthz", ping: errors.New("db down"), wantStatus: http.StatusServiceUnavailable},
		{name: "metrics", path: "/metrics", wantStatus: http.StatusOK, wantBody: "epr_sync_"},
		{name: "unknown path", path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := metrics.New()
			m.EntriesServed.Add(1)
			router := newRouter(m, pingerFunc(func(context.Context) error { return tt.ping }), logger.Nop())

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
