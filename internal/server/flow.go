package server

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/MKhiriev/go-epr-sync/internal/channel"
	"github.com/MKhiriev/go-epr-sync/internal/handler"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/metrics"
	"github.com/MKhiriev/go-epr-sync/models"
)

// acceptRetryDelay spaces out retries after a temporary accept failure.
const acceptRetryDelay = 50 * time.Millisecond

// flowServer accepts the connections of one flow and runs each conversation
// on its own goroutine.
type flowServer struct {
	flow     models.Flow
	listener *channel.Listener
	conv     handler.Conversation
	timeout  time.Duration
	metrics  *metrics.Metrics
	logger   *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newFlowServer(
	flow models.Flow,
	listener *channel.Listener,
	conv handler.Conversation,
	timeout time.Duration,
	m *metrics.Metrics,
	logger *logger.Logger,
) *flowServer {
	ctx, cancel := context.WithCancel(context.Background())
	return &flowServer{
		flow:     flow,
		listener: listener,
		conv:     conv,
		timeout:  timeout,
		metrics:  m,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (f *flowServer) RunServer() {
	f.logger.Info().Str("flow", string(f.flow)).Str("addr", f.listener.Addr().String()).Msg("listening")

	for {
		conn, err := f.listener.Accept()
		if errors.Is(err, net.ErrClosed) {
			return
		}
		if err != nil {
			f.logger.Warn().Err(err).Str("flow", string(f.flow)).Msg("accept failed")
			time.Sleep(acceptRetryDelay)
			continue
		}

		f.wg.Go(func() {
			f.serve(conn)
		})
	}
}

// serve bounds the whole conversation, handshake included, by the
// connection timeout.
func (f *flowServer) serve(conn channel.PeerConn) {
	defer conn.Close()

	ctx, cancel := context.WithTimeout(f.ctx, f.timeout)
	defer cancel()

	if err := conn.Handshake(ctx); err != nil {
		f.metrics.Connections.WithLabelValues(string(f.flow), "handshake_failed").Inc()
		f.logger.Warn().Err(err).
			Str("flow", string(f.flow)).
			Str("remote_addr", conn.RemoteAddr()).
			Msg("handshake failed")
		return
	}
	f.metrics.Connections.WithLabelValues(string(f.flow), metrics.ResultOK).Inc()

	// errors are logged by the conversation middleware
	_ = f.conv(ctx, conn)
}

// Shutdown stops accepting and waits for running conversations. Those still
// running after grace are cancelled.
func (f *flowServer) Shutdown() {
	f.shutdown(f.timeout)
}

func (f *flowServer) shutdown(grace time.Duration) {
	_ = f.listener.Close()

	done := make(chan struct{})
	go func() {
		f.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(grace):
		f.logger.Warn().Str("flow", string(f.flow)).Msg("cancelling running conversations")
		f.cancel()
		<-done
	}
	f.cancel()
}
