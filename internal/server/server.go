package server

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-epr-sync/internal/channel"
	"github.com/MKhiriev/go-epr-sync/internal/config"
	"github.com/MKhiriev/go-epr-sync/internal/handler"
	"github.com/MKhiriev/go-epr-sync/internal/identity"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/metrics"
	"github.com/MKhiriev/go-epr-sync/internal/protocol"
	"github.com/MKhiriev/go-epr-sync/internal/utils"
	"github.com/MKhiriev/go-epr-sync/internal/workers"
	"github.com/MKhiriev/go-epr-sync/models"
)

type server struct {
	flows      []*flowServer
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer binds one mTLS listener per configured flow address and the
// metrics server when its address is set. Listeners are open when NewServer
// returns.
func NewServer(
	handlers *handler.Handlers,
	ws *workers.Workers,
	m *metrics.Metrics,
	health HealthChecker,
	cfg *config.ServerConfig,
	logger *logger.Logger,
) (Server, error) {
	logger.Info().Msg("creating new server...")

	tlsCfg, err := identity.ServerTLSConfig(cfg.Identity)
	if err != nil {
		return nil, fmt.Errorf("error loading server identity: %w", err)
	}
	codec := protocol.NewCodec(utils.NewUUIDGenerator())

	s := &server{workers: ws, logger: logger}

	addresses := []struct {
		flow models.Flow
		addr string
	}{
		{models.FlowPush, cfg.Server.PushAddress},
		{models.FlowSync, cfg.Server.SyncAddress},
		{models.FlowQuery, cfg.Server.QueryAddress},
	}
	for _, a := range addresses {
		if a.addr == "" {
			continue
		}

		conv, err := handlers.For(a.flow)
		if err != nil {
			s.closeListeners()
			return nil, err
		}
		ln, err := channel.Listen(a.addr, tlsCfg, codec, cfg.Server.ConnectionTimeout, logger)
		if err != nil {
			s.closeListeners()
			return nil, err
		}
		s.flows = append(s.flows, newFlowServer(a.flow, ln, conv, cfg.Server.ConnectionTimeout, m, logger))
	}

	if len(s.flows) == 0 {
		return nil, errNoServersAreCreated
	}

	if cfg.Server.MetricsAddress != "" {
		s.httpServer = newHTTPServer(newRouter(m, health, logger), cfg.Server.MetricsAddress, logger)
	}

	return s, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	var wg sync.WaitGroup
	for _, f := range s.flows {
		wg.Go(f.Shutdown)
	}
	wg.Wait()

	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// run serves until ctx is done, then shuts everything down.
func (s *server) run(ctx context.Context) {
	workerCtx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()

	if s.workers != nil {
		s.workers.Run(workerCtx)
	}

	for _, f := range s.flows {
		go f.RunServer()
	}
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching metrics server")
		go s.httpServer.RunServer()
	}

	<-ctx.Done()

	s.Shutdown()
	cancelWorkers()
	if s.workers != nil {
		s.workers.Wait()
	}

	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) closeListeners() {
	for _, f := range s.flows {
		_ = f.listener.Close()
	}
}
