package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-epr-sync/internal/channel"
	"github.com/MKhiriev/go-epr-sync/internal/config"
	"github.com/MKhiriev/go-epr-sync/internal/identity"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/protocol"
	"github.com/MKhiriev/go-epr-sync/internal/service"
	"github.com/MKhiriev/go-epr-sync/internal/store"
	"github.com/MKhiriev/go-epr-sync/internal/utils"
	"github.com/MKhiriev/go-epr-sync/internal/workers"
	"github.com/MKhiriev/go-epr-sync/models"
)

// QueryFunc receives the outcome of a query started with StartQuery.
type QueryFunc func(resp models.QueryResponse, err error)

type App struct {
	services *service.ClientServices
	records  store.LocalRecordRepository
	logins   store.LocalSyncRepository
	syncJob  service.ClientSyncJob
	interval time.Duration
	closer   func() error
	logger   *logger.Logger

	mu      sync.Mutex
	current *workers.Task
}

// NewApp opens the local store and builds the client flows from cfg.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	provider := identity.NewFileProvider(cfg)
	dialer := channel.NewTLSDialer(
		provider,
		protocol.NewCodec(utils.NewUUIDGenerator()),
		cfg.Adapter.DialTimeout,
		cfg.Adapter.IOTimeout,
		log,
	)
	services := service.NewClientServices(storages, dialer, provider, cfg.Adapter, log)

	app := newApp(services, storages.Records, storages.Sync, cfg.Workers.SyncInterval, log)
	app.closer = storages.Close
	return app, nil
}

func newApp(
	services *service.ClientServices,
	records store.LocalRecordRepository,
	logins store.LocalSyncRepository,
	interval time.Duration,
	log *logger.Logger,
) *App {
	a := &App{
		services: services,
		records:  records,
		logins:   logins,
		interval: interval,
		logger:   log,
	}
	a.syncJob = service.NewClientSyncJob(a, log)
	return a
}

// SaveRecord queues a finished record for the next push.
func (a *App) SaveRecord(ctx context.Context, record models.PendingRecord) (int64, error) {
	return a.records.SaveRecord(ctx, record)
}

// RecordFailedLogin remembers a user whose login was refused locally. The
// user is reported with the next sync request.
func (a *App) RecordFailedLogin(ctx context.Context, userID string) error {
	return a.logins.RecordFailedLogin(ctx, userID)
}

// StartPush transmits the pending records in the background.
func (a *App) StartPush(ctx context.Context, onStatus models.StatusFunc, onAck models.AckFunc) error {
	_, err := a.start(ctx, func(ctx context.Context) error {
		_, err := a.services.PushService.Push(ctx, onStatus, onAck)
		return err
	})
	return err
}

// StartSync runs one update sync round in the background.
func (a *App) StartSync(ctx context.Context, onStatus models.StatusFunc) error {
	_, err := a.start(ctx, func(ctx context.Context) error {
		_, err := a.services.SyncService.Sync(ctx, onStatus)
		return err
	})
	return err
}

// StartQuery sends req in the background. onResponse is called once with the
// outcome, cancellation included.
func (a *App) StartQuery(ctx context.Context, req models.QueryRequest, onStatus models.StatusFunc, onResponse QueryFunc) error {
	_, err := a.start(ctx, func(ctx context.Context) error {
		resp, err := a.services.QueryService.Query(ctx, req, onStatus)
		if onResponse != nil {
			onResponse(resp, err)
		}
		return err
	})
	return err
}

// Cancel stops the running flow, if any. The flow reports its own
// cancellation through its status callback.
func (a *App) Cancel() {
	a.mu.Lock()
	current := a.current
	a.mu.Unlock()
	if current != nil {
		current.Cancel()
	}
}

// Wait blocks until the running flow, if any, has finished and returns its
// result.
func (a *App) Wait() error {
	a.mu.Lock()
	current := a.current
	a.mu.Unlock()
	if current == nil {
		return nil
	}
	return current.Wait()
}

// TriggerSync implements service.SyncTrigger: it pulls updates, then pushes
// pending records, and waits for both. A push still runs after a failed
// sync.
func (a *App) TriggerSync(ctx context.Context) error {
	task, err := a.start(ctx, func(ctx context.Context) error {
		_, syncErr := a.services.SyncService.Sync(ctx, nil)
		if ctx.Err() != nil {
			return syncErr
		}
		_, pushErr := a.services.PushService.Push(ctx, nil, nil)
		return errors.Join(syncErr, pushErr)
	})
	if err != nil {
		return err
	}
	return task.Wait()
}

// Run starts the periodic sync and blocks until ctx is done. The running
// flow is cancelled and the local store closed before Run returns.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Dur("interval", a.interval).Msg("client started")

	a.syncJob.Start(ctx, a.interval)
	<-ctx.Done()
	a.syncJob.Stop()

	a.Cancel()
	_ = a.Wait()

	a.logger.Info().Msg("client stopped")
	if a.closer != nil {
		return a.closer()
	}
	return nil
}

func (a *App) start(ctx context.Context, fn func(ctx context.Context) error) (*workers.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current != nil {
		select {
		case <-a.current.Done():
		default:
			return nil, ErrFlowInProgress
		}
	}

	task := workers.NewTask()
	if err := task.Start(ctx, fn); err != nil {
		return nil, err
	}
	a.current = task
	return task, nil
}
