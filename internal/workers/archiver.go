package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/metrics"
	"github.com/MKhiriev/go-epr-sync/internal/store"
)

const defaultArchiveInterval = time.Hour

// Archiver periodically moves mutation log entries that every client has
// acknowledged and that are older than the retention period into history.
// Selection reads history too, so archiving never changes what a client
// receives.
type Archiver struct {
	clients   store.ClientRepository
	log       store.MutationLogRepository
	metrics   *metrics.Metrics
	interval  time.Duration
	retention time.Duration
	logger    *logger.Logger

	now func() time.Time
}

func NewArchiver(
	clients store.ClientRepository,
	log store.MutationLogRepository,
	m *metrics.Metrics,
	interval, retention time.Duration,
	logger *logger.Logger,
) *Archiver {
	if interval <= 0 {
		interval = defaultArchiveInterval
	}
	return &Archiver{
		clients:   clients,
		log:       log,
		metrics:   m,
		interval:  interval,
		retention: retention,
		logger:    logger,
		now:       time.Now,
	}
}

// Run implements Worker.
func (a *Archiver) Run(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.logger.Info().Dur("interval", a.interval).Dur("retention", a.retention).Msg("log archiver started")
	for {
		select {
		case <-ctx.Done():
			a.logger.Info().Msg("log archiver stopped")
			return
		case <-ticker.C:
			if _, err := a.ArchiveOnce(ctx); err != nil {
				a.logger.Warn().Err(err).Msg("log archiving failed")
			}
		}
	}
}

// ArchiveOnce runs one archiving pass and returns the number of moved
// entries.
func (a *Archiver) ArchiveOnce(ctx context.Context) (int64, error) {
	minAcked, err := a.clients.MinAckedWatermark(ctx)
	if err != nil {
		return 0, err
	}
	if minAcked == nil {
		return 0, nil
	}

	before := a.now().Add(-a.retention).UnixMicro()
	if *minAcked+1 < before {
		before = *minAcked + 1
	}

	moved, err := a.log.Archive(ctx, before)
	if err != nil {
		return 0, err
	}
	if a.metrics != nil {
		a.metrics.ArchivedEntries.Add(float64(moved))
	}
	if moved > 0 {
		a.logger.Info().Int64("moved", moved).Int64("before", before).Msg("log entries archived")
	}
	return moved, nil
}
