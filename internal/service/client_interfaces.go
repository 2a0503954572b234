package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/servicemock/client_service_mock.go -package=servicemock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-epr-sync/models"
)

// PushResult summarizes one push batch.
type PushResult struct {
	// Total is the batch size.
	Total int
	// Rounds is the number of rounds consumed.
	Rounds int
	// Sent counts records that left the socket.
	Sent int
	// Acked counts records the server persisted; each was deleted locally.
	Acked int
	// Rejected counts failed acks; those records stay pending.
	Rejected int
}

// SyncResult summarizes one update sync round.
type SyncResult struct {
	Received  int
	Applied   int
	Watermark *int64
	Message   string
}

// ClientPushService transmits the pending records queue.
type ClientPushService interface {
	// Push sends every pending record in one batch. A record is deleted
	// locally only after its ack; onAck is called for each of them.
	// onStatus and onAck may be nil.
	Push(ctx context.Context, onStatus models.StatusFunc, onAck models.AckFunc) (PushResult, error)
}

// ClientSyncService pulls and applies the server's mutation log.
type ClientSyncService interface {
	// Sync runs one request, apply and ack round. The local watermark is
	// left untouched on every failure before the ack.
	Sync(ctx context.Context, onStatus models.StatusFunc) (SyncResult, error)
}

// ClientQueryService performs single request/response exchanges.
type ClientQueryService interface {
	// Query retries connect and send until they succeed or ctx is cancelled,
	// then waits for exactly one response.
	Query(ctx context.Context, req models.QueryRequest, onStatus models.StatusFunc) (models.QueryResponse, error)
}

// SyncTrigger starts one synchronization round on demand.
type SyncTrigger interface {
	TriggerSync(ctx context.Context) error
}

// ClientSyncJob defines the contract for a background worker that
// periodically triggers synchronization.
type ClientSyncJob interface {
	// Start launches the background goroutine. It triggers every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
