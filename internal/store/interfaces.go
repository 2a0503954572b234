package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-epr-sync/models"
)

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// RecordRepository stores records pushed by clients. SaveRecord is idempotent
// on (client id, local id, created at): a resent record returns the server id
// assigned the first time.
type RecordRepository interface {
	SaveRecord(ctx context.Context, clientID string, record models.PendingRecord) (int64, error)
	GetRecord(ctx context.Context, clientID string, serverID int64) (models.PendingRecord, error)
}

// ClientRepository keeps the per-client progress in ambulance_last_update.
type ClientRepository interface {
	EnsureClient(ctx context.Context, clientID string) error
	GetClientState(ctx context.Context, clientID string) (models.ServerClientState, error)
	MarkServed(ctx context.Context, clientID string, served *int64, message string) error
	StoreAck(ctx context.Context, clientID string, watermark *int64, message string) error
	MinAckedWatermark(ctx context.Context) (*int64, error)
}

// MutationLogRepository is the shared, server-ordered mutation log.
type MutationLogRepository interface {
	Append(ctx context.Context, statement string) (models.MutationLogEntry, error)
	Select(ctx context.Context, after *int64) ([]models.MutationLogEntry, error)
	Archive(ctx context.Context, before int64) (int64, error)
}

// AccountRepository disables user accounts reported as blocked.
type AccountRepository interface {
	// DisableUser disables userID and appends the matching log entry in one
	// transaction. alreadyDisabled is true when nothing had to change.
	DisableUser(ctx context.Context, userID string) (alreadyDisabled bool, err error)
}
