package store

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-epr-sync/models"
)

// LocalRecordRepository holds records created on the vehicle until the
// server acknowledges them.
type LocalRecordRepository interface {
	SaveRecord(ctx context.Context, record models.PendingRecord) (int64, error)
	ListPendingRecords(ctx context.Context) ([]models.PendingRecord, error)
	DeleteRecord(ctx context.Context, localID int64) error
}

// LocalSyncRepository holds the update sync state, the blocked-login table
// and applies log statements.
type LocalSyncRepository interface {
	GetSyncState(ctx context.Context, clientID string) (models.ClientSyncState, error)
	SaveSyncState(ctx context.Context, state models.ClientSyncState) error

	ListBlockedLogins(ctx context.Context) ([]models.BlockedLoginEntry, error)
	ClearBlockedLogins(ctx context.Context, userIDs []string) error
	RecordFailedLogin(ctx context.Context, userID string) error

	// ApplyStatement executes one log statement. A unique or primary key
	// violation is reported as [ErrDuplicateKey].
	ApplyStatement(ctx context.Context, statement string) error
}
