package service

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

import (
	"context"

	"github.com/MKhiriev/go-epr-sync/models"
)

// RecordService persists pushed records.
type RecordService interface {
	// Accept stores one record of clientID and returns the ack to send. A
	// record that cannot be stored yields a Failed ack; the client keeps it.
	Accept(ctx context.Context, clientID string, item models.RecordBatchItem) models.RecordAck
}

// SyncService answers update sync rounds.
type SyncService interface {
	// Begin reconciles the blocked users of req and selects the log entries
	// for the requesting client. peerID is the CommonName of the client
	// certificate. The response is always sendable; on rejection it is Failed
	// and the returned error tells why.
	Begin(ctx context.Context, peerID string, req models.SyncRequest) (models.SyncResponse, error)

	// Acknowledge stores the watermark the client reached.
	Acknowledge(ctx context.Context, clientID string, ack models.SyncAck) error

	// Provision ensures a progress row for every known client.
	Provision(ctx context.Context, clientIDs []string) error
}

// QueryService answers single-exchange queries.
type QueryService interface {
	Answer(ctx context.Context, clientID string, req models.QueryRequest) models.QueryResponse
}

// RecordServiceWrapper defines middleware composition for RecordService.
// Implementations wrap an existing RecordService to add behavior such as
// validation.
type RecordServiceWrapper interface {
	Wrap(RecordService) RecordService
}

// SyncServiceWrapper defines middleware composition for SyncService.
type SyncServiceWrapper interface {
	Wrap(SyncService) SyncService
}
