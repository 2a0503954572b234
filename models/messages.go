// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Message is implemented by every object that travels over the secure
// channel. MessageType returns the tag written into the frame envelope.
type Message interface {
	MessageType() string
}

// Wire tags of all protocol messages.
const (
	TypeRecordBatchItem = "record_batch_item"
	TypeRecordAck       = "record_ack"
	TypeSyncRequest     = "sync_request"
	TypeSyncResponse    = "sync_response"
	TypeSyncAck         = "sync_ack"
	TypeQueryRequest    = "query_request"
	TypeQueryResponse   = "query_response"
)

// RecordBatchItem carries one pending record of a push batch.
type RecordBatchItem struct {
	Record PendingRecord `json:"record"`

	// Last marks the terminal record of the batch.
	Last bool `json:"last"`
}

func (RecordBatchItem) MessageType() string { return TypeRecordBatchItem }

// RecordAck confirms that the server persisted the record LocalID under
// ServerID. A Failed ack means the server could not commit the record and the
// client must keep it.
type RecordAck struct {
	LocalID  int64  `json:"local_id"`
	ServerID int64  `json:"server_id"`
	Message  string `json:"message"`
	Failed   bool   `json:"failed,omitempty"`
}

func (RecordAck) MessageType() string { return TypeRecordAck }

// SyncRequest opens an update sync round.
type SyncRequest struct {
	ClientID string `json:"client_id"`

	// Watermark is nil for a bootstrap sync.
	Watermark *int64 `json:"watermark"`

	// BlockedUserIDs lists local accounts that reached the failed-login threshold.
	BlockedUserIDs []string `json:"blocked_user_ids"`
}

func (SyncRequest) MessageType() string { return TypeSyncRequest }

// Bootstrap reports whether the request asks for the whole log.
func (r SyncRequest) Bootstrap() bool {
	return r.Watermark == nil
}

// SyncResponse carries the log entries selected for the client, ordered by
// timestamp, and the notices produced while reconciling blocked users.
type SyncResponse struct {
	Entries []MutationLogEntry `json:"entries"`
	Message string             `json:"message"`
	Failed  bool               `json:"failed"`
}

func (SyncResponse) MessageType() string { return TypeSyncResponse }

// SyncAck reports the client's new position. Watermark is nil when no entry
// was applied in this round.
type SyncAck struct {
	Watermark *int64 `json:"watermark"`
	Message   string `json:"message,omitempty"`
}

func (SyncAck) MessageType() string { return TypeSyncAck }

// Query kinds understood by the server.
const (
	QueryKindRecord       = "record"
	QueryKindClientStatus = "client_status"
)

// QueryRequest is a single request of the query flow.
type QueryRequest struct {
	Kind   string            `json:"kind"`
	Params map[string]string `json:"params,omitempty"`
}

func (QueryRequest) MessageType() string { return TypeQueryRequest }

// QueryResponse is the single answer of the query flow. Exactly one of
// Record and ClientState is set on success.
type QueryResponse struct {
	Record      *PendingRecord     `json:"record,omitempty"`
	ClientState *ServerClientState `json:"client_state,omitempty"`
	Message     string             `json:"message"`
	Failed      bool               `json:"failed"`
}

func (QueryResponse) MessageType() string { return TypeQueryResponse }
