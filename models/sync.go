// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MutationLogEntry is one server-ordered change statement. Timestamp is
// assigned by the server (unix microseconds) and is strictly increasing, so it
// doubles as the entry identity.
type MutationLogEntry struct {
	Timestamp int64  `json:"timestamp"`
	Statement string `json:"statement"`
}

// ClientSyncState is the locally persisted progress of the update sync.
type ClientSyncState struct {
	// ClientID identifies the vehicle.
	ClientID string

	// Watermark is the timestamp of the last applied log entry.
	// Nil means the client has never synchronized.
	Watermark *int64

	// LastContact is the last time the server answered a sync request.
	LastContact time.Time

	// Message is the human-readable outcome of the last round.
	Message string
}

// IsBootstrap reports whether the next sync must fetch the whole log.
func (s ClientSyncState) IsBootstrap() bool {
	return s.Watermark == nil
}

// BlockedLoginEntry is a local user account with too many failed logins.
type BlockedLoginEntry struct {
	UserID         string
	FailedAttempts int
}

// BlockedLoginThreshold is the number of failed attempts after which a
// login entry is reported to the server.
const BlockedLoginThreshold = 3

// ServerClientState is the server-side view of one client's sync progress,
// stored in ambulance_last_update.
type ServerClientState struct {
	ClientID string `json:"client_id"`

	// AckedWatermark is the last watermark the client acknowledged.
	AckedWatermark *int64 `json:"acked_watermark,omitempty"`

	// ServedWatermark is the timestamp of the newest entry sent to the client.
	ServedWatermark *int64 `json:"served_watermark,omitempty"`

	LastContact *time.Time `json:"last_contact,omitempty"`
	Message     string     `json:"message,omitempty"`
}
