// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// client flows and the server conversations.
//
// All Msg* constants are short human-readable strings. On the client they are
// delivered to status callbacks; on the server they travel in the message
// field of acks and responses. Technical detail never goes into them; it is
// written to the diagnostic log instead.
package app

// Client flow transitions.
const (
	// MsgConnecting is reported while the secure channel is being opened.
	MsgConnecting = "connecting to server"

	// MsgSendingRecords is reported when the push batch starts transmitting.
	MsgSendingRecords = "sending records"

	// MsgNoPendingRecords finishes a push with an empty queue.
	MsgNoPendingRecords = "no records to send"

	// MsgRecordsTransmitted is the push summary: acknowledged of total.
	MsgRecordsTransmitted = "%d of %d records transmitted"

	// MsgTransmissionFailed is the bounded-attempts failure of a push.
	MsgTransmissionFailed = "transmission failed after %d attempts"

	MsgSendingSyncRequest = "requesting updates"
	MsgAwaitingUpdates    = "waiting for updates"

	// MsgApplyingUpdates is reported before the apply phase with the number
	// of received entries.
	MsgApplyingUpdates = "applying %d updates"

	MsgConfirmingUpdates = "confirming updates"

	// MsgUpdatesApplied is the sync summary: applied of received.
	MsgUpdatesApplied = "%d of %d updates applied"

	MsgSendingQuery     = "sending request"
	MsgAwaitingResponse = "waiting for response"
	MsgResponseReceived = "response received"

	MsgCancelled = "cancelled"
)

// Client flow failures.
const (
	MsgCredentialUnavailable = "credential unavailable"
	MsgCertificateRejected   = "certificate rejected"
	MsgServerUnreachable     = "server unreachable"
	MsgConnectionLost        = "connection lost"
	MsgIncompatibleServer    = "incompatible server version"
	MsgLocalStoreFailed      = "local database error"
)

// Server answers.
const (
	// MsgRecordStored acknowledges a persisted record.
	MsgRecordStored = "record stored"

	// MsgRecordNotStored is the message of a failed record ack.
	MsgRecordNotStored = "record could not be stored"

	// MsgUnknownClient rejects a client without an ambulance_last_update row.
	MsgUnknownClient = "unknown client"

	// MsgClientMismatch rejects a request whose client id differs from the
	// certificate it arrived with.
	MsgClientMismatch = "client id does not match certificate"

	MsgUserDisabled        = "user %s disabled"
	MsgUserAlreadyDisabled = "user %s already disabled"
	MsgUserNotFound        = "user %s not found"
	MsgUserIDBlank         = "blank user id skipped"

	MsgInvalidRequest = "invalid request"
	MsgUnknownQuery   = "unknown query kind"
	MsgInvalidQuery   = "invalid query parameters"
	MsgRecordNotFound = "record not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
