// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Flow names a client synchronization flow. Each flow talks to its own
// server port.
type Flow string

const (
	FlowPush  Flow = "push"
	FlowSync  Flow = "sync"
	FlowQuery Flow = "query"
)

// FlowState is a state of a flow's state machine.
type FlowState string

const (
	StateConnecting       FlowState = "connecting"
	StateSending          FlowState = "sending"
	StateSendingRequest   FlowState = "sending_request"
	StateAwaitingLog      FlowState = "awaiting_log"
	StateApplying         FlowState = "applying"
	StateSendingAck       FlowState = "sending_ack"
	StateAwaitingResponse FlowState = "awaiting_response"
	StateDone             FlowState = "done"
	StateFailed           FlowState = "failed"
	StateCancelled        FlowState = "cancelled"
)

// FlowStatus is delivered to the status callback on every transition.
// Message is always a short user-facing string; technical detail goes to the
// diagnostic log.
type FlowStatus struct {
	Flow    Flow
	State   FlowState
	Message string
}

// Terminal reports whether no further status will follow.
func (s FlowStatus) Terminal() bool {
	return s.State == StateDone || s.State == StateFailed || s.State == StateCancelled
}

// StatusFunc receives flow status updates. It is called from the flow's
// background worker and must not block.
type StatusFunc func(FlowStatus)

// AckFunc receives one confirmed record acknowledgment of a push batch.
type AckFunc func(ack RecordAck)
