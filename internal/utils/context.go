// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys and identifier
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PeerIDCtxKey is the key used to store the authenticated peer identity (the
// CommonName of the client certificate) in the context.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithPeerID(ctx, "RTW-4711")
var PeerIDCtxKey = contextKey("peerID")

// FlowCtxKey stores the name of the flow a connection belongs to.
var FlowCtxKey = contextKey("flow")

// WithPeerID returns a copy of ctx carrying peerID.
func WithPeerID(ctx context.Context, peerID string) context.Context {
	return context.WithValue(ctx, PeerIDCtxKey, peerID)
}

// GetPeerIDFromContext retrieves the peer identity from the context.
//
// Returns the peer id and an ok flag:
//   - ok == true: value is found, is a string and is not empty
//   - ok == false: value is missing or has an unexpected type
func GetPeerIDFromContext(ctx context.Context) (string, bool) {
	peerID, ok := ctx.Value(PeerIDCtxKey).(string)
	return peerID, ok && peerID != ""
}

// WithFlow returns a copy of ctx carrying the flow name.
func WithFlow(ctx context.Context, flow string) context.Context {
	return context.WithValue(ctx, FlowCtxKey, flow)
}

// GetFlowFromContext retrieves the flow name from the context.
func GetFlowFromContext(ctx context.Context) (string, bool) {
	flow, ok := ctx.Value(FlowCtxKey).(string)
	return flow, ok
}
