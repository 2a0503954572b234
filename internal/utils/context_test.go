// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestPeerIDCtxKey(t *testing.T) {
	if PeerIDCtxKey.String() != "peerID" {
		t.Errorf("expected 'peerID', got '%s'", PeerIDCtxKey.String())
	}
}

func TestGetPeerIDFromContext_Success(t *testing.T) {
	ctx := WithPeerID(context.Background(), "RTW-4711")

	peerID, ok := GetPeerIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if peerID != "RTW-4711" {
		t.Errorf("expected peerID=RTW-4711, got %s", peerID)
	}
}

func TestGetPeerIDFromContext_Missing(t *testing.T) {
	peerID, ok := GetPeerIDFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for missing peer id")
	}
	if peerID != "" {
		t.Errorf("expected empty peer id, got %s", peerID)
	}
}

func TestGetPeerIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), PeerIDCtxKey, 42)

	if _, ok := GetPeerIDFromContext(ctx); ok {
		t.Error("expected ok=false for wrong type")
	}
}

func TestGetPeerIDFromContext_Empty(t *testing.T) {
	ctx := WithPeerID(context.Background(), "")

	if _, ok := GetPeerIDFromContext(ctx); ok {
		t.Error("expected ok=false for empty peer id")
	}
}

func TestGetFlowFromContext(t *testing.T) {
	ctx := WithFlow(context.Background(), "sync")

	flow, ok := GetFlowFromContext(ctx)
	if !ok || flow != "sync" {
		t.Errorf("expected flow=sync, got %q (ok=%v)", flow, ok)
	}
}
