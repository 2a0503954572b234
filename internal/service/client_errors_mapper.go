// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-epr-sync/internal/app"
	"github.com/MKhiriev/go-epr-sync/internal/channel"
	"github.com/MKhiriev/go-epr-sync/internal/protocol"
	"github.com/MKhiriev/go-epr-sync/internal/store"
)

// mapChannelError translates a channel or codec error into the flow taxonomy.
// The original error stays in the chain.
func mapChannelError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrLocalStore), errors.Is(err, ErrCancelled):
		return err
	case ctx.Err() != nil:
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	case errors.Is(err, channel.ErrCertUnreadable), errors.Is(err, channel.ErrCertInvalid):
		return fmt.Errorf("%w: %w", ErrCredential, err)
	case errors.Is(err, channel.ErrConnectFailed):
		return fmt.Errorf("%w: %w", ErrConnect, err)
	case errors.Is(err, protocol.ErrProtocol):
		return fmt.Errorf("%w: %w", ErrProtocol, err)
	default:
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
}

// mapStoreError wraps a local database failure.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrDuplicateKey) {
		return fmt.Errorf("%w: %w", ErrApplyDuplicate, err)
	}
	return fmt.Errorf("%w: %w", ErrLocalStore, err)
}

// retryableChannelError reports failures that a new connection may fix.
func retryableChannelError(err error) bool {
	return errors.Is(err, ErrConnect) || errors.Is(err, ErrNetwork)
}

// failureMessage is the user-facing text of a flow error.
func failureMessage(err error) string {
	var rejection *rejectionError

	switch {
	case errors.As(err, &rejection):
		return rejection.message
	case errors.Is(err, ErrCancelled):
		return app.MsgCancelled
	case errors.Is(err, channel.ErrCertUnreadable):
		return app.MsgCredentialUnavailable
	case errors.Is(err, ErrCredential):
		return app.MsgCertificateRejected
	case errors.Is(err, ErrConnect):
		return app.MsgServerUnreachable
	case errors.Is(err, ErrProtocol):
		return app.MsgIncompatibleServer
	case errors.Is(err, ErrLocalStore):
		return app.MsgLocalStoreFailed
	default:
		return app.MsgConnectionLost
	}
}

// rejectionError carries the server's message of a failed response.
type rejectionError struct {
	message string
}

func newRejectionError(message string) error {
	return &rejectionError{message: message}
}

func (e *rejectionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrServerRejection, e.message)
}

func (e *rejectionError) Unwrap() error {
	return ErrServerRejection
}
