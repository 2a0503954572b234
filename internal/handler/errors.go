// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoServices is returned by NewHandlers when it gets no services to
	// dispatch to. It is a fatal misconfiguration.
	errNoServices = errors.New("no services to handle conversations")

	// ErrUnknownFlow is returned by [Handlers.For] for a flow without a
	// conversation.
	ErrUnknownFlow = errors.New("unknown flow")

	// errPanic replaces the error of a conversation that panicked.
	errPanic = errors.New("conversation panicked")
)
