// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package channel implements the secure channel used by every flow: a mutually
// authenticated TLS connection that carries whole framed messages.
//
// Close is idempotent and may be called from any goroutine; a blocked send or
// receive on a closed channel fails immediately with [ErrClosed].
package channel
