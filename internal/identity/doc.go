// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identity supplies the credentials and addressing of a sync
// participant: the server host and per-flow ports, the vehicle client id,
// the client certificate and the trust anchor used to verify the peer.
//
// Every load failure wraps [ErrCredentialUnavailable] so flows can surface it
// to the user verbatim.
package identity
