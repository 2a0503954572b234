// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the ambulance-side runtime.
//
// It wires the local store, the vehicle identity, the secure channel and the
// client flows into a single process lifecycle. At most one flow runs at a
// time; the periodic update sync shares that slot with flows started by the
// host application.
package client
