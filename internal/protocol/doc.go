// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package protocol implements the frame format shared by every flow.
//
// A frame is a 4-byte big-endian length followed by a JSON envelope:
//
//	{"v":1,"type":"sync_request","id":"<uuid v7>","body":{...}}
//
// The envelope version and the type tag are checked on every read. A
// mismatch of either is a protocol error and never a transport error.
package protocol
