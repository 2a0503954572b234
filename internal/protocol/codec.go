// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-epr-sync/models"
)

const (
	// Version is the envelope version written and accepted by this build.
	Version = 1

	// MaxFrameSize bounds a single frame.
	MaxFrameSize = 8 << 20

	headerSize = 4
)

// IDGenerator supplies frame identifiers.
type IDGenerator interface {
	Generate() string
}

type envelope struct {
	V    int             `json:"v"`
	Type string          `json:"type"`
	ID   string          `json:"id"`
	Body json.RawMessage `json:"body"`
}

// Codec reads and writes whole frames. It holds no per-stream state and is
// safe for concurrent use on different streams.
type Codec struct {
	ids IDGenerator
}

// NewCodec returns a codec that stamps outgoing frames with ids from ids.
func NewCodec(ids IDGenerator) *Codec {
	return &Codec{ids: ids}
}

// WriteMessage encodes msg into one frame and writes it with a single call to
// w. It returns the frame id.
func (c *Codec) WriteMessage(w io.Writer, msg models.Message) (string, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("%w: encode %s: %v", ErrMalformedFrame, msg.MessageType(), err)
	}

	env := envelope{
		V:    Version,
		Type: msg.MessageType(),
		ID:   c.ids.Generate(),
		Body: body,
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("%w: encode envelope: %v", ErrMalformedFrame, err)
	}
	if len(payload) > MaxFrameSize {
		return "", fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, len(payload))
	}

	var buf bytes.Buffer
	buf.Grow(headerSize + len(payload))
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(payload)))
	buf.Write(payload)

	if _, err = w.Write(buf.Bytes()); err != nil {
		return "", err
	}

	return env.ID, nil
}

// ReadMessage reads one frame from r and decodes its body into into, which
// must be a pointer to the expected message type. Transport errors from r are
// returned as they are; format problems wrap [ErrProtocol].
func (c *Codec) ReadMessage(r io.Reader, into models.Message) (string, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return "", err
	}

	size := binary.BigEndian.Uint32(header[:])
	if size > MaxFrameSize {
		return "", fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, size)
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return "", err
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	if env.V != Version {
		return env.ID, fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, env.V, Version)
	}
	if env.Type != into.MessageType() {
		return env.ID, fmt.Errorf("%w: got %q, want %q", ErrUnexpectedMessage, env.Type, into.MessageType())
	}
	if err := json.Unmarshal(env.Body, into); err != nil {
		return env.ID, fmt.Errorf("%w: %s body: %v", ErrMalformedFrame, env.Type, err)
	}

	return env.ID, nil
}
