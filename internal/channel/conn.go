// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package channel

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/protocol"
	"github.com/MKhiriev/go-epr-sync/models"
)

// tlsConn carries frames over a *tls.Conn.
type tlsConn struct {
	conn      *tls.Conn
	codec     *protocol.Codec
	ioTimeout time.Duration
	logger    *logger.Logger

	closeOnce sync.Once
	closed    atomic.Bool
}

func newTLSConn(conn *tls.Conn, codec *protocol.Codec, ioTimeout time.Duration, log *logger.Logger) *tlsConn {
	return &tlsConn{
		conn:      conn,
		codec:     codec,
		ioTimeout: ioTimeout,
		logger:    log,
	}
}

func (c *tlsConn) SendObject(ctx context.Context, msg models.Message) error {
	if c.closed.Load() {
		return ErrClosed
	}

	if err := c.conn.SetWriteDeadline(c.deadline(ctx)); err != nil {
		return c.classify(ctx, err)
	}
	stop := context.AfterFunc(ctx, func() {
		_ = c.conn.SetWriteDeadline(time.Unix(1, 0))
	})
	defer stop()

	id, err := c.codec.WriteMessage(c.conn, msg)
	if err != nil {
		return c.classify(ctx, err)
	}

	c.logger.Debug().
		Str("func", "tlsConn.SendObject").
		Str("frame_id", id).
		Str("type", msg.MessageType()).
		Msg("frame sent")

	return nil
}

func (c *tlsConn) ReceiveObject(ctx context.Context, into models.Message) error {
	if c.closed.Load() {
		return ErrClosed
	}

	if err := c.conn.SetReadDeadline(c.deadline(ctx)); err != nil {
		return c.classify(ctx, err)
	}
	stop := context.AfterFunc(ctx, func() {
		_ = c.conn.SetReadDeadline(time.Unix(1, 0))
	})
	defer stop()

	id, err := c.codec.ReadMessage(c.conn, into)
	if err != nil {
		return c.classify(ctx, err)
	}

	c.logger.Debug().
		Str("func", "tlsConn.ReceiveObject").
		Str("frame_id", id).
		Str("type", into.MessageType()).
		Msg("frame received")

	return nil
}

func (c *tlsConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		err = c.conn.Close()
	})
	return err
}

// deadline is the earlier of the context deadline and now+ioTimeout.
func (c *tlsConn) deadline(ctx context.Context) time.Time {
	var d time.Time
	if c.ioTimeout > 0 {
		d = time.Now().Add(c.ioTimeout)
	}
	if ctxDeadline, ok := ctx.Deadline(); ok && (d.IsZero() || ctxDeadline.Before(d)) {
		d = ctxDeadline
	}
	return d
}

// classify maps an I/O failure onto the package errors. Protocol errors pass
// through untouched.
func (c *tlsConn) classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, protocol.ErrProtocol):
		return err
	case c.closed.Load():
		return fmt.Errorf("%w: %v", ErrClosed, err)
	case errors.Is(err, io.EOF):
		return fmt.Errorf("%w: %w", ErrPeerClosed, ErrTransport)
	case isRemoteAlert(err):
		return fmt.Errorf("%w: %v", ErrCertInvalid, err)
	case ctx.Err() != nil:
		return fmt.Errorf("%w: %w", ErrTransport, ctx.Err())
	default:
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
}

// isRemoteAlert reports whether the peer aborted the TLS session with an
// alert. Under TLS 1.3 a rejected client certificate surfaces this way on the
// first read after the handshake.
func isRemoteAlert(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "remote error"
}
