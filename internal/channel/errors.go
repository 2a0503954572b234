package channel

import "errors"

var (
	// ErrCertInvalid is returned when the handshake rejects a certificate.
	// It is not retryable.
	ErrCertInvalid = errors.New("certificate rejected")

	// ErrCertUnreadable is returned when local credentials cannot be loaded.
	// It is not retryable.
	ErrCertUnreadable = errors.New("certificate unreadable")

	// ErrConnectFailed is returned when the peer cannot be reached.
	ErrConnectFailed = errors.New("connect failed")

	// ErrTransport is returned when an established channel fails mid-exchange.
	ErrTransport = errors.New("channel i/o failed")

	// ErrPeerClosed is returned by a read that found the stream closed by the
	// peer between frames. It also matches [ErrTransport].
	ErrPeerClosed = errors.New("channel closed by peer")

	// ErrClosed is returned by operations on a closed channel.
	ErrClosed = errors.New("channel closed")
)
