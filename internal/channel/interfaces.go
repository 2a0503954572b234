package channel

//go:generate mockgen -source=interfaces.go -destination=../mock/channel_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-epr-sync/models"
)

// Conn is an open secure channel. One goroutine may send while another
// receives; Close may be called concurrently with both.
type Conn interface {
	// SendObject writes msg as a single frame.
	SendObject(ctx context.Context, msg models.Message) error

	// ReceiveObject reads the next frame into into, which must point to the
	// expected message type.
	ReceiveObject(ctx context.Context, into models.Message) error

	// Close releases the channel. Calls after the first return nil.
	Close() error
}

// Dialer opens client channels.
type Dialer interface {
	Open(ctx context.Context, host string, port int) (Conn, error)
}

// PeerConn is the server side of a channel.
type PeerConn interface {
	Conn

	// Handshake completes the TLS handshake, verifying the client certificate.
	Handshake(ctx context.Context) error

	// PeerID is the CommonName of the verified client certificate.
	PeerID() string

	// RemoteAddr is the network address of the peer.
	RemoteAddr() string
}
