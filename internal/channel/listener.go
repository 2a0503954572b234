package channel

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/protocol"
)

// Listener accepts server-side channels on one address.
type Listener struct {
	ln        net.Listener
	codec     *protocol.Codec
	ioTimeout time.Duration
	logger    *logger.Logger
}

// Listen binds addr with the server TLS configuration.
func Listen(addr string, cfg *tls.Config, codec *protocol.Codec, ioTimeout time.Duration, log *logger.Logger) (*Listener, error) {
	ln, err := tls.Listen("tcp", addr, cfg)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", addr, err)
	}

	return &Listener{
		ln:        ln,
		codec:     codec,
		ioTimeout: ioTimeout,
		logger:    log,
	}, nil
}

// Accept waits for the next connection. The handshake is left to the caller
// so that a slow client does not block the accept loop.
func (l *Listener) Accept() (PeerConn, error) {
	raw, err := l.ln.Accept()
	if err != nil {
		return nil, err
	}

	return &serverConn{tlsConn: newTLSConn(raw.(*tls.Conn), l.codec, l.ioTimeout, l.logger)}, nil
}

// Addr is the bound address.
func (l *Listener) Addr() net.Addr {
	return l.ln.Addr()
}

// Close stops accepting connections.
func (l *Listener) Close() error {
	return l.ln.Close()
}

type serverConn struct {
	*tlsConn
}

func (s *serverConn) Handshake(ctx context.Context) error {
	if err := s.conn.HandshakeContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrCertInvalid, err)
	}
	return nil
}

func (s *serverConn) PeerID() string {
	state := s.conn.ConnectionState()
	if len(state.PeerCertificates) == 0 {
		return ""
	}
	return state.PeerCertificates[0].Subject.CommonName
}

func (s *serverConn) RemoteAddr() string {
	return s.conn.RemoteAddr().String()
}
