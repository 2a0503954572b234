// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package channel

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/MKhiriev/go-epr-sync/internal/identity"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/protocol"
)

type tlsDialer struct {
	provider    identity.Provider
	codec       *protocol.Codec
	dialTimeout time.Duration
	ioTimeout   time.Duration
	logger      *logger.Logger
}

// NewTLSDialer returns a [Dialer] that authenticates with the provider's
// client certificate and verifies the server against its trust anchor.
func NewTLSDialer(provider identity.Provider, codec *protocol.Codec, dialTimeout, ioTimeout time.Duration, log *logger.Logger) Dialer {
	return &tlsDialer{
		provider:    provider,
		codec:       codec,
		dialTimeout: dialTimeout,
		ioTimeout:   ioTimeout,
		logger:      log,
	}
}

func (d *tlsDialer) Open(ctx context.Context, host string, port int) (Conn, error) {
	log := logger.FromContext(ctx)

	cert, err := d.provider.ClientCertificate()
	if err != nil {
		log.Err(err).Str("func", "tlsDialer.Open").Msg("client certificate unavailable")
		return nil, fmt.Errorf("%w: %w", ErrCertUnreadable, err)
	}
	anchor, err := d.provider.TrustAnchor()
	if err != nil {
		log.Err(err).Str("func", "tlsDialer.Open").Msg("trust anchor unavailable")
		return nil, fmt.Errorf("%w: %w", ErrCertUnreadable, err)
	}

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: d.dialTimeout},
		Config: &tls.Config{
			Certificates: []tls.Certificate{cert},
			RootCAs:      anchor,
			ServerName:   d.provider.ServerName(),
			MinVersion:   tls.VersionTLS12,
		},
	}

	dialCtx := ctx
	if d.dialTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, d.dialTimeout)
		defer cancel()
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	raw, err := dialer.DialContext(dialCtx, "tcp", addr)
	if err != nil {
		log.Err(err).Str("func", "tlsDialer.Open").Str("addr", addr).Msg("error opening channel")
		return nil, classifyDialError(err)
	}
	log.Debug().Str("func", "tlsDialer.Open").Str("addr", addr).Msg("channel open")

	return newTLSConn(raw.(*tls.Conn), d.codec, d.ioTimeout, d.logger), nil
}

// classifyDialError separates certificate failures, which are final, from
// reachability failures, which a flow may retry.
func classifyDialError(err error) error {
	var (
		verifyErr    *tls.CertificateVerificationError
		unknownAuth  x509.UnknownAuthorityError
		invalidCert  x509.CertificateInvalidError
		hostnameErr  x509.HostnameError
		recordHeader tls.RecordHeaderError
	)

	switch {
	case errors.As(err, &verifyErr),
		errors.As(err, &unknownAuth),
		errors.As(err, &invalidCert),
		errors.As(err, &hostnameErr),
		isRemoteAlert(err):
		return fmt.Errorf("%w: %v", ErrCertInvalid, err)
	case errors.As(err, &recordHeader):
		return fmt.Errorf("%w: peer does not speak tls: %v", ErrConnectFailed, err)
	default:
		return fmt.Errorf("%w: %v", ErrConnectFailed, err)
	}
}
