package identity

import (
	"crypto/tls"

	"github.com/MKhiriev/go-epr-sync/internal/config"
)

// ServerTLSConfig returns the listener configuration of the sync server: its
// own certificate plus mandatory verification of client certificates against
// the configured trust anchor.
func ServerTLSConfig(cfg config.Identity) (*tls.Config, error) {
	cert, err := LoadKeyPair(cfg.CertFile, cfg.KeyFile)
	if err != nil {
		return nil, err
	}

	clientCAs, err := LoadCertPool(cfg.CAFile)
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		ClientCAs:    clientCAs,
		ClientAuth:   tls.RequireAndVerifyClientCert,
		MinVersion:   tls.VersionTLS12,
	}, nil
}
