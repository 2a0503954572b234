// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

//go:generate mockgen -source=provider.go -destination=../mock/identity_mock.go -package=mock

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"sync"

	"github.com/MKhiriev/go-epr-sync/internal/config"
	"github.com/MKhiriev/go-epr-sync/models"
)

// Provider is the client's view of its own identity and of the server.
type Provider interface {
	Host() string
	Port(flow models.Flow) int
	ClientID() string
	ServerName() string
	ClientCertificate() (tls.Certificate, error)
	TrustAnchor() (*x509.CertPool, error)
}

// fileProvider reads PEM files from the paths of [config.Identity]. Loaded
// credentials are cached; a failed load is retried on the next call.
type fileProvider struct {
	identity config.Identity
	adapter  config.ClientAdapter
	clientID string

	mu     sync.Mutex
	cert   *tls.Certificate
	anchor *x509.CertPool
}

// NewFileProvider builds a [Provider] for the client configuration.
func NewFileProvider(cfg *config.ClientConfig) Provider {
	return &fileProvider{
		identity: cfg.Identity,
		adapter:  cfg.Adapter,
		clientID: cfg.App.ClientID,
	}
}

func (p *fileProvider) Host() string {
	return p.adapter.Host
}

// Port returns the server port of flow, or 0 for an unknown flow.
func (p *fileProvider) Port(flow models.Flow) int {
	switch flow {
	case models.FlowPush:
		return p.adapter.PushPort
	case models.FlowSync:
		return p.adapter.SyncPort
	case models.FlowQuery:
		return p.adapter.QueryPort
	default:
		return 0
	}
}

func (p *fileProvider) ClientID() string {
	return p.clientID
}

// ServerName is the name verified in the server certificate. It defaults to
// the configured host.
func (p *fileProvider) ServerName() string {
	if p.identity.ServerName != "" {
		return p.identity.ServerName
	}
	return p.adapter.Host
}

func (p *fileProvider) ClientCertificate() (tls.Certificate, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cert != nil {
		return *p.cert, nil
	}

	cert, err := LoadKeyPair(p.identity.CertFile, p.identity.KeyFile)
	if err != nil {
		return tls.Certificate{}, err
	}
	p.cert = &cert

	return cert, nil
}

func (p *fileProvider) TrustAnchor() (*x509.CertPool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.anchor != nil {
		return p.anchor, nil
	}

	pool, err := LoadCertPool(p.identity.CAFile)
	if err != nil {
		return nil, err
	}
	p.anchor = pool

	return pool, nil
}

// LoadKeyPair reads a PEM certificate and its private key.
func LoadKeyPair(certFile, keyFile string) (tls.Certificate, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("%w: key pair %s: %v", ErrCredentialUnavailable, certFile, err)
	}
	return cert, nil
}

// LoadCertPool reads every PEM certificate in file into a new pool.
func LoadCertPool(file string) (*x509.CertPool, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("%w: trust anchor %s: %v", ErrCredentialUnavailable, file, err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(data) {
		return nil, fmt.Errorf("%w: trust anchor %s: no certificates found", ErrCredentialUnavailable, file)
	}
	return pool, nil
}
