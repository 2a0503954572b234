// Package testutil holds helpers shared by tests of several packages.
package testutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-epr-sync/internal/config"
)

// PKI is a throwaway certificate authority written to a test directory.
type PKI struct {
	t    testing.TB
	dir  string
	ca   *x509.Certificate
	key  *ecdsa.PrivateKey
	next int64

	// CAFile is the PEM file of the authority certificate.
	CAFile string
}

// NewPKI creates a self-signed authority under t.TempDir().
func NewPKI(t testing.TB) *PKI {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate ca key: %v", err)
	}

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "epr-sync test ca"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("create ca certificate: %v", err)
	}
	ca, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("parse ca certificate: %v", err)
	}

	p := &PKI{t: t, dir: t.TempDir(), ca: ca, key: key, next: 2}
	p.CAFile = p.writePEM("ca.pem", "CERTIFICATE", der)
	return p
}

// ServerIdentity issues a certificate valid for localhost and 127.0.0.1.
func (p *PKI) ServerIdentity() config.Identity {
	p.t.Helper()
	return p.issue("server", "localhost", x509.ExtKeyUsageServerAuth)
}

// ClientIdentity issues a client certificate whose CommonName is clientID.
func (p *PKI) ClientIdentity(clientID string) config.Identity {
	p.t.Helper()
	return p.issue(clientID, clientID, x509.ExtKeyUsageClientAuth)
}

// Dir is the directory holding the generated files.
func (p *PKI) Dir() string {
	return p.dir
}

func (p *PKI) issue(name, commonName string, usage x509.ExtKeyUsage) config.Identity {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		p.t.Fatalf("generate key: %v", err)
	}

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(p.next),
		Subject:      pkix.Name{CommonName: commonName},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{usage},
		DNSNames:     []string{"localhost"},
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1")},
	}
	p.next++

	der, err := x509.CreateCertificate(rand.Reader, tmpl, p.ca, &key.PublicKey, p.key)
	if err != nil {
		p.t.Fatalf("create certificate: %v", err)
	}
	keyDER, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		p.t.Fatalf("marshal key: %v", err)
	}

	return config.Identity{
		CertFile:   p.writePEM(name+".pem", "CERTIFICATE", der),
		KeyFile:    p.writePEM(name+".key", "EC PRIVATE KEY", keyDER),
		CAFile:     p.CAFile,
		ServerName: "localhost",
	}
}

func (p *PKI) writePEM(name, blockType string, der []byte) string {
	path := filepath.Join(p.dir, name)
	data := pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
	if err := os.WriteFile(path, data, 0o600); err != nil {
		p.t.Fatalf("write %s: %v", name, err)
	}
	return path
}
