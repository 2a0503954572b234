package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")

	jsonBody := `{
		"app": { "client_id": "RTW-4711", "version": "1.4.0" },
		"identity": { "cert_file": "c.pem", "key_file": "k.pem", "ca_file": "ca.pem" },
		"storage": { "db": { "dsn": "/var/lib/epr/local.db" } },
		"server": {
			"push_address": ":7001",
			"connection_timeout": "90s",
			"known_clients": ["RTW-1"]
		},
		"adapter": {
			"host": "sync.example.org",
			"push_port": 7001,
			"retry_delay": "5s",
			"ack_timeout": 1000000000,
			"push_rounds": 5
		},
		"workers": { "sync_interval": "15m", "archive_retention": "720h" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "RTW-4711", cfg.App.ClientID)
	assert.Equal(t, "1.4.0", cfg.App.Version)
	assert.Equal(t, "c.pem", cfg.Identity.CertFile)
	assert.Equal(t, "/var/lib/epr/local.db", cfg.Storage.DB.DSN)
	assert.Equal(t, ":7001", cfg.Server.PushAddress)
	assert.Equal(t, 90*time.Second, cfg.Server.ConnectionTimeout)
	assert.Equal(t, []string{"RTW-1"}, cfg.Server.KnownClients)
	assert.Equal(t, "sync.example.org", cfg.Adapter.Host)
	assert.Equal(t, 7001, cfg.Adapter.PushPort)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RetryDelay)
	assert.Equal(t, time.Second, cfg.Adapter.AckTimeout)
	assert.Equal(t, 5, cfg.Adapter.PushRounds)
	assert.Equal(t, 15*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 720*time.Hour, cfg.Workers.ArchiveRetention)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("definitely-does-not-exist.json")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad-duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter": {"io_timeout": "soon"}}`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
