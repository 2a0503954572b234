package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 7001}, expected: "localhost:7001"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 7002}, expected: "127.0.0.1:7002"},
		{name: "only port no host", addr: NetAddress{Port: 7003}, expected: ":7003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:7001", expectedAddr: NetAddress{Host: "localhost", Port: 7001}},
		{name: "valid IPv4", input: "0.0.0.0:7002", expectedAddr: NetAddress{Host: "0.0.0.0", Port: 7002}},
		{name: "all interfaces", input: ":7003", expectedAddr: NetAddress{Port: 7003}},
		{name: "missing colon", input: "localhost7001", errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", errorMsg: "port number must be in range"},
		{name: "port too large", input: "localhost:70000", errorMsg: "port number must be in range"},
		{name: "invalid IP address", input: "invalid.host:7001", errorMsg: "incorrect IP-address provided"},
		{name: "empty string", input: "", errorMsg: "need address in a form `host:port`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "client flags",
			args: []string{
				"-client-id", "RTW-4711",
				"-host", "sync.example.org",
				"-push-port", "7001",
				"-sync-port", "7002",
				"-query-port", "7003",
				"-cert", "/etc/epr/client.pem",
				"-key", "/etc/epr/client.key",
				"-ca", "/etc/epr/ca.pem",
				"-d", "/var/lib/epr/local.db",
				"-sync-interval", "10m",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "RTW-4711", cfg.App.ClientID)
				assert.Equal(t, "sync.example.org", cfg.Adapter.Host)
				assert.Equal(t, 7001, cfg.Adapter.PushPort)
				assert.Equal(t, 7002, cfg.Adapter.SyncPort)
				assert.Equal(t, 7003, cfg.Adapter.QueryPort)
				assert.Equal(t, "/etc/epr/client.pem", cfg.Identity.CertFile)
				assert.Equal(t, "/etc/epr/client.key", cfg.Identity.KeyFile)
				assert.Equal(t, "/etc/epr/ca.pem", cfg.Identity.CAFile)
				assert.Equal(t, "/var/lib/epr/local.db", cfg.Storage.DB.DSN)
				assert.Equal(t, 10*time.Minute, cfg.Workers.SyncInterval)
			},
		},
		{
			name: "server flags",
			args: []string{
				"-push-address", "0.0.0.0:7001",
				"-sync-address", "0.0.0.0:7002",
				"-query-address", "0.0.0.0:7003",
				"-metrics-address", "127.0.0.1:9100",
				"-known-clients", "RTW-1, RTW-2,,",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "0.0.0.0:7001", cfg.Server.PushAddress)
				assert.Equal(t, "0.0.0.0:7002", cfg.Server.SyncAddress)
				assert.Equal(t, "0.0.0.0:7003", cfg.Server.QueryAddress)
				assert.Equal(t, "127.0.0.1:9100", cfg.Server.MetricsAddress)
				assert.Equal(t, []string{"RTW-1", "RTW-2"}, cfg.Server.KnownClients)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: nil,
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.Server.PushAddress)
				assert.Empty(t, cfg.Storage.DB.DSN)
				assert.Nil(t, cfg.Server.KnownClients)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-push-address", "not-an-address"})
	require.Error(t, err)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-grpc-address", "localhost:9090"})
	require.Error(t, err)
}
