// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// sync client and server. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the vehicle identity and the application version.
	App App `envPrefix:"APP_"`

	// Identity holds certificate locations for the mutually authenticated
	// channel.
	Identity Identity `envPrefix:"IDENTITY_"`

	// Storage holds the relational database settings (SQLite on the client,
	// PostgreSQL on the server).
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listener addresses and timeouts of the sync server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the server: host, per-flow ports,
	// retry and timeout policy.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// ClientID identifies the vehicle towards the server.
	// Env: APP_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// DiagnosticLog is the path of the client's append-only diagnostic log.
	// Env: APP_DIAGNOSTIC_LOG
	DiagnosticLog string `env:"DIAGNOSTIC_LOG"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Identity holds PEM file locations. The client uses CertFile/KeyFile as its
// own credential and CAFile as the server trust anchor; the server uses them
// as its certificate and as the anchor for client certificates.
type Identity struct {
	// Env: IDENTITY_CERT_FILE
	CertFile string `env:"CERT_FILE"`
	// Env: IDENTITY_KEY_FILE
	KeyFile string `env:"KEY_FILE"`
	// Env: IDENTITY_CA_FILE
	CAFile string `env:"CA_FILE"`
	// ServerName overrides the name verified in the server certificate.
	// Env: IDENTITY_SERVER_NAME
	ServerName string `env:"SERVER_NAME"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the SQLite file path on the client or the PostgreSQL connection
	// string on the server.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds listener settings of the sync server. Each flow has its own
// listener.
type Server struct {
	// Env: SERVER_PUSH_ADDRESS
	PushAddress string `env:"PUSH_ADDRESS"`
	// Env: SERVER_SYNC_ADDRESS
	SyncAddress string `env:"SYNC_ADDRESS"`
	// Env: SERVER_QUERY_ADDRESS
	QueryAddress string `env:"QUERY_ADDRESS"`
	// MetricsAddress serves /metrics and /healthz over plain HTTP.
	// Env: SERVER_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`

	// ConnectionTimeout bounds a single client conversation.
	// Env: SERVER_CONNECTION_TIMEOUT
	ConnectionTimeout time.Duration `env:"CONNECTION_TIMEOUT"`

	// KnownClients are provisioned in ambulance_last_update at startup.
	// Env: SERVER_KNOWN_CLIENTS (comma separated)
	KnownClients []string `env:"KNOWN_CLIENTS" envSeparator:","`
}

// Adapter holds the client transport settings.
type Adapter struct {
	// Env: ADAPTER_HOST
	Host string `env:"HOST"`
	// Env: ADAPTER_PUSH_PORT
	PushPort int `env:"PUSH_PORT"`
	// Env: ADAPTER_SYNC_PORT
	SyncPort int `env:"SYNC_PORT"`
	// Env: ADAPTER_QUERY_PORT
	QueryPort int `env:"QUERY_PORT"`

	// DialTimeout bounds DNS + TCP + TLS handshake.
	// Env: ADAPTER_DIAL_TIMEOUT
	DialTimeout time.Duration `env:"DIAL_TIMEOUT"`

	// IOTimeout bounds a single blocking send or receive.
	// Env: ADAPTER_IO_TIMEOUT
	IOTimeout time.Duration `env:"IO_TIMEOUT"`

	// RetryDelay is the fixed pause between query client attempts.
	// Env: ADAPTER_RETRY_DELAY
	RetryDelay time.Duration `env:"RETRY_DELAY"`

	// PushRounds bounds the push pipeline round loop.
	// Env: ADAPTER_PUSH_ROUNDS
	PushRounds int `env:"PUSH_ROUNDS"`

	// RoundDelay is the pause between two push rounds.
	// Env: ADAPTER_ROUND_DELAY
	RoundDelay time.Duration `env:"ROUND_DELAY"`

	// AckTimeout bounds the wait for outstanding acks after the last send.
	// Env: ADAPTER_ACK_TIMEOUT
	AckTimeout time.Duration `env:"ACK_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the client's automatic update sync.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// ArchiveInterval is the period of the server's log archiver.
	// Env: WORKERS_ARCHIVE_INTERVAL
	ArchiveInterval time.Duration `env:"ARCHIVE_INTERVAL"`

	// ArchiveRetention keeps entries younger than this in the live log.
	// Env: WORKERS_ARCHIVE_RETENTION
	ArchiveRetention time.Duration `env:"ARCHIVE_RETENTION"`
}

// GetStructuredConfig loads and merges the configuration from all sources in
// the following priority order (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
