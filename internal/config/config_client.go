package config

import (
	"fmt"
	"time"
)

// Defaults applied to the client view when a value is not configured.
const (
	DefaultPushRounds   = 5
	DefaultDialTimeout  = 15 * time.Second
	DefaultIOTimeout    = 30 * time.Second
	DefaultRetryDelay   = 5 * time.Second
	DefaultRoundDelay   = 2 * time.Second
	DefaultAckTimeout   = 30 * time.Second
	DefaultSyncInterval = 5 * time.Minute
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// ClientID identifies the vehicle towards the server.
	ClientID string
	// DiagnosticLog is the append-only technical log path.
	DiagnosticLog string
}

// ClientAdapter holds network settings used by the client flows.
type ClientAdapter struct {
	Host      string
	PushPort  int
	SyncPort  int
	QueryPort int

	DialTimeout time.Duration
	IOTimeout   time.Duration
	RetryDelay  time.Duration
	PushRounds  int
	RoundDelay  time.Duration
	AckTimeout  time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the local store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the automatic update sync runs.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App      ClientApp
	Identity Identity
	Adapter  ClientAdapter
	Storage  ClientStorage
	Workers  ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields relevant to the client runtime and fills
// defaults for unset retry and timeout values.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			ClientID:      cfg.App.ClientID,
			DiagnosticLog: cfg.App.DiagnosticLog,
		},
		Identity: cfg.Identity,
		Adapter: ClientAdapter{
			Host:        cfg.Adapter.Host,
			PushPort:    cfg.Adapter.PushPort,
			SyncPort:    cfg.Adapter.SyncPort,
			QueryPort:   cfg.Adapter.QueryPort,
			DialTimeout: orDuration(cfg.Adapter.DialTimeout, DefaultDialTimeout),
			IOTimeout:   orDuration(cfg.Adapter.IOTimeout, DefaultIOTimeout),
			RetryDelay:  orDuration(cfg.Adapter.RetryDelay, DefaultRetryDelay),
			PushRounds:  cfg.Adapter.PushRounds,
			RoundDelay:  orDuration(cfg.Adapter.RoundDelay, DefaultRoundDelay),
			AckTimeout:  orDuration(cfg.Adapter.AckTimeout, DefaultAckTimeout),
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			SyncInterval: orDuration(cfg.Workers.SyncInterval, DefaultSyncInterval),
		},
	}
	if clientCfg.Adapter.PushRounds <= 0 {
		clientCfg.Adapter.PushRounds = DefaultPushRounds
	}

	return clientCfg
}

func orDuration(v, fallback time.Duration) time.Duration {
	if v <= 0 {
		return fallback
	}
	return v
}
