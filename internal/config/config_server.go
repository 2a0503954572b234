// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Server-side defaults.
const (
	DefaultConnectionTimeout = 2 * time.Minute
	DefaultArchiveInterval   = time.Hour
	DefaultArchiveRetention  = 30 * 24 * time.Hour
)

// ServerWorkers contains server background worker settings.
type ServerWorkers struct {
	ArchiveInterval  time.Duration
	ArchiveRetention time.Duration
}

// ServerConfig is the sync server configuration view.
type ServerConfig struct {
	Identity Identity
	Server   Server
	Storage  Storage
	Workers  ServerWorkers
	Version  string
}

// GetServerConfig builds and validates the server view of the merged
// configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps the fields relevant to the server runtime.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		Identity: cfg.Identity,
		Server:   cfg.Server,
		Storage:  cfg.Storage,
		Workers: ServerWorkers{
			ArchiveInterval:  orDuration(cfg.Workers.ArchiveInterval, DefaultArchiveInterval),
			ArchiveRetention: orDuration(cfg.Workers.ArchiveRetention, DefaultArchiveRetention),
		},
		Version: cfg.App.Version,
	}
	serverCfg.Server.ConnectionTimeout = orDuration(cfg.Server.ConnectionTimeout, DefaultConnectionTimeout)

	return serverCfg
}
