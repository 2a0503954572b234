// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.Host == "" || cfg.Adapter.PushPort <= 0 || cfg.Adapter.SyncPort <= 0 || cfg.Adapter.QueryPort <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Identity.CertFile == "" || cfg.Identity.KeyFile == "" || cfg.Identity.CAFile == "" {
		return ErrInvalidIdentityConfigs
	}

	if cfg.App.ClientID == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.PushAddress == "" && cfg.Server.SyncAddress == "" && cfg.Server.QueryAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Identity.CertFile == "" || cfg.Identity.KeyFile == "" || cfg.Identity.CAFile == "" {
		return ErrInvalidIdentityConfigs
	}

	return nil
}
