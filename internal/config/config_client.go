// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the API base address.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound REST requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientNotifications contains banner presentation settings.
type ClientNotifications struct {
	DismissAfter time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	StreamOnStart bool
}

// ClientApp contains application-level client settings.
type ClientApp struct {
	Version string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App           ClientApp
	Adapter       ClientAdapter
	Storage       ClientStorage
	Notifications ClientNotifications
	Workers       ClientWorkers
}

// GetClientConfig builds and validates the client configuration view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	streamOnStart := cfg.Workers.StreamOnStart == nil || *cfg.Workers.StreamOnStart

	return &ClientConfig{
		App: ClientApp{Version: cfg.App.Version},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Notifications: ClientNotifications{DismissAfter: cfg.Notifications.DismissAfter},
		Workers:       ClientWorkers{StreamOnStart: streamOnStart},
	}
}
