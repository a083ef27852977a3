// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`
	// Adapter holds the backend address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`
	// Storage holds the local answer/session cache settings.
	Storage Storage `envPrefix:"STORAGE_"`
	// Notifications holds insight banner settings.
	Notifications Notifications `envPrefix:"NOTIFICATIONS_"`
	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`
	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version overrides the build version shown in the TUI.
	Version string `env:"VERSION"`
}

// Adapter holds settings of the backend transport.
type Adapter struct {
	// HTTPAddress is the API base, e.g. "http://localhost:8080".
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout bounds every REST call. The insight stream is exempt.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite cache location.
type DB struct {
	DSN string `env:"DSN"`
}

// Notifications holds insight banner settings.
type Notifications struct {
	// DismissAfter is how long a banner stays visible without interaction.
	DismissAfter time.Duration `env:"DISMISS_AFTER"`
}

// Workers holds background worker settings.
type Workers struct {
	// StreamOnStart connects the insight stream when the client starts.
	// A pointer so that an explicit false survives the merge.
	StreamOnStart *bool `env:"STREAM_ON_START"`
}

// Defaults used when no source provides a value.
const (
	DefaultHTTPAddress    = "http://localhost:8080"
	DefaultRequestTimeout = 15 * time.Second
	DefaultDSN            = "flourish.db"
	DefaultDismissAfter   = 5 * time.Second
)

func defaultConfig() *StructuredConfig {
	streamOnStart := true
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage:       Storage{DB: DB{DSN: DefaultDSN}},
		Notifications: Notifications{DismissAfter: DefaultDismissAfter},
		Workers:       Workers{StreamOnStart: &streamOnStart},
	}
}

// GetStructuredConfig loads and merges all configuration sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
