// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	t.Setenv("CONFIG", "/path/to/config.json")
	t.Setenv("APP_VERSION", "1.2.3")
	t.Setenv("ADAPTER_ADDRESS", "https://api.example.com")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "30s")
	t.Setenv("STORAGE_DB_DSN", "/tmp/flourish.db")
	t.Setenv("NOTIFICATIONS_DISMISS_AFTER", "2s")
	t.Setenv("WORKERS_STREAM_ON_START", "false")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/flourish.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Second, cfg.Notifications.DismissAfter)
	require.NotNil(t, cfg.Workers.StreamOnStart)
	assert.False(t, *cfg.Workers.StreamOnStart)
}

func TestParseEnv_NothingSet(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Notifications.DismissAfter)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("NOTIFICATIONS_DISMISS_AFTER", "soon")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
