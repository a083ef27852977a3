// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks source-independent invariants of the merged config.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Notifications.DismissAfter < 0 {
		return ErrNegativeDuration
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if _, err := url.Parse(cfg.Adapter.HTTPAddress); err != nil {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Notifications.DismissAfter <= 0 {
		return ErrInvalidNotificationConfigs
	}

	return nil
}
