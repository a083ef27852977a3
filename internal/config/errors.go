package config

import "errors"

var (
	// ErrNegativeDuration is returned when any configured duration is negative.
	ErrNegativeDuration = errors.New("duration must not be negative")
	// ErrInvalidAdapterConfigs indicates a missing or malformed API address
	// or a non-positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty local cache path.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidNotificationConfigs indicates a non-positive banner timeout.
	ErrInvalidNotificationConfigs = errors.New("invalid notification configuration")
)
