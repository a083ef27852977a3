// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/MKhiriev/flourish-client/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled):
		return err

	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %s", ErrRequestRejected, extractBody(err))

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return ErrSessionRejected

	case errors.Is(err, adapter.ErrNotFound):
		return ErrNotFound

	case errors.Is(err, adapter.ErrBadGateway), errors.Is(err, adapter.ErrInternalServerError):
		return ErrServerFailure

	case isNetworkError(err):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return err
}

func isNetworkError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
