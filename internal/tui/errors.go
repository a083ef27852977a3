// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/flourish-client/internal/app"
	"github.com/MKhiriev/flourish-client/internal/service"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, service.ErrServerUnavailable) {
		return app.MsgServerUnavailable
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgServerUnavailable
	}

	return err.Error()
}

// userMessage turns a service error into the text shown to the user.
func userMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrSessionRejected):
		return app.MsgSessionRejected
	case errors.Is(err, service.ErrServerFailure):
		return app.MsgServerFailure
	case errors.Is(err, service.ErrRequestRejected):
		return app.MsgRequestRejected
	case errors.Is(err, service.ErrNotFound):
		return app.MsgNotFound
	case errors.Is(err, service.ErrInvalidAnswerValue):
		return app.MsgInvalidAnswerValue
	case errors.Is(err, service.ErrInvalidQuestionID):
		return app.MsgInvalidQuestionID
	case errors.Is(err, service.ErrNoQuestions):
		return app.MsgNoQuestions
	case errors.Is(err, service.ErrUserIDUnavailable):
		return app.MsgUserIDUnavailable
	case errors.Is(err, service.ErrMalformedInsight), errors.Is(err, service.ErrInvalidInsight),
		errors.Is(err, service.ErrUnknownInsight):
		return app.MsgMalformedInsight
	case errors.Is(err, service.ErrHolisticUnavailable):
		return app.MsgHolisticUnavailable
	case errors.Is(err, service.ErrHolisticGenerationFailed):
		return app.MsgHolisticGenerationFailed
	}

	if msg := humanizeServerUnavailableError(err); msg == app.MsgServerUnavailable {
		return msg
	}
	return fmt.Sprintf("%s: %v", app.MsgUnexpectedError, err)
}
