// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the flourish backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) that also opens the Server-Sent Events insight
// stream.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/flourish-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the flourish
// backend. The session is carried by cookies that the implementation stores
// and replays on every request, including the stream.
type ServerAdapter interface {
	// GetQuestions fetches the questionnaire keyed by question id.
	GetQuestions(ctx context.Context) (models.QuestionSet, error)

	// SubmitResponses posts a full answer set for req.UserID.
	SubmitResponses(ctx context.Context, req models.SubmitResponsesRequest) error

	// GetInsights fetches every generated insight, each still serialized as a
	// JSON string. An empty set means nothing has been generated yet.
	GetInsights(ctx context.Context) (models.InsightSet, error)

	// GenerateHolisticInsight asks the backend to build the cross-dimension
	// insight from the existing ones.
	GenerateHolisticInsight(ctx context.Context) (models.GenerateResult, error)

	// GetUserID returns the id of the user bound to the current session.
	GetUserID(ctx context.Context) (string, error)

	// ResetUser clears all server-side data of the current session.
	ResetUser(ctx context.Context) error

	// OpenInsightStream opens the insight event stream and returns its raw
	// body once the response headers have arrived. The body stays open until
	// the caller closes it or ctx is cancelled.
	OpenInsightStream(ctx context.Context) (io.ReadCloser, error)
}
