package service

import (
	"context"

	"github.com/MKhiriev/flourish-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientQuestionnaireService loads the questionnaire, keeps answers in the
// local cache and submits them.
type ClientQuestionnaireService interface {
	// Load fetches the questions and the cached answers concurrently. The
	// questions are ordered by numeric id.
	Load(ctx context.Context) ([]models.Question, models.Answers, error)

	// SetAnswer stores value for questionID. Returns [ErrInvalidAnswerValue]
	// if value is outside [models.MinAnswerValue, models.MaxAnswerValue].
	SetAnswer(ctx context.Context, questionID string, value int) error

	// Submit sends an answer for every question. Questions without a cached
	// answer get [models.DefaultAnswerValue]. The full set is cached first.
	Submit(ctx context.Context, userID string, questions []models.Question) error
}

// ClientInsightService reads and triggers generation of insights.
type ClientInsightService interface {
	// List fetches every generated insight. An empty set means the user has
	// not answered enough questions yet.
	List(ctx context.Context) (models.InsightSet, error)

	// Keys returns the sorted dimension keys of set, without the holistic one.
	Keys(set models.InsightSet) []string

	// HasHolistic reports whether set contains the holistic insight.
	HasHolistic(set models.InsightSet) bool

	// Get decodes and validates the insight stored under key.
	Get(ctx context.Context, set models.InsightSet, key string) (models.Insight, error)

	// GenerateHolistic asks the backend to build the holistic insight from
	// the current answers, creating it if none exists yet.
	GenerateHolistic(ctx context.Context) error
}

// ClientUserService exposes the session user.
type ClientUserService interface {
	// UserID returns the user id of the session. If the backend cannot be
	// reached the cached id is returned instead.
	UserID(ctx context.Context) (string, error)

	// Reset clears the session on the backend, then the local cache and the
	// current notification.
	Reset(ctx context.Context) error
}

// InsightStream keeps at most one insight notification stream open.
type InsightStream interface {
	// Connect opens a new stream, cancelling and waiting for the previous one
	// first. It returns immediately; reading happens in the background until
	// ctx is cancelled, Disconnect is called or the stream fails.
	Connect(ctx context.Context)

	// Disconnect cancels the active stream and waits for its reader to exit.
	// No-op when nothing is connected.
	Disconnect()

	// State reports the state of the most recent connection.
	State() models.StreamState
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	BuildInfo(ctx context.Context) models.AppBuildInfo
}

// NotificationPublisher receives dimension names from the stream.
type NotificationPublisher interface {
	Publish(dimension string) bool
}

// NotificationResetter clears the current notification.
type NotificationResetter interface {
	Reset()
}
