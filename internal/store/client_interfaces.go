package store

import (
	"context"

	"github.com/MKhiriev/flourish-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalAnswerRepository caches questionnaire answers on the device.
type LocalAnswerRepository interface {
	// SaveAnswers upserts answers by question id.
	SaveAnswers(ctx context.Context, answers ...models.Answer) error
	// GetAnswers returns every cached answer. An empty cache is not an error.
	GetAnswers(ctx context.Context) (models.Answers, error)
	// DeleteAnswers removes every cached answer.
	DeleteAnswers(ctx context.Context) error
}

// LocalSessionRepository caches the id of the user bound to the session.
type LocalSessionRepository interface {
	// SaveUserID replaces the cached user id.
	SaveUserID(ctx context.Context, userID string) error
	// GetUserID returns the cached user id or [ErrLocalSessionNotFound].
	GetUserID(ctx context.Context) (string, error)
	// DeleteSession forgets the cached user id.
	DeleteSession(ctx context.Context) error
}
