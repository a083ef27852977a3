package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/flourish-client/internal/adapter"
	"github.com/MKhiriev/flourish-client/internal/logger"
	"github.com/MKhiriev/flourish-client/internal/store"
)

type clientUserService struct {
	adapter       adapter.ServerAdapter
	session       store.LocalSessionRepository
	answers       store.LocalAnswerRepository
	notifications NotificationResetter

	logger *logger.Logger
}

func NewClientUserService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, notifications NotificationResetter, logger *logger.Logger) ClientUserService {
	return &clientUserService{
		adapter:       serverAdapter,
		session:       storages.SessionRepository,
		answers:       storages.AnswerRepository,
		notifications: notifications,
		logger:        logger,
	}
}

// UserID implements ClientUserService.
func (s *clientUserService) UserID(ctx context.Context) (string, error) {
	log := s.logger.With().Str("func", "clientUserService.UserID").Logger()

	uid, err := s.adapter.GetUserID(ctx)
	if err != nil {
		mapped := mapAdapterError(err)
		if !errors.Is(mapped, ErrServerUnavailable) {
			log.Err(err).Msg("failed to fetch user id")
			return "", mapped
		}

		cached, cacheErr := s.session.GetUserID(ctx)
		if cacheErr != nil {
			log.Err(err).Msg("server unavailable and no cached user id")
			return "", mapped
		}

		log.Warn().Err(err).Msg("server unavailable, using cached user id")
		return cached, nil
	}

	if uid == "" {
		return "", ErrUserIDUnavailable
	}

	if saveErr := s.session.SaveUserID(ctx, uid); saveErr != nil {
		log.Warn().Err(saveErr).Msg("failed to cache user id")
	}

	return uid, nil
}

// Reset implements ClientUserService. The local cache is only cleared once
// the backend confirmed the reset.
func (s *clientUserService) Reset(ctx context.Context) error {
	log := s.logger.With().Str("func", "clientUserService.Reset").Logger()

	if err := s.adapter.ResetUser(ctx); err != nil {
		log.Err(err).Msg("backend reset failed")
		return mapAdapterError(err)
	}

	localErr := errors.Join(
		s.answers.DeleteAnswers(ctx),
		s.session.DeleteSession(ctx),
	)
	s.notifications.Reset()

	if localErr != nil {
		log.Err(localErr).Msg("failed to clear local cache")
		return fmt.Errorf("clear local cache: %w", localErr)
	}

	log.Info().Msg("session reset")
	return nil
}
