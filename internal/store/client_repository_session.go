package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/flourish-client/internal/logger"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSessionRepository) SaveUserID(ctx context.Context, userID string) error {
	query, args, err := upsertSessionQuery(userID, time.Now().UTC()).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		l.logger.Err(err).
			Str("func", "localSessionRepository.SaveUserID").
			Msg("failed to save session user id")
		return fmt.Errorf("%w: save session: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localSessionRepository) GetUserID(ctx context.Context) (string, error) {
	query, args, err := selectSessionQuery().ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var userID string
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrLocalSessionNotFound
	}
	if err != nil {
		l.logger.Err(err).
			Str("func", "localSessionRepository.GetUserID").
			Msg("failed to read session user id")
		return "", fmt.Errorf("%w: get session: %w", ErrExecutingQuery, err)
	}

	return userID, nil
}

func (l *localSessionRepository) DeleteSession(ctx context.Context) error {
	query, args, err := deleteSessionQuery().ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		l.logger.Err(err).
			Str("func", "localSessionRepository.DeleteSession").
			Msg("failed to delete session")
		return fmt.Errorf("%w: delete session: %w", ErrExecutingStatement, err)
	}

	return nil
}
