package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/flourish-client/internal/logger"
	"github.com/MKhiriev/flourish-client/models"
)

type localAnswerRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalAnswerRepository(db *DB, logger *logger.Logger) LocalAnswerRepository {
	return &localAnswerRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localAnswerRepository) SaveAnswers(ctx context.Context, answers ...models.Answer) error {
	if len(answers) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(answers))
	for _, a := range answers {
		updatedAt := a.UpdatedAt
		if updatedAt.IsZero() {
			updatedAt = time.Now().UTC()
		}
		rows = append(rows, []any{a.QuestionID, a.Value, updatedAt})
	}

	query, args, err := upsertAnswersQuery(rows).ToSql()
	if err != nil {
		l.logger.Err(err).
			Str("func", "localAnswerRepository.SaveAnswers").
			Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		l.logger.Err(err).
			Str("func", "localAnswerRepository.SaveAnswers").
			Int("count", len(answers)).
			Msg("failed to execute upsert for answers")
		return fmt.Errorf("%w: save answers: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localAnswerRepository) GetAnswers(ctx context.Context) (models.Answers, error) {
	query, args, err := selectAnswersQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		l.logger.Err(err).
			Str("func", "localAnswerRepository.GetAnswers").
			Msg("failed to execute query for getting answers")
		return nil, fmt.Errorf("%w: get answers: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	answers := make(models.Answers)
	for rows.Next() {
		var (
			questionID string
			value      int
		)
		if scanErr := rows.Scan(&questionID, &value); scanErr != nil {
			l.logger.Err(scanErr).
				Str("func", "localAnswerRepository.GetAnswers").
				Msg("failed to scan answer row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		answers[questionID] = value
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		l.logger.Err(rowsErr).
			Str("func", "localAnswerRepository.GetAnswers").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return answers, nil
}

func (l *localAnswerRepository) DeleteAnswers(ctx context.Context) error {
	query, args, err := deleteAnswersQuery().ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		l.logger.Err(err).
			Str("func", "localAnswerRepository.DeleteAnswers").
			Msg("failed to delete answers")
		return fmt.Errorf("%w: delete answers: %w", ErrExecutingStatement, err)
	}

	return nil
}
