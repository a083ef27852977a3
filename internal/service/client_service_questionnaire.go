package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/flourish-client/internal/adapter"
	"github.com/MKhiriev/flourish-client/internal/logger"
	"github.com/MKhiriev/flourish-client/internal/store"
	"github.com/MKhiriev/flourish-client/internal/validators"
	"github.com/MKhiriev/flourish-client/models"
	"golang.org/x/sync/errgroup"
)

type clientQuestionnaireService struct {
	adapter   adapter.ServerAdapter
	answers   store.LocalAnswerRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewClientQuestionnaireService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientQuestionnaireService {
	return &clientQuestionnaireService{
		adapter:   serverAdapter,
		answers:   storages.AnswerRepository,
		validator: validators.NewAnswerValidator(),
		logger:    logger,
	}
}

// Load implements ClientQuestionnaireService. A failing answer cache is
// logged and treated as empty so the questionnaire still opens.
func (s *clientQuestionnaireService) Load(ctx context.Context) ([]models.Question, models.Answers, error) {
	var (
		questions models.QuestionSet
		answers   models.Answers
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		set, err := s.adapter.GetQuestions(gctx)
		if err != nil {
			return mapAdapterError(err)
		}
		questions = set
		return nil
	})

	g.Go(func() error {
		cached, err := s.answers.GetAnswers(gctx)
		if err != nil {
			s.logger.Warn().Err(err).
				Str("func", "clientQuestionnaireService.Load").
				Msg("cached answers unavailable")
			cached = models.Answers{}
		}
		answers = cached
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Err(err).
			Str("func", "clientQuestionnaireService.Load").
			Msg("failed to load questionnaire")
		return nil, nil, err
	}

	return questions.Ordered(), answers, nil
}

// SetAnswer implements ClientQuestionnaireService.
func (s *clientQuestionnaireService) SetAnswer(ctx context.Context, questionID string, value int) error {
	answer := models.Answer{QuestionID: questionID, Value: value, UpdatedAt: time.Now().UTC()}

	if err := s.validator.Validate(ctx, answer, validators.FieldValue); err != nil {
		return fmt.Errorf("%w: got %d", ErrInvalidAnswerValue, value)
	}

	return s.answers.SaveAnswers(ctx, answer)
}

// Submit implements ClientQuestionnaireService.
func (s *clientQuestionnaireService) Submit(ctx context.Context, userID string, questions []models.Question) error {
	log := s.logger.With().Str("func", "clientQuestionnaireService.Submit").Logger()

	if len(questions) == 0 {
		return ErrNoQuestions
	}
	if userID == "" {
		return ErrUserIDUnavailable
	}

	cached, err := s.answers.GetAnswers(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("cached answers unavailable, submitting defaults")
		cached = models.Answers{}
	}

	now := time.Now().UTC()
	full := make([]models.Answer, 0, len(questions))
	payload := make([]models.AnswerPayload, 0, len(questions))

	for _, q := range questions {
		value, ok := cached[q.ID]
		if !ok {
			value = models.DefaultAnswerValue
		}

		numericID, convErr := strconv.ParseInt(q.ID, 10, 64)
		if convErr != nil {
			return fmt.Errorf("%w: %q", ErrInvalidQuestionID, q.ID)
		}

		full = append(full, models.Answer{QuestionID: q.ID, Value: value, UpdatedAt: now})
		payload = append(payload, models.AnswerPayload{QuestionID: numericID, Value: value})
	}

	req := models.SubmitResponsesRequest{UserID: userID, Answers: payload}
	if err = s.validator.Validate(ctx, req); err != nil {
		if errors.Is(err, validators.ErrInvalidAnswerValue) {
			return fmt.Errorf("%w: %w", ErrInvalidAnswerValue, err)
		}
		return err
	}

	if err = s.answers.SaveAnswers(ctx, full...); err != nil {
		log.Err(err).Msg("failed to cache full answer set")
		return err
	}

	if err = s.adapter.SubmitResponses(ctx, req); err != nil {
		log.Err(err).Int("answers", len(payload)).Msg("failed to submit responses")
		return mapAdapterError(err)
	}

	log.Info().Int("answers", len(payload)).Msg("responses submitted")
	return nil
}
