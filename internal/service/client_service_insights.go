package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/MKhiriev/flourish-client/internal/adapter"
	"github.com/MKhiriev/flourish-client/internal/logger"
	"github.com/MKhiriev/flourish-client/internal/validators"
	"github.com/MKhiriev/flourish-client/models"
)

type clientInsightService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewClientInsightService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientInsightService {
	return &clientInsightService{
		adapter:   serverAdapter,
		validator: validators.NewInsightValidator(),
		logger:    logger,
	}
}

func (s *clientInsightService) List(ctx context.Context) (models.InsightSet, error) {
	set, err := s.adapter.GetInsights(ctx)
	if err != nil {
		s.logger.Err(err).
			Str("func", "clientInsightService.List").
			Msg("failed to fetch insights")
		return nil, mapAdapterError(err)
	}

	return set, nil
}

func (s *clientInsightService) Keys(set models.InsightSet) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		if k == models.HolisticInsightKey {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

func (s *clientInsightService) HasHolistic(set models.InsightSet) bool {
	_, ok := set[models.HolisticInsightKey]
	return ok
}

func (s *clientInsightService) Get(ctx context.Context, set models.InsightSet, key string) (models.Insight, error) {
	raw, ok := set[key]
	if !ok {
		if key == models.HolisticInsightKey {
			return models.Insight{}, ErrHolisticUnavailable
		}
		return models.Insight{}, fmt.Errorf("%w: %s", ErrUnknownInsight, key)
	}

	var insight models.Insight
	if err := json.Unmarshal([]byte(raw), &insight); err != nil {
		s.logger.Err(err).
			Str("func", "clientInsightService.Get").
			Str("key", key).
			Msg("failed to decode insight")
		return models.Insight{}, fmt.Errorf("%w: %w", ErrMalformedInsight, err)
	}

	if err := s.validator.Validate(ctx, insight); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "clientInsightService.Get").
			Str("key", key).
			Msg("insight failed validation")
		return models.Insight{}, fmt.Errorf("%w: %w", ErrInvalidInsight, err)
	}

	return insight, nil
}

func (s *clientInsightService) GenerateHolistic(ctx context.Context) error {
	result, err := s.adapter.GenerateHolisticInsight(ctx)
	if err != nil {
		s.logger.Err(err).
			Str("func", "clientInsightService.GenerateHolistic").
			Msg("holistic generation request failed")
		return mapAdapterError(err)
	}
	if !result.Success {
		return ErrHolisticGenerationFailed
	}

	return nil
}
