package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/flourish-client/internal/config"
	"github.com/MKhiriev/flourish-client/internal/logger"
	"github.com/MKhiriev/flourish-client/internal/utils"
	"github.com/MKhiriev/flourish-client/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathQuestions        = "/v1/questions"
	pathResponses        = "/v1/responses"
	pathInsights         = "/v1/insights/llm"
	pathGenerateHolistic = "/v1/insights/llm/generate/holistic"
	pathInsightStream    = "/v1/insights/stream"
	pathUserID           = "/v1/user/id"
	pathUserReset        = "/v1/user/reset"

	headerRequestID = "X-Request-ID"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	stream *utils.HTTPClient

	ids *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the REST client with the resolved base URL and request timeout.
// The stream client shares the base URL and cookie jar but has no timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{
		client: client,
		stream: utils.NewStreamClient(client),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetQuestions implements [ServerAdapter]. GET /v1/questions.
func (h *httpServerAdapter) GetQuestions(ctx context.Context) (models.QuestionSet, error) {
	var questions models.QuestionSet

	resp, err := h.request(ctx, h.client).
		SetResult(&questions).
		Get(pathQuestions)
	if err != nil {
		return nil, fmt.Errorf("get questions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if questions == nil {
		questions = models.QuestionSet{}
	}
	return questions, nil
}

// SubmitResponses implements [ServerAdapter]. POST /v1/responses.
func (h *httpServerAdapter) SubmitResponses(ctx context.Context, req models.SubmitResponsesRequest) error {
	resp, err := h.request(ctx, h.client).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(pathResponses)
	if err != nil {
		return fmt.Errorf("submit responses request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetInsights implements [ServerAdapter]. GET /v1/insights/llm.
func (h *httpServerAdapter) GetInsights(ctx context.Context) (models.InsightSet, error) {
	var insights models.InsightSet

	resp, err := h.request(ctx, h.client).
		SetResult(&insights).
		Get(pathInsights)
	if err != nil {
		return nil, fmt.Errorf("get insights request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if insights == nil {
		insights = models.InsightSet{}
	}
	return insights, nil
}

// GenerateHolisticInsight implements [ServerAdapter].
// GET /v1/insights/llm/generate/holistic.
func (h *httpServerAdapter) GenerateHolisticInsight(ctx context.Context) (models.GenerateResult, error) {
	var result models.GenerateResult

	resp, err := h.request(ctx, h.client).
		SetResult(&result).
		Get(pathGenerateHolistic)
	if err != nil {
		return models.GenerateResult{}, fmt.Errorf("generate holistic insight request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GenerateResult{}, err
	}

	return result, nil
}

// GetUserID implements [ServerAdapter]. GET /v1/user/id.
func (h *httpServerAdapter) GetUserID(ctx context.Context) (string, error) {
	var user models.UserIDResponse

	resp, err := h.request(ctx, h.client).
		SetResult(&user).
		Get(pathUserID)
	if err != nil {
		return "", fmt.Errorf("get user id request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return user.UID, nil
}

// ResetUser implements [ServerAdapter]. GET /v1/user/reset.
func (h *httpServerAdapter) ResetUser(ctx context.Context) error {
	resp, err := h.request(ctx, h.client).Get(pathUserReset)
	if err != nil {
		return fmt.Errorf("reset user request: %w", err)
	}

	return mapHTTPError(resp)
}

// OpenInsightStream implements [ServerAdapter]. GET /v1/insights/stream with
// Accept: text/event-stream. The response body is returned unread; on a
// non-2xx status it is drained into the mapped error and closed.
func (h *httpServerAdapter) OpenInsightStream(ctx context.Context) (io.ReadCloser, error) {
	resp, err := h.request(ctx, h.stream).
		SetHeader("Accept", "text/event-stream").
		SetHeader("Cache-Control", "no-cache").
		Get(pathInsightStream)
	if err != nil {
		return nil, fmt.Errorf("open insight stream request: %w", err)
	}

	body := resp.RawBody()
	if body == nil {
		return nil, ErrEmptyStream
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		defer body.Close()
		return nil, mapStreamError(resp.StatusCode(), body)
	}

	h.logger.Debug().
		Str("func", "httpServerAdapter.OpenInsightStream").
		Int("status", resp.StatusCode()).
		Msg("insight stream opened")

	return body, nil
}

// request returns a resty request bound to ctx and tagged with a request id,
// reusing one stored in ctx if present.
func (h *httpServerAdapter) request(ctx context.Context, client *utils.HTTPClient) *resty.Request {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}

	return client.R().
		SetContext(ctx).
		SetHeader(headerRequestID, requestID)
}
