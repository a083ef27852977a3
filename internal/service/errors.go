package service

import "errors"

var (
	ErrInvalidAnswerValue = errors.New("answer value must be between 1 and 10")
	ErrInvalidQuestionID  = errors.New("question id is not numeric")
	ErrNoQuestions        = errors.New("no questions to submit")
	ErrUserIDUnavailable  = errors.New("user id is unavailable")

	ErrUnknownInsight           = errors.New("no insight for this dimension")
	ErrMalformedInsight         = errors.New("insight payload is malformed")
	ErrInvalidInsight           = errors.New("insight is incomplete")
	ErrHolisticUnavailable      = errors.New("holistic insight does not exist yet")
	ErrHolisticGenerationFailed = errors.New("holistic insight generation failed")

	ErrServerUnavailable = errors.New("server unavailable")
	ErrSessionRejected   = errors.New("session rejected by server")
	ErrServerFailure     = errors.New("server failed to process request")
	ErrRequestRejected   = errors.New("server rejected request")
	ErrNotFound          = errors.New("resource not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
