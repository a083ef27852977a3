package validators

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/flourish-client/models"
)

// Field name constants accepted by [AnswerValidator].
const (
	FieldQuestionID = "question_id"
	FieldValue      = "value"
	FieldUserID     = "user_id"
	FieldAnswers    = "answers"
)

// AnswerValidator checks single answers and whole submissions.
type AnswerValidator struct {
}

func NewAnswerValidator() Validator {
	return &AnswerValidator{}
}

func (v *AnswerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Answer:
		return v.validateAnswer(value, fields...)
	case *models.Answer:
		return v.validateAnswer(*value, fields...)

	case models.SubmitResponsesRequest:
		return v.validateSubmitRequest(value, fields...)
	case *models.SubmitResponsesRequest:
		return v.validateSubmitRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AnswerValidator) validateAnswer(answer models.Answer, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuestionID, FieldValue}
	}

	for _, f := range fields {
		switch f {
		case FieldQuestionID:
			if _, err := strconv.ParseInt(answer.QuestionID, 10, 64); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidQuestionID, answer.QuestionID)
			}
		case FieldValue:
			if !IsValidAnswerValue(answer.Value) {
				return fmt.Errorf("%w: %d", ErrInvalidAnswerValue, answer.Value)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AnswerValidator) validateSubmitRequest(req models.SubmitResponsesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldAnswers}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if blank(req.UserID) {
				return ErrInvalidUserID
			}
		case FieldAnswers:
			if len(req.Answers) == 0 {
				return ErrEmptyAnswers
			}
			for i, a := range req.Answers {
				if !IsValidAnswerValue(a.Value) {
					return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidAnswerValue)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsValidAnswerValue reports whether value lies on the answer scale.
func IsValidAnswerValue(value int) bool {
	return value >= models.MinAnswerValue && value <= models.MaxAnswerValue
}
