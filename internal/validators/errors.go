package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyInspirationalParagraph = errors.New("inspirational paragraph is required")
	ErrEmptyHabitName              = errors.New("habit name is required")
	ErrEmptyHabitDescription       = errors.New("habit description is required")
	ErrEmptyHabitRationale         = errors.New("habit rationale is required")
	ErrEmptyContents               = errors.New("at least one content element is required")

	ErrInvalidQuestionID  = errors.New("invalid question id")
	ErrInvalidAnswerValue = errors.New("answer value out of range")
	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrEmptyAnswers       = errors.New("answers list cannot be empty")
)
