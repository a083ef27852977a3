package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/flourish-client/models"
)

// Field name constants accepted by [InsightValidator].
const (
	FieldInspirationalParagraph = "inspirational_paragraph"
	FieldHabitName              = "habit_name"
	FieldHabitDescription       = "habit_description"
	FieldHabitRationale         = "habit_rationale"
	FieldContents               = "contents"
)

// InsightValidator checks that a decoded insight carries everything the
// detail screen renders.
type InsightValidator struct {
}

func NewInsightValidator() Validator {
	return &InsightValidator{}
}

func (v *InsightValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Insight:
		return v.validateInsight(value, fields...)
	case *models.Insight:
		return v.validateInsight(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *InsightValidator) validateInsight(insight models.Insight, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldInspirationalParagraph, FieldHabitName, FieldHabitDescription, FieldHabitRationale, FieldContents}
	}

	for _, f := range fields {
		switch f {
		case FieldInspirationalParagraph:
			if blank(insight.InspirationalParagraph) {
				return ErrEmptyInspirationalParagraph
			}
		case FieldHabitName:
			if blank(insight.Habit.Name) {
				return ErrEmptyHabitName
			}
		case FieldHabitDescription:
			if blank(insight.Habit.Description) {
				return ErrEmptyHabitDescription
			}
		case FieldHabitRationale:
			if blank(insight.Habit.Rationale) {
				return ErrEmptyHabitRationale
			}
		case FieldContents:
			if len(insight.Contents) == 0 {
				return ErrEmptyContents
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
