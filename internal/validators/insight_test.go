// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/flourish-client/models"
	"github.com/stretchr/testify/assert"
)

func validInsight() models.Insight {
	return models.Insight{
		InspirationalParagraph: "Small steps matter.",
		Habit: models.Habit{
			Name:        "Evening wind-down",
			Description: "Put the phone away at 22:00.",
			Rationale:   "Screens delay sleep onset.",
		},
		Contents: []models.ContentElement{{Name: "Why We Sleep", Type: "book"}},
	}
}

func TestInsightValidator_Validate(t *testing.T) {
	v := NewInsightValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(i *models.Insight)
		wantErr error
	}{
		{"valid", func(i *models.Insight) {}, nil},
		{"blank paragraph", func(i *models.Insight) { i.InspirationalParagraph = "  " }, ErrEmptyInspirationalParagraph},
		{"no habit name", func(i *models.Insight) { i.Habit.Name = "" }, ErrEmptyHabitName},
		{"no habit description", func(i *models.Insight) { i.Habit.Description = "" }, ErrEmptyHabitDescription},
		{"no habit rationale", func(i *models.Insight) { i.Habit.Rationale = "" }, ErrEmptyHabitRationale},
		{"no contents", func(i *models.Insight) { i.Contents = nil }, ErrEmptyContents},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insight := validInsight()
			tt.mutate(&insight)

			err := v.Validate(ctx, insight)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			// pointer form behaves the same
			assert.Equal(t, err, v.Validate(ctx, &insight))
		})
	}
}

func TestInsightValidator_FieldScoping(t *testing.T) {
	v := NewInsightValidator()
	insight := models.Insight{InspirationalParagraph: "only this"}

	assert.NoError(t, v.Validate(context.Background(), insight, FieldInspirationalParagraph))
	assert.ErrorIs(t, v.Validate(context.Background(), insight, FieldContents), ErrEmptyContents)
	assert.ErrorIs(t, v.Validate(context.Background(), insight, "bogus"), ErrUnknownField)
}

func TestInsightValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewInsightValidator().Validate(context.Background(), "text"), ErrUnsupportedType)
}
