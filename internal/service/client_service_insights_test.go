package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/flourish-client/internal/adapter"
	"github.com/MKhiriev/flourish-client/internal/logger"
	"github.com/MKhiriev/flourish-client/internal/mock"
	"github.com/MKhiriev/flourish-client/internal/validators"
	"github.com/MKhiriev/flourish-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const validInsightJSON = `{
	"inspirational_paragraph": "Rest is productive.",
	"habit": {"name": "Wind down", "description": "No screens after 22:00", "rationale": "Blue light delays sleep"},
	"contents": [{"name": "Why We Sleep", "rationale": "Background", "type": "book", "link": "https://example.com"}]
}`

func newInsightFixture(t *testing.T) (ClientInsightService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	adapterMock := mock.NewMockServerAdapter(ctrl)
	return NewClientInsightService(adapterMock, logger.Nop()), adapterMock
}

func TestInsights_List(t *testing.T) {
	svc, adapterMock := newInsightFixture(t)
	want := models.InsightSet{"sleep": validInsightJSON}
	adapterMock.EXPECT().GetInsights(gomock.Any()).Return(want, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestInsights_List_ErrorIsMapped(t *testing.T) {
	svc, adapterMock := newInsightFixture(t)
	adapterMock.EXPECT().GetInsights(gomock.Any()).Return(nil, adapter.ErrForbidden)

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, ErrSessionRejected)
}

func TestInsights_KeysAndHolistic(t *testing.T) {
	svc, _ := newInsightFixture(t)
	set := models.InsightSet{
		"stress":                  "{}",
		models.HolisticInsightKey: "{}",
		"mood":                    "{}",
		"sleep":                   "{}",
	}

	assert.Equal(t, []string{"mood", "sleep", "stress"}, svc.Keys(set))
	assert.True(t, svc.HasHolistic(set))
	assert.False(t, svc.HasHolistic(models.InsightSet{"sleep": "{}"}))
	assert.Empty(t, svc.Keys(nil))
}

func TestInsights_Get(t *testing.T) {
	tests := []struct {
		name      string
		set       models.InsightSet
		key       string
		wantErr   error
		wantCause error
		wantHabit string
	}{
		{
			name:      "valid",
			set:       models.InsightSet{"sleep": validInsightJSON},
			key:       "sleep",
			wantHabit: "Wind down",
		},
		{
			name:    "unknown key",
			set:     models.InsightSet{"sleep": validInsightJSON},
			key:     "mood",
			wantErr: ErrUnknownInsight,
		},
		{
			name:    "holistic not generated yet",
			set:     models.InsightSet{"sleep": validInsightJSON},
			key:     models.HolisticInsightKey,
			wantErr: ErrHolisticUnavailable,
		},
		{
			name:    "malformed json",
			set:     models.InsightSet{"sleep": `{"habit": `},
			key:     "sleep",
			wantErr: ErrMalformedInsight,
		},
		{
			name:      "missing habit",
			set:       models.InsightSet{"sleep": `{"inspirational_paragraph": "x", "contents": [{"name": "y"}]}`},
			key:       "sleep",
			wantErr:   ErrInvalidInsight,
			wantCause: validators.ErrEmptyHabitName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newInsightFixture(t)

			insight, err := svc.Get(context.Background(), tt.set, tt.key)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.wantCause != nil {
					assert.ErrorIs(t, err, tt.wantCause)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHabit, insight.Habit.Name)
			assert.Len(t, insight.Contents, 1)
		})
	}
}

func TestInsights_GenerateHolistic(t *testing.T) {
	t.Run("creates the first holistic insight", func(t *testing.T) {
		svc, adapterMock := newInsightFixture(t)
		adapterMock.EXPECT().GenerateHolisticInsight(gomock.Any()).Return(models.GenerateResult{Success: true}, nil)

		require.False(t, svc.HasHolistic(models.InsightSet{"sleep": validInsightJSON}))
		assert.NoError(t, svc.GenerateHolistic(context.Background()))
	})

	t.Run("backend reports failure", func(t *testing.T) {
		svc, adapterMock := newInsightFixture(t)
		adapterMock.EXPECT().GenerateHolisticInsight(gomock.Any()).Return(models.GenerateResult{Success: false}, nil)

		err := svc.GenerateHolistic(context.Background())
		assert.ErrorIs(t, err, ErrHolisticGenerationFailed)
	})

	t.Run("transport error", func(t *testing.T) {
		svc, adapterMock := newInsightFixture(t)
		adapterMock.EXPECT().GenerateHolisticInsight(gomock.Any()).Return(models.GenerateResult{}, adapter.ErrBadGateway)

		err := svc.GenerateHolistic(context.Background())
		assert.ErrorIs(t, err, ErrServerFailure)
	})
}
