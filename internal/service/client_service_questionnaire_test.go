package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/flourish-client/internal/adapter"
	"github.com/MKhiriev/flourish-client/internal/logger"
	"github.com/MKhiriev/flourish-client/internal/mock"
	"github.com/MKhiriev/flourish-client/internal/store"
	"github.com/MKhiriev/flourish-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type questionnaireFixture struct {
	svc     ClientQuestionnaireService
	adapter *mock.MockServerAdapter
	answers *mock.MockLocalAnswerRepository
}

func newQuestionnaireFixture(t *testing.T) questionnaireFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	adapterMock := mock.NewMockServerAdapter(ctrl)
	answersMock := mock.NewMockLocalAnswerRepository(ctrl)

	storages := &store.ClientStorages{AnswerRepository: answersMock}
	return questionnaireFixture{
		svc:     NewClientQuestionnaireService(storages, adapterMock, logger.Nop()),
		adapter: adapterMock,
		answers: answersMock,
	}
}

func TestQuestionnaire_Load_OrdersQuestionsAndReturnsCache(t *testing.T) {
	f := newQuestionnaireFixture(t)
	f.adapter.EXPECT().GetQuestions(gomock.Any()).Return(models.QuestionSet{
		"10": {Text: "ten"},
		"2":  {Text: "two"},
		"1":  {Text: "one"},
	}, nil)
	f.answers.EXPECT().GetAnswers(gomock.Any()).Return(models.Answers{"2": 8}, nil)

	questions, answers, err := f.svc.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, []string{"1", "2", "10"}, []string{questions[0].ID, questions[1].ID, questions[2].ID})
	assert.Equal(t, "ten", questions[2].Text)
	assert.Equal(t, models.Answers{"2": 8}, answers)
}

func TestQuestionnaire_Load_CacheFailureIsTolerated(t *testing.T) {
	f := newQuestionnaireFixture(t)
	f.adapter.EXPECT().GetQuestions(gomock.Any()).Return(models.QuestionSet{"1": {Text: "one"}}, nil)
	f.answers.EXPECT().GetAnswers(gomock.Any()).Return(nil, errors.New("disk I/O error"))

	questions, answers, err := f.svc.Load(context.Background())

	require.NoError(t, err)
	assert.Len(t, questions, 1)
	assert.Empty(t, answers)
}

func TestQuestionnaire_Load_BackendErrorIsMapped(t *testing.T) {
	f := newQuestionnaireFixture(t)
	f.adapter.EXPECT().GetQuestions(gomock.Any()).Return(nil, adapter.ErrInternalServerError)
	f.answers.EXPECT().GetAnswers(gomock.Any()).Return(models.Answers{}, nil).AnyTimes()

	_, _, err := f.svc.Load(context.Background())

	assert.ErrorIs(t, err, ErrServerFailure)
}

func TestQuestionnaire_SetAnswer(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr error
	}{
		{name: "lower bound", value: models.MinAnswerValue},
		{name: "upper bound", value: models.MaxAnswerValue},
		{name: "zero", value: 0, wantErr: ErrInvalidAnswerValue},
		{name: "eleven", value: 11, wantErr: ErrInvalidAnswerValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newQuestionnaireFixture(t)
			if tt.wantErr == nil {
				f.answers.EXPECT().SaveAnswers(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, answers ...models.Answer) error {
						require.Len(t, answers, 1)
						assert.Equal(t, "3", answers[0].QuestionID)
						assert.Equal(t, tt.value, answers[0].Value)
						assert.False(t, answers[0].UpdatedAt.IsZero())
						return nil
					})
			}

			err := f.svc.SetAnswer(context.Background(), "3", tt.value)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestQuestionnaire_Submit_FillsDefaultsAndCachesBeforePosting(t *testing.T) {
	f := newQuestionnaireFixture(t)
	questions := []models.Question{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	f.answers.EXPECT().GetAnswers(gomock.Any()).Return(models.Answers{"2": 9}, nil)
	gomock.InOrder(
		f.answers.EXPECT().SaveAnswers(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, answers ...models.Answer) error {
				require.Len(t, answers, 3)
				assert.Equal(t, models.DefaultAnswerValue, answers[0].Value)
				assert.Equal(t, 9, answers[1].Value)
				assert.Equal(t, models.DefaultAnswerValue, answers[2].Value)
				return nil
			}),
		f.adapter.EXPECT().SubmitResponses(gomock.Any(), models.SubmitResponsesRequest{
			UserID: "user-1",
			Answers: []models.AnswerPayload{
				{QuestionID: 1, Value: models.DefaultAnswerValue},
				{QuestionID: 2, Value: 9},
				{QuestionID: 3, Value: models.DefaultAnswerValue},
			},
		}).Return(nil),
	)

	require.NoError(t, f.svc.Submit(context.Background(), "user-1", questions))
}

func TestQuestionnaire_Submit_SaveFailureSkipsPost(t *testing.T) {
	f := newQuestionnaireFixture(t)
	saveErr := errors.New("database is locked")

	f.answers.EXPECT().GetAnswers(gomock.Any()).Return(models.Answers{}, nil)
	f.answers.EXPECT().SaveAnswers(gomock.Any(), gomock.Any()).Return(saveErr)
	f.adapter.EXPECT().SubmitResponses(gomock.Any(), gomock.Any()).Times(0)

	err := f.svc.Submit(context.Background(), "user-1", []models.Question{{ID: "1"}})

	assert.ErrorIs(t, err, saveErr)
}

func TestQuestionnaire_Submit_Guards(t *testing.T) {
	t.Run("no questions", func(t *testing.T) {
		f := newQuestionnaireFixture(t)
		err := f.svc.Submit(context.Background(), "user-1", nil)
		assert.ErrorIs(t, err, ErrNoQuestions)
	})

	t.Run("no user id", func(t *testing.T) {
		f := newQuestionnaireFixture(t)
		err := f.svc.Submit(context.Background(), "", []models.Question{{ID: "1"}})
		assert.ErrorIs(t, err, ErrUserIDUnavailable)
	})

	t.Run("non numeric question id", func(t *testing.T) {
		f := newQuestionnaireFixture(t)
		f.answers.EXPECT().GetAnswers(gomock.Any()).Return(models.Answers{}, nil)

		err := f.svc.Submit(context.Background(), "user-1", []models.Question{{ID: "sleep"}})
		assert.ErrorIs(t, err, ErrInvalidQuestionID)
	})

	t.Run("cached value out of range", func(t *testing.T) {
		f := newQuestionnaireFixture(t)
		f.answers.EXPECT().GetAnswers(gomock.Any()).Return(models.Answers{"1": 42}, nil)

		err := f.svc.Submit(context.Background(), "user-1", []models.Question{{ID: "1"}})
		assert.ErrorIs(t, err, ErrInvalidAnswerValue)
	})
}

func TestQuestionnaire_Submit_BackendErrorIsMapped(t *testing.T) {
	f := newQuestionnaireFixture(t)
	f.answers.EXPECT().GetAnswers(gomock.Any()).Return(models.Answers{}, nil)
	f.answers.EXPECT().SaveAnswers(gomock.Any(), gomock.Any()).Return(nil)
	f.adapter.EXPECT().SubmitResponses(gomock.Any(), gomock.Any()).Return(adapter.ErrUnauthorized)

	err := f.svc.Submit(context.Background(), "user-1", []models.Question{{ID: "1"}})

	assert.ErrorIs(t, err, ErrSessionRejected)
}
