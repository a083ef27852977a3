package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/flourish-client/internal/adapter"
	"github.com/MKhiriev/flourish-client/internal/config"
	"github.com/MKhiriev/flourish-client/internal/logger"
	"github.com/MKhiriev/flourish-client/internal/notification"
	"github.com/MKhiriev/flourish-client/internal/service"
	"github.com/MKhiriev/flourish-client/internal/store"
	"github.com/MKhiriev/flourish-client/internal/testutil"
	"github.com/MKhiriev/flourish-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	backend  *testutil.Backend
	center   *notification.Center
	services *service.ClientServices
}

func newEnv(t *testing.T) env {
	t.Helper()
	log := logger.Nop()

	backend := testutil.NewBackend(t)

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    backend.URL(),
		RequestTimeout: 500 * time.Millisecond,
	}, log)
	require.NoError(t, err)

	storages, err := store.NewClientStorages(config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "flourish.db")},
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	center := notification.NewCenter()
	t.Cleanup(center.Close)

	appInfo, err := service.NewAppInfoService(config.ClientApp{}, models.NewAppBuildInfo("test", "", ""), log)
	require.NoError(t, err)

	return env{
		backend:  backend,
		center:   center,
		services: service.NewClientServices(storages, serverAdapter, center, appInfo, log),
	}
}

func receive(t *testing.T, updates <-chan models.InsightNotification) models.InsightNotification {
	t.Helper()
	select {
	case n := <-updates:
		return n
	case <-time.After(2 * time.Second):
		t.Fatal("no notification received")
		return models.InsightNotification{}
	}
}

func TestIntegration_StreamPublishesNotifications(t *testing.T) {
	e := newEnv(t)
	updates, unsubscribe := e.center.Subscribe()
	defer unsubscribe()

	stream := e.services.InsightStream
	stream.Connect(context.Background())
	defer stream.Disconnect()

	e.backend.WaitForStream(t, 2*time.Second)

	e.backend.Emit("sleep", `{"score":7}`)
	assert.Equal(t, models.NewInsightNotification("sleep", 1), receive(t, updates))

	// the stream outlives the REST timeout
	time.Sleep(700 * time.Millisecond)
	e.backend.Emit("stress", "")
	assert.Equal(t, models.NewInsightNotification("stress", 2), receive(t, updates))
	assert.Equal(t, models.StreamStreaming, stream.State())

	stream.Disconnect()
	assert.Equal(t, models.StreamAborted, stream.State())
}

func TestIntegration_ReconnectKeepsSingleStream(t *testing.T) {
	e := newEnv(t)
	updates, unsubscribe := e.center.Subscribe()
	defer unsubscribe()

	stream := e.services.InsightStream
	stream.Connect(context.Background())
	e.backend.WaitForStream(t, 2*time.Second)

	stream.Connect(context.Background())
	e.backend.WaitForStream(t, 2*time.Second)
	defer stream.Disconnect()

	require.Eventually(t, func() bool { return e.backend.ActiveStreams() == 1 },
		2*time.Second, 10*time.Millisecond, "replaced stream was not closed")

	e.backend.Emit("mood", "")

	assert.Equal(t, "mood", receive(t, updates).Dimension)
	select {
	case n := <-updates:
		t.Fatalf("unexpected second notification %+v", n)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestIntegration_QuestionnaireRoundTrip(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.backend.SetQuestions(models.QuestionSet{
		"2": {Text: "How stressed are you?", MinLabel: "calm", MaxLabel: "overwhelmed"},
		"1": {Text: "How rested do you feel?", MinLabel: "exhausted", MaxLabel: "rested"},
	})

	svc := e.services.QuestionnaireService
	questions, answers, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "1", questions[0].ID)
	assert.Empty(t, answers)

	require.NoError(t, svc.SetAnswer(ctx, "2", 8))

	uid, err := e.services.UserService.UserID(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Submit(ctx, uid, questions))

	subs := e.backend.Submissions()
	require.Len(t, subs, 1)
	assert.Equal(t, e.backend.UserID(), subs[0].UserID)
	assert.ElementsMatch(t, []models.AnswerPayload{
		{QuestionID: 1, Value: models.DefaultAnswerValue},
		{QuestionID: 2, Value: 8},
	}, subs[0].Answers)

	_, cached, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Answers{"1": models.DefaultAnswerValue, "2": 8}, cached)

	assert.NotEmpty(t, e.backend.RequestIDs())
}

func TestIntegration_InsightsAndHolistic(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	raw := `{"inspirational_paragraph":"p","habit":{"name":"n","description":"d","rationale":"r"},"contents":[{"name":"c"}]}`
	e.backend.SetInsights(models.InsightSet{"sleep": raw})
	e.backend.SetGenerateResult(true)

	svc := e.services.InsightService
	set, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"sleep"}, svc.Keys(set))

	insight, err := svc.Get(ctx, set, "sleep")
	require.NoError(t, err)
	assert.Equal(t, "n", insight.Habit.Name)

	assert.False(t, svc.HasHolistic(set))
	require.NoError(t, svc.GenerateHolistic(ctx))

	set, err = svc.List(ctx)
	require.NoError(t, err)
	require.True(t, svc.HasHolistic(set))
	holistic, err := svc.Get(ctx, set, models.HolisticInsightKey)
	require.NoError(t, err)
	assert.Equal(t, "Look at the whole week", holistic.Habit.Name)

	e.backend.SetGenerateResult(false)
	assert.ErrorIs(t, svc.GenerateHolistic(ctx), service.ErrHolisticGenerationFailed)
}

func TestIntegration_ResetClearsEverything(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.backend.SetQuestions(models.QuestionSet{"1": {Text: "q"}})

	require.NoError(t, e.services.QuestionnaireService.SetAnswer(ctx, "1", 3))
	oldUID, err := e.services.UserService.UserID(ctx)
	require.NoError(t, err)
	e.center.Publish("sleep")

	require.NoError(t, e.services.UserService.Reset(ctx))

	assert.Equal(t, 1, e.backend.Resets())
	assert.Equal(t, models.InsightNotification{}, e.center.Current())

	_, answers, err := e.services.QuestionnaireService.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, answers)

	newUID, err := e.services.UserService.UserID(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, oldUID, newUID)
}

func TestIntegration_ServerFailureIsMapped(t *testing.T) {
	e := newEnv(t)
	e.backend.FailNext("/v1/insights/llm", 1)

	_, err := e.services.InsightService.List(context.Background())

	assert.ErrorIs(t, err, service.ErrServerFailure)
}
