package tui

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/flourish-client/internal/mock"
	"github.com/MKhiriev/flourish-client/internal/service"
	"github.com/MKhiriev/flourish-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type fakeCenter struct {
	current       models.InsightNotification
	dismissed     int
	dismissedSeqs []uint64
}

func (c *fakeCenter) Current() models.InsightNotification { return c.current }

func (c *fakeCenter) Dismiss(seq uint64) bool {
	c.dismissed++
	c.dismissedSeqs = append(c.dismissedSeqs, seq)
	if !c.current.Visible || c.current.Seq != seq {
		return false
	}
	c.current.Visible = false
	return true
}

type testDeps struct {
	questionnaire *mock.MockClientQuestionnaireService
	insights      *mock.MockClientInsightService
	users         *mock.MockClientUserService
	stream        *mock.MockInsightStream
	center        *fakeCenter
}

func newTestModel(t *testing.T) (appModel, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := testDeps{
		questionnaire: mock.NewMockClientQuestionnaireService(ctrl),
		insights:      mock.NewMockClientInsightService(ctrl),
		users:         mock.NewMockClientUserService(ctrl),
		stream:        mock.NewMockInsightStream(ctrl),
		center:        &fakeCenter{},
	}
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().BuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123")).AnyTimes()

	services := &service.ClientServices{
		QuestionnaireService: deps.questionnaire,
		InsightService:       deps.insights,
		UserService:          deps.users,
		InsightStream:        deps.stream,
		AppInfoService:       appInfo,
	}

	m := newAppModel(context.Background(), services, deps.center, nil, time.Second)
	m.questionnaire.loading = false
	return m, deps
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(appModel)
	require.True(t, ok)
	return updated, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
)

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
