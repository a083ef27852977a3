package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/flourish-client/internal/app"
	"github.com/MKhiriev/flourish-client/internal/service"
	"github.com/MKhiriev/flourish-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type tab int

const (
	tabQuestionnaire tab = iota
	tabInsights
	tabSettings

	tabCount
)

func (t tab) title() string {
	switch t {
	case tabQuestionnaire:
		return "Questionnaire"
	case tabInsights:
		return "Insights"
	case tabSettings:
		return "Settings"
	default:
		return ""
	}
}

// notificationSource is the part of the notification center the UI needs.
type notificationSource interface {
	Current() models.InsightNotification
	Dismiss(seq uint64) bool
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	notifications notificationSource
	updates       <-chan models.InsightNotification
	buildInfo     models.AppBuildInfo

	activeTab     tab
	questionnaire questionnaireModel
	insights      insightsModel
	settings      settingsModel
	banner        bannerModel

	status        string
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	showBuildInfo bool

	reset bool
}

func newAppModel(
	ctx context.Context,
	services *service.ClientServices,
	notifications notificationSource,
	updates <-chan models.InsightNotification,
	dismissAfter time.Duration,
) appModel {
	m := appModel{
		ctx:           ctx,
		services:      services,
		notifications: notifications,
		updates:       updates,
		activeTab:     tabQuestionnaire,
		questionnaire: newQuestionnaireModel(),
		insights:      newInsightsModel(),
		banner:        newBannerModel(dismissAfter),
	}
	if services.AppInfoService != nil {
		m.buildInfo = services.AppInfoService.BuildInfo(ctx)
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.cmdLoadQuestions(),
		cmdWaitForNotification(m.updates),
		m.insights.spinner.Tick,
	}

	// a notification may have arrived before this loop started
	if current := m.notifications.Current(); current.Visible {
		cmds = append(cmds, func() tea.Msg { return notificationMsg{notification: current} })
	}

	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case notificationMsg:
		var cmd tea.Cmd
		if msg.notification.Visible {
			cmd = m.banner.show(msg.notification)
		} else {
			m.banner.hide()
		}
		return m, tea.Batch(cmd, cmdWaitForNotification(m.updates))

	case notificationsClosedMsg:
		m.updates = nil
		m.banner.hide()
		return m, nil

	case bannerExpiredMsg:
		if m.banner.expired(msg) {
			m.dismissBanner()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.insights.spinner, cmd = m.insights.spinner.Update(msg)
		return m, cmd

	case questionsLoadedMsg:
		m.questionnaire.loading = false
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
			return m, nil
		}
		m.questionnaire.loaded = true
		m.questionnaire.questions = msg.questions
		m.questionnaire.answers = msg.answers
		if m.questionnaire.answers == nil {
			m.questionnaire.answers = models.Answers{}
		}
		m.questionnaire.move(0)
		return m, nil

	case answerSavedMsg:
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
		}
		return m, nil

	case submitDoneMsg:
		m.questionnaire.submitting = false
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
			return m, nil
		}
		return m.setStatus(app.MsgResponsesSubmitted)

	case insightsLoadedMsg:
		m.insights.loading = false
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
			return m, nil
		}
		svc := m.services.InsightService
		m.insights.setInsights(msg.set, svc.Keys(msg.set), svc.HasHolistic(msg.set))
		return m, nil

	case holisticDoneMsg:
		m.insights.generating = false
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
			return m, nil
		}
		m.insights.loading = true
		model, cmd := m.setStatus(app.MsgHolisticGenerated)
		return model, tea.Batch(cmd, m.cmdLoadInsights())

	case userIDLoadedMsg:
		m.settings.loading = false
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
			return m, nil
		}
		m.settings.userID = msg.userID
		return m, nil

	case resetDoneMsg:
		m.settings.resetting = false
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
			return m, nil
		}
		m.reset = true
		return m, tea.Quit

	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		return m.setStatus(app.MsgCopied)

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}

	if m.showConfirm {
		if key.Matches(msg, keys.yes) {
			m.showConfirm = false
			m.settings.resetting = true
			return m, m.cmdReset()
		}
		if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
			m.showConfirm = false
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.buildInfo) || key.Matches(msg, keys.esc) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.banner.visible() {
		switch {
		case key.Matches(msg, keys.enter):
			m.dismissBanner()
			return m.switchTab(tabInsights)
		case key.Matches(msg, keys.dismiss):
			m.dismissBanner()
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.tab):
		return m.switchTab((m.activeTab + 1) % tabCount)
	case key.Matches(msg, keys.backtab):
		return m.switchTab((m.activeTab + tabCount - 1) % tabCount)
	case key.Matches(msg, keys.tab1):
		return m.switchTab(tabQuestionnaire)
	case key.Matches(msg, keys.tab2):
		return m.switchTab(tabInsights)
	case key.Matches(msg, keys.tab3):
		return m.switchTab(tabSettings)
	}

	switch m.activeTab {
	case tabQuestionnaire:
		return m.updateQuestionnaire(msg)
	case tabInsights:
		return m.updateInsights(msg)
	case tabSettings:
		return m.updateSettings(msg)
	}

	return m, nil
}

// switchTab focuses t and refreshes the data it shows.
func (m appModel) switchTab(t tab) (tea.Model, tea.Cmd) {
	m.activeTab = t

	switch t {
	case tabQuestionnaire:
		if !m.questionnaire.loaded && !m.questionnaire.loading {
			m.questionnaire.loading = true
			return m, m.cmdLoadQuestions()
		}
	case tabInsights:
		m.insights.detail = false
		m.insights.loading = true
		return m, m.cmdLoadInsights()
	case tabSettings:
		m.settings.streamState = m.services.InsightStream.State()
		m.settings.loading = true
		return m, m.cmdLoadUserID()
	}

	return m, nil
}

func (m appModel) updateQuestionnaire(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.questionnaire.loading || m.questionnaire.submitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		m.questionnaire.move(-1)
	case key.Matches(msg, keys.down):
		m.questionnaire.move(1)
	case key.Matches(msg, keys.left), key.Matches(msg, keys.right):
		delta := 1
		if key.Matches(msg, keys.left) {
			delta = -1
		}
		q, value, changed := m.questionnaire.adjust(delta)
		if !changed {
			return m, nil
		}
		return m, m.cmdSetAnswer(q.ID, value)
	case key.Matches(msg, keys.enter):
		if len(m.questionnaire.questions) == 0 {
			m.showErrorf(app.MsgNoQuestions)
			return m, nil
		}
		m.questionnaire.submitting = true
		return m, m.cmdSubmit()
	}

	return m, nil
}

func (m appModel) updateInsights(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.insights.detail {
		if key.Matches(msg, keys.esc) {
			m.insights.detail = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		m.insights.move(-1)
	case key.Matches(msg, keys.down):
		m.insights.move(1)
	case key.Matches(msg, keys.refresh):
		m.insights.loading = true
		return m, m.cmdLoadInsights()
	case key.Matches(msg, keys.enter):
		selected, ok := m.insights.current()
		if !ok {
			return m, nil
		}
		insight, err := m.services.InsightService.Get(m.ctx, m.insights.set, selected)
		if err != nil {
			m.showErrorf(userMessage(err))
			return m, nil
		}
		m.insights.opened = detailModel{key: selected, insight: insight}
		m.insights.detail = true
	case key.Matches(msg, keys.generate):
		if m.insights.generating {
			return m, nil
		}
		m.insights.generating = true
		return m, m.cmdGenerateHolistic()
	}

	return m, nil
}

func (m appModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.settings.resetting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.copy):
		if strings.TrimSpace(m.settings.userID) == "" {
			return m.setStatus(app.MsgNothingToCopy)
		}
		return m, cmdCopyToClipboard(m.settings.userID)
	case key.Matches(msg, keys.reset):
		m.showConfirm = true
		m.confirm = confirmModel{message: app.MsgConfirmReset}
	case key.Matches(msg, keys.stream):
		stream := m.services.InsightStream
		switch stream.State() {
		case models.StreamConnecting, models.StreamStreaming:
			stream.Disconnect()
		default:
			stream.Connect(m.ctx)
		}
		m.settings.streamState = stream.State()
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body, hotKeys string
	switch m.activeTab {
	case tabQuestionnaire:
		body, hotKeys = m.questionnaire.View()
	case tabInsights:
		body, hotKeys = m.insights.View()
	case tabSettings:
		body, hotKeys = m.settings.View()
	}

	if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	out := renderPage(m.renderTabs(), body, hotKeys)
	if banner := m.banner.View(); banner != "" {
		out = banner + "\n\n" + out
	}

	return appStyle.Render(out)
}

func (m appModel) renderTabs() string {
	titles := make([]string, 0, tabCount)
	for t := tab(0); t < tabCount; t++ {
		label := t.title()
		if t == m.activeTab {
			titles = append(titles, activeTabStyle.Render(label))
		} else {
			titles = append(titles, tabStyle.Render(label))
		}
	}
	return strings.Join(titles, "  |  ")
}

// dismissBanner hides the banner and dismisses the notification it rendered.
// A newer notification still waiting in the subscription stays visible.
func (m *appModel) dismissBanner() {
	seq := m.banner.notification.Seq
	m.banner.hide()
	m.notifications.Dismiss(seq)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, cmdClearStatus()
}

func (m appModel) cmdLoadQuestions() tea.Cmd {
	ctx := m.ctx
	svc := m.services.QuestionnaireService
	return func() tea.Msg {
		questions, answers, err := svc.Load(ctx)
		return questionsLoadedMsg{questions: questions, answers: answers, err: err}
	}
}

func (m appModel) cmdSetAnswer(questionID string, value int) tea.Cmd {
	ctx := m.ctx
	svc := m.services.QuestionnaireService
	return func() tea.Msg {
		return answerSavedMsg{err: svc.SetAnswer(ctx, questionID, value)}
	}
}

func (m appModel) cmdSubmit() tea.Cmd {
	ctx := m.ctx
	questionnaire := m.services.QuestionnaireService
	users := m.services.UserService
	questions := m.questionnaire.questions
	return func() tea.Msg {
		userID, err := users.UserID(ctx)
		if err != nil {
			return submitDoneMsg{err: err}
		}
		return submitDoneMsg{err: questionnaire.Submit(ctx, userID, questions)}
	}
}

func (m appModel) cmdLoadInsights() tea.Cmd {
	ctx := m.ctx
	svc := m.services.InsightService
	return func() tea.Msg {
		set, err := svc.List(ctx)
		return insightsLoadedMsg{set: set, err: err}
	}
}

func (m appModel) cmdGenerateHolistic() tea.Cmd {
	ctx := m.ctx
	svc := m.services.InsightService
	return func() tea.Msg {
		return holisticDoneMsg{err: svc.GenerateHolistic(ctx)}
	}
}

func (m appModel) cmdLoadUserID() tea.Cmd {
	ctx := m.ctx
	svc := m.services.UserService
	return func() tea.Msg {
		userID, err := svc.UserID(ctx)
		return userIDLoadedMsg{userID: userID, err: err}
	}
}

func (m appModel) cmdReset() tea.Cmd {
	ctx := m.ctx
	svc := m.services.UserService
	return func() tea.Msg {
		return resetDoneMsg{err: svc.Reset(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
