package tui

import (
	"github.com/MKhiriev/flourish-client/models"
)

type questionsLoadedMsg struct {
	questions []models.Question
	answers   models.Answers
	err       error
}

type answerSavedMsg struct {
	err error
}

type submitDoneMsg struct {
	err error
}

type insightsLoadedMsg struct {
	set models.InsightSet
	err error
}

type holisticDoneMsg struct {
	err error
}

type userIDLoadedMsg struct {
	userID string
	err    error
}

type resetDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

// notificationMsg carries a change of the current insight notification.
type notificationMsg struct {
	notification models.InsightNotification
}

// notificationsClosedMsg is sent once the subscription channel is closed.
type notificationsClosedMsg struct{}

// bannerExpiredMsg is the auto-dismiss tick of the banner shown as gen.
type bannerExpiredMsg struct {
	gen uint64
}
