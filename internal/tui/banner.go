package tui

import (
	"time"

	"github.com/MKhiriev/flourish-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDismissAfter is used when no auto-dismiss timeout is configured.
const DefaultDismissAfter = 5 * time.Second

// bannerModel shows the current insight notification on top of every tab.
//
// Every show or hide bumps gen. An expiry tick only hides the banner if it
// still carries the current gen, so at most one timer is ever effective.
type bannerModel struct {
	notification models.InsightNotification
	gen          uint64
	dismissAfter time.Duration
}

func newBannerModel(dismissAfter time.Duration) bannerModel {
	if dismissAfter <= 0 {
		dismissAfter = DefaultDismissAfter
	}
	return bannerModel{dismissAfter: dismissAfter}
}

func (b bannerModel) visible() bool {
	return b.notification.Visible
}

// show makes n current and arms the auto-dismiss timer for it.
func (b *bannerModel) show(n models.InsightNotification) tea.Cmd {
	b.notification = n
	b.gen++
	return cmdExpireBanner(b.gen, b.dismissAfter)
}

// hide clears visibility and disarms any pending timer.
func (b *bannerModel) hide() {
	b.notification.Visible = false
	b.gen++
}

// expired reports whether msg is the tick of the banner currently shown.
func (b bannerModel) expired(msg bannerExpiredMsg) bool {
	return b.visible() && msg.gen == b.gen
}

func (b bannerModel) View() string {
	if !b.visible() {
		return ""
	}
	return bannerStyle.Render(b.notification.Message) + "\n" +
		helpStyle.Render("enter: open insights  x: dismiss")
}

func cmdExpireBanner(gen uint64, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return bannerExpiredMsg{gen: gen}
	})
}

// cmdWaitForNotification returns a command that waits for the next change on
// updates.
func cmdWaitForNotification(updates <-chan models.InsightNotification) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-updates
		if !ok {
			return notificationsClosedMsg{}
		}
		return notificationMsg{notification: n}
	}
}
