package tui

import (
	"strings"

	"github.com/MKhiriev/flourish-client/models"
)

type settingsModel struct {
	userID      string
	loading     bool
	resetting   bool
	streamState models.StreamState
}

func (m settingsModel) View() (body, hotKeys string) {
	var b strings.Builder

	b.WriteString("User id: ")
	switch {
	case m.loading:
		b.WriteString("loading...")
	default:
		b.WriteString(valueOrDash(m.userID))
	}
	b.WriteString("\n")
	b.WriteString("Insight stream: " + m.streamState.String() + "\n")

	if m.resetting {
		b.WriteString("\nResetting session...")
	}

	streamHint := "s: connect stream"
	if m.streamState == models.StreamConnecting || m.streamState == models.StreamStreaming {
		streamHint = "s: disconnect stream"
	}

	return b.String(), "c: copy user id  r: reset session  " + streamHint
}
