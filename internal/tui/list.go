package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/flourish-client/internal/app"
	"github.com/MKhiriev/flourish-client/models"
	"github.com/charmbracelet/bubbles/spinner"
)

// insightsModel lists the dimensions of the last fetched insight set.
type insightsModel struct {
	set         models.InsightSet
	entries     []string
	hasHolistic bool
	idx         int
	loading     bool
	generating  bool
	spinner     spinner.Model

	detail bool
	opened detailModel
}

func newInsightsModel() insightsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return insightsModel{spinner: s}
}

// setInsights replaces the set. The holistic insight, if any, is listed first.
func (m *insightsModel) setInsights(set models.InsightSet, keys []string, hasHolistic bool) {
	m.set = set
	m.hasHolistic = hasHolistic
	entries := make([]string, 0, len(keys)+1)
	if hasHolistic {
		entries = append(entries, models.HolisticInsightKey)
	}
	m.entries = append(entries, keys...)
	if m.idx >= len(m.entries) {
		m.idx = len(m.entries) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m insightsModel) current() (string, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return "", false
	}
	return m.entries[m.idx], true
}

func (m *insightsModel) move(delta int) {
	m.idx += delta
	if m.idx >= len(m.entries) {
		m.idx = len(m.entries) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m insightsModel) View() (body, hotKeys string) {
	if m.detail {
		return m.opened.View()
	}
	if m.loading && len(m.entries) == 0 {
		return m.spinner.View() + " Loading insights...", ""
	}
	if len(m.entries) == 0 {
		body := app.MsgNoInsights
		if m.generating {
			body += "\n\n" + m.spinner.View() + " generating holistic insight"
		}
		return body, "r: refresh  g: generate holistic"
	}

	var b strings.Builder
	if m.loading {
		b.WriteString(m.spinner.View() + " refreshing\n\n")
	}
	for i, key := range m.entries {
		cursor := "  "
		label := dimensionLabel(key)
		if i == m.idx {
			cursor = "> "
			label = selectedStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, label))
	}
	if m.generating {
		b.WriteString("\n" + m.spinner.View() + " generating holistic insight")
	}

	return b.String(), "↑/↓: select  enter: open  r: refresh  g: generate holistic"
}

func dimensionLabel(key string) string {
	if key == models.HolisticInsightKey {
		return "Holistic"
	}
	if key == "" {
		return key
	}
	r := []rune(key)
	return strings.ToUpper(string(r[0])) + strings.ReplaceAll(string(r[1:]), "_", " ")
}
