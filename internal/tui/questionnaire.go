package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/flourish-client/models"
)

const questionWindow = 8

type questionnaireModel struct {
	questions  []models.Question
	answers    models.Answers
	idx        int
	loading    bool
	loaded     bool
	submitting bool
}

func newQuestionnaireModel() questionnaireModel {
	return questionnaireModel{answers: models.Answers{}, loading: true}
}

func (m questionnaireModel) current() (models.Question, bool) {
	if len(m.questions) == 0 || m.idx < 0 || m.idx >= len(m.questions) {
		return models.Question{}, false
	}
	return m.questions[m.idx], true
}

// value returns the answer shown for questionID, falling back to the
// default that Submit would send.
func (m questionnaireModel) value(questionID string) int {
	if v, ok := m.answers[questionID]; ok {
		return v
	}
	return models.DefaultAnswerValue
}

func (m *questionnaireModel) move(delta int) {
	m.idx += delta
	if m.idx >= len(m.questions) {
		m.idx = len(m.questions) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// adjust changes the answer of the selected question by delta within the
// answer scale. It returns false when nothing changed.
func (m *questionnaireModel) adjust(delta int) (models.Question, int, bool) {
	q, ok := m.current()
	if !ok {
		return models.Question{}, 0, false
	}

	next := m.value(q.ID) + delta
	if next < models.MinAnswerValue || next > models.MaxAnswerValue {
		return q, 0, false
	}

	if m.answers == nil {
		m.answers = models.Answers{}
	}
	m.answers[q.ID] = next
	return q, next, true
}

func (m questionnaireModel) View() (body, hotKeys string) {
	if m.loading {
		return "Loading questions...", ""
	}
	if len(m.questions) == 0 {
		return "No questions available.", "2: insights  3: settings"
	}

	var b strings.Builder
	start, end := visibleRange(m.idx, len(m.questions), questionWindow)
	for i := start; i < end; i++ {
		q := m.questions[i]
		cursor := "  "
		line := fmt.Sprintf("%2d. %s", i+1, fitText(q.Text, 60))
		if i == m.idx {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(fmt.Sprintf("%s%s  [%d]\n", cursor, line, m.value(q.ID)))
	}

	if q, ok := m.current(); ok {
		b.WriteString("\n")
		if q.Category != "" {
			b.WriteString(helpStyle.Render(strings.TrimSpace(q.Category+" / "+q.Subcategory)) + "\n")
		}
		b.WriteString(q.Text + "\n\n")
		b.WriteString(renderScale(m.value(q.ID), q.MinLabel, q.MaxLabel))
	}

	if m.submitting {
		b.WriteString("\n\nSubmitting...")
	}

	return b.String(), "↑/↓: question  ←/→: value  enter: submit"
}

func renderScale(value int, minLabel, maxLabel string) string {
	var b strings.Builder
	b.WriteString(valueOrDash(minLabel) + "  ")
	for v := models.MinAnswerValue; v <= models.MaxAnswerValue; v++ {
		if v == value {
			b.WriteString(selectedStyle.Render(fmt.Sprintf("[%d]", v)))
		} else {
			b.WriteString(fmt.Sprintf(" %d ", v))
		}
	}
	b.WriteString("  " + valueOrDash(maxLabel))
	return b.String()
}

// visibleRange returns the [start, end) window of size items around idx.
func visibleRange(idx, total, size int) (int, int) {
	if total <= size {
		return 0, total
	}
	start := idx - size/2
	if start < 0 {
		start = 0
	}
	end := start + size
	if end > total {
		end = total
		start = end - size
	}
	return start, end
}
