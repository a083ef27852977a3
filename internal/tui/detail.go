package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/flourish-client/models"
)

type detailModel struct {
	key     string
	insight models.Insight
}

func (m detailModel) View() (body, hotKeys string) {
	var b strings.Builder

	b.WriteString(titleStyle.Render(dimensionLabel(m.key)) + "\n\n")
	b.WriteString(m.insight.InspirationalParagraph + "\n\n")

	b.WriteString(titleStyle.Render("Habit: "+m.insight.Habit.Name) + "\n")
	b.WriteString(m.insight.Habit.Description + "\n")
	b.WriteString(helpStyle.Render("Why: "+m.insight.Habit.Rationale) + "\n")

	if len(m.insight.Contents) > 0 {
		b.WriteString("\n" + titleStyle.Render("Recommended") + "\n")
		for _, c := range m.insight.Contents {
			b.WriteString(fmt.Sprintf("- %s (%s)\n", c.Name, valueOrDash(c.Type)))
			if c.Rationale != "" {
				b.WriteString("  " + c.Rationale + "\n")
			}
			if c.Link != "" {
				b.WriteString("  " + helpStyle.Render(c.Link) + "\n")
			}
		}
	}

	if m.insight.AdditionalParagraph != "" {
		b.WriteString("\n" + m.insight.AdditionalParagraph)
	}

	return strings.TrimRight(b.String(), "\n"), "esc: back"
}
