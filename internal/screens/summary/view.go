package summary

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/youthtopro/swotter/internal/swot"
	"github.com/youthtopro/swotter/internal/ui/components"
	"github.com/youthtopro/swotter/internal/ui/theme"
)

func (s *SummaryScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	p := s.wizard.Profile()

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Assessment complete!"))
	b.WriteString("\n\n")

	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	b.WriteString(label.Render("Name         ") + value.Render(p.MenteeName))
	b.WriteString("\n")
	b.WriteString(label.Render("Career goal  ") + value.Render(p.CareerGoal))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("─", cw-4))
	b.WriteString(divider)
	b.WriteString("\n")

	for _, c := range swot.Categories() {
		answered, total := s.sectionProgress(c)
		line := fmt.Sprintf("%-15s %d/%d answered", c.Title(), answered, total)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  " + line))
		b.WriteString("\n")
	}
	b.WriteString(divider)
	b.WriteString("\n")

	if s.usage != nil {
		if sum := s.usage.Summary(); sum.Requests > 0 {
			line := fmt.Sprintf("AI usage: %d requests, %d in / %d out tokens",
				sum.Requests, sum.InputTokens, sum.OutputTokens)
			if sum.CostKnown {
				line += fmt.Sprintf(" (~$%.4f)", sum.CostUSD)
			}
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(s.menu.View())

	if s.status != "" {
		b.WriteString("\n")
		if s.statusErr {
			b.WriteString(theme.Invalid.Render(s.status))
		} else {
			b.WriteString(theme.Valid.Render(s.status))
		}
		b.WriteString("\n")
	}

	card := components.Card(b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// sectionProgress counts non-blank answers in a section.
func (s *SummaryScreen) sectionProgress(c swot.Category) (answered, total int) {
	answers := s.wizard.Answers(c)
	for _, a := range answers {
		if strings.TrimSpace(a) != "" {
			answered++
		}
	}
	return answered, len(answers)
}
