package intro

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/youthtopro/swotter/internal/ui/components"
	"github.com/youthtopro/swotter/internal/ui/theme"
)

var dotFrames = []string{"", ".", "..", "..."}

func (s *IntroScreen) View(width, height int) string {
	if s.generating {
		return s.renderGenerating(width, height)
	}

	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("SWOT Self-Assessment"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Map your Strengths, Weaknesses, Opportunities and Threats\non the way to your career goal."))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	b.WriteString(labelStyle.Render("Your name"))
	b.WriteString("\n")
	b.WriteString(s.name.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Your career goal"))
	b.WriteString("\n")
	b.WriteString(s.goal.View())
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Invalid.Render(s.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if s.gen != nil && s.errMsg != "" {
		b.WriteString(theme.Hint.Render("Enter tries again; Ctrl+S continues with the standard questions."))
	} else if s.gen != nil {
		b.WriteString(theme.Hint.Render("Enter generates questions tailored to your goal."))
	} else {
		b.WriteString(theme.Hint.Render("No AI provider configured; the standard question set will be used."))
	}

	card := components.Card(b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *IntroScreen) renderGenerating(width, height int) string {
	dots := dotFrames[s.tickCount%len(dotFrames)]

	content := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Preparing your assessment"+dots) +
		"\n\n" +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Generating questions tailored to your career goal.\nThis usually takes a few seconds.")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
