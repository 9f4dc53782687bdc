package category

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/youthtopro/swotter/internal/swot"
	"github.com/youthtopro/swotter/internal/ui/components"
	"github.com/youthtopro/swotter/internal/ui/theme"
)

// sectionColor returns the brand color for a SWOT section.
func sectionColor(c swot.Category) color.Color {
	switch c {
	case swot.CategoryStrengths:
		return theme.Primary
	case swot.CategoryWeaknesses:
		return theme.Secondary
	case swot.CategoryOpportunities:
		return theme.NavyLight
	case swot.CategoryThreats:
		return theme.Gray
	}
	return theme.Text
}

func (s *CategoryScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	questions := s.wizard.Questions(s.cat)
	if len(questions) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(sectionColor(s.cat)).
		Bold(true).
		Render(s.cat.Title()))
	b.WriteString("\n")

	subtitle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.wizard.Generated() {
		b.WriteString(subtitle.Render("Personalized for: " + s.wizard.Profile().CareerGoal))
	} else {
		b.WriteString(subtitle.Render("Standard question set"))
	}
	b.WriteString("\n\n")

	answered := s.answeredCount()
	bar := components.NewProgressBar(
		fmt.Sprintf("Answered %d/%d", answered, len(questions)),
		float64(answered)/float64(len(questions)),
		false,
		cw,
	)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	q := questions[s.focus]
	counter := fmt.Sprintf("Question %d of %d", s.focus+1, len(questions))
	if s.focus == len(questions)-1 {
		counter += "  (optional)"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Question))
	b.WriteString("\n\n")

	area := s.areas[s.focus]
	area.SetWidth(cw - 4)
	b.WriteString(components.AccentCard(area.View(), cw))
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Invalid.Render(s.errMsg))
		b.WriteString("\n")
	}
	if s.sugErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.sugErr))
		b.WriteString("\n")
	}

	switch {
	case s.sugLoading:
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Asking your mentor for hints..."))
	case s.sugOpen:
		b.WriteString("\n")
		panel := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("Hints") + "\n" + s.sugList.View(cw-4)
		b.WriteString(components.Card(panel, cw))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// answeredCount reports how many questions in this section hold a non-blank
// answer the mentee has edited.
func (s *CategoryScreen) answeredCount() int {
	answers := s.wizard.Answers(s.cat)
	n := 0
	for i, a := range answers {
		if strings.TrimSpace(a) != "" && s.wizard.Edited(s.cat, i) {
			n++
		}
	}
	return n
}
