package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/youthtopro/swotter/internal/ui/theme"
)

// SuggestionList is a selectable list of AI hint lines. Choosing an entry
// inserts it into the answer the mentee is working on.
type SuggestionList struct {
	Items    []string
	Selected int
	Chosen   int
}

// NewSuggestionList creates a list with nothing chosen yet.
func NewSuggestionList(items []string) SuggestionList {
	return SuggestionList{
		Items:  items,
		Chosen: -1,
	}
}

// Update handles keyboard navigation and selection.
func (l SuggestionList) Update(msg tea.Msg) (SuggestionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if l.Selected > 0 {
			l.Selected--
		}
	case "down", "j":
		if l.Selected < len(l.Items)-1 {
			l.Selected++
		}
	case "enter":
		l.Chosen = l.Selected
	}

	return l, nil
}

// ChosenItem returns the chosen suggestion and clears the choice.
func (l *SuggestionList) ChosenItem() (string, bool) {
	if l.Chosen < 0 || l.Chosen >= len(l.Items) {
		return "", false
	}
	item := l.Items[l.Chosen]
	l.Chosen = -1
	return item, true
}

// View renders the suggestion list.
func (l SuggestionList) View(width int) string {
	var s string
	for i, item := range l.Items {
		prefix := "  "
		if i == l.Selected {
			prefix = "▸ "
		}

		line := lipgloss.NewStyle().Width(width).Render(prefix + item)
		if i == l.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
