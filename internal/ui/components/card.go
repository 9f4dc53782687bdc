package components

import (
	"charm.land/lipgloss/v2"

	"github.com/youthtopro/swotter/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for boxed sections.
// All cards are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1).
		Render(content)
}

// AccentCard is Card with a highlighted border, used for the panel that
// currently has focus.
func AccentCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(cw - 2).
		Padding(0, 1).
		Render(content)
}
