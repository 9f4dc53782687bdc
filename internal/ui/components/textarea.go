package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextArea wraps bubbles/textarea for multi-line answers.
type TextArea struct {
	Model textarea.Model
}

// NewTextArea creates a styled answer area with the given placeholder. The
// placeholder carries the sample answer, so an unanswered question still
// shows what a response could look like.
func NewTextArea(placeholder string, height int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetHeight(height)
	ta.CharLimit = 0
	return TextArea{Model: ta}
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text area.
func (t TextArea) View() string {
	return t.Model.View()
}

// Value returns the current contents.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// SetValue replaces the contents.
func (t *TextArea) SetValue(s string) {
	t.Model.SetValue(s)
}

// Focus puts the area into edit mode.
func (t *TextArea) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur leaves edit mode.
func (t *TextArea) Blur() {
	t.Model.Blur()
}

// Focused reports whether the area is in edit mode.
func (t TextArea) Focused() bool {
	return t.Model.Focused()
}

// SetWidth resizes the area.
func (t *TextArea) SetWidth(w int) {
	t.Model.SetWidth(w)
}
