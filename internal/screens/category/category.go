package category

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/youthtopro/swotter/internal/screen"
	"github.com/youthtopro/swotter/internal/suggest"
	"github.com/youthtopro/swotter/internal/swot"
	"github.com/youthtopro/swotter/internal/ui/components"
	"github.com/youthtopro/swotter/internal/ui/layout"
)

const (
	suggestTimeout = 60 * time.Second
	areaHeight     = 3
)

// CategoryScreen presents one SWOT section: its guiding questions with
// editable answers, section navigation, and optional AI hints.
type CategoryScreen struct {
	wizard *swot.Wizard
	sugg   *suggest.Service
	cat    swot.Category

	areas []components.TextArea
	focus int

	errMsg string

	sugList    components.SuggestionList
	sugOpen    bool
	sugLoading bool
	sugErr     string
}

var _ screen.Screen = (*CategoryScreen)(nil)
var _ screen.KeyHintProvider = (*CategoryScreen)(nil)

// New creates a CategoryScreen for the given section. sugg may be nil when
// no AI provider is configured; the hints key is then unavailable.
func New(wizard *swot.Wizard, sugg *suggest.Service, cat swot.Category) *CategoryScreen {
	s := &CategoryScreen{
		wizard: wizard,
		sugg:   sugg,
		cat:    cat,
	}
	s.rebuildAreas()
	return s
}

// rebuildAreas recreates the answer areas from the wizard's current
// questions and answers for this section.
func (s *CategoryScreen) rebuildAreas() {
	questions := s.wizard.Questions(s.cat)
	answers := s.wizard.Answers(s.cat)

	s.areas = make([]components.TextArea, len(questions))
	for i, q := range questions {
		placeholder := q.SampleAnswer
		if placeholder == "" {
			placeholder = "Type your answer..."
		}
		ta := components.NewTextArea(placeholder, areaHeight)
		ta.SetValue(answers[i])
		s.areas[i] = ta
	}
	if s.focus >= len(s.areas) {
		s.focus = 0
	}
}

func (s *CategoryScreen) Title() string {
	return s.cat.Title()
}

func (s *CategoryScreen) Init() tea.Cmd {
	if len(s.areas) == 0 {
		return nil
	}
	return s.areas[s.focus].Focus()
}

func (s *CategoryScreen) KeyHints() []layout.KeyHint {
	if s.sugOpen {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Insert"},
			{Key: "Esc", Description: "Close"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next question"},
		{Key: "Ctrl+N", Description: "Next section"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+R", Description: "Reset"},
	}
	if s.sugg != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+G", Description: "Hints"})
	}
	return hints
}

func (s *CategoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case suggestReadyMsg:
		s.sugLoading = false
		s.sugList = components.NewSuggestionList(msg.Items)
		s.sugOpen = true
		return s, nil

	case suggestFailedMsg:
		s.sugLoading = false
		s.sugErr = "Couldn't fetch hints: " + msg.Err.Error()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, s.forwardToFocused(msg)
}

func (s *CategoryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.sugOpen {
		return s.handleSuggestionKey(msg)
	}

	switch msg.String() {
	case "tab":
		return s, s.moveFocus(1)
	case "shift+tab":
		return s, s.moveFocus(-1)
	case "ctrl+n":
		if err := s.wizard.Advance(); err != nil {
			s.errMsg = err.Error()
		} else {
			s.errMsg = ""
		}
		return s, nil
	case "esc":
		s.wizard.Retreat()
		return s, nil
	case "ctrl+r":
		s.wizard.ResetCategory(s.cat)
		s.focus = 0
		s.errMsg = ""
		s.rebuildAreas()
		return s, s.areas[s.focus].Focus()
	case "ctrl+g":
		if s.sugg == nil || s.sugLoading {
			return s, nil
		}
		s.sugLoading = true
		s.sugErr = ""
		return s, s.fetchSuggestions()
	}

	return s, s.forwardToFocused(msg)
}

func (s *CategoryScreen) handleSuggestionKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "esc" {
		s.sugOpen = false
		return s, nil
	}

	var cmd tea.Cmd
	s.sugList, cmd = s.sugList.Update(msg)

	if item, ok := s.sugList.ChosenItem(); ok {
		s.insertSuggestion(item)
		s.sugOpen = false
	}
	return s, cmd
}

// insertSuggestion appends the chosen hint to the focused answer.
func (s *CategoryScreen) insertSuggestion(item string) {
	if s.focus >= len(s.areas) {
		return
	}
	cur := s.areas[s.focus].Value()
	if strings.TrimSpace(cur) == "" {
		cur = item
	} else {
		cur = strings.TrimRight(cur, "\n") + "\n" + item
	}
	s.areas[s.focus].SetValue(cur)
	if err := s.wizard.Answer(s.cat, s.focus, cur); err != nil {
		s.errMsg = err.Error()
	}
}

func (s *CategoryScreen) moveFocus(delta int) tea.Cmd {
	if len(s.areas) == 0 {
		return nil
	}
	s.areas[s.focus].Blur()
	s.focus = (s.focus + delta + len(s.areas)) % len(s.areas)
	return s.areas[s.focus].Focus()
}

// forwardToFocused routes a message to the focused answer area and records
// the resulting text in the wizard when it changed.
func (s *CategoryScreen) forwardToFocused(msg tea.Msg) tea.Cmd {
	if s.focus >= len(s.areas) || !s.areas[s.focus].Focused() {
		return nil
	}

	var cmd tea.Cmd
	s.areas[s.focus], cmd = s.areas[s.focus].Update(msg)

	value := s.areas[s.focus].Value()
	if value != s.wizard.Answers(s.cat)[s.focus] {
		if err := s.wizard.Answer(s.cat, s.focus, value); err != nil {
			s.errMsg = err.Error()
		} else {
			s.errMsg = ""
		}
	}
	return cmd
}

func (s *CategoryScreen) fetchSuggestions() tea.Cmd {
	sugg := s.sugg
	cat := s.cat
	goal := s.wizard.Profile().CareerGoal

	items := s.wizard.Questions(cat)
	questions := make([]string, len(items))
	for i, q := range items {
		questions[i] = q.Question
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), suggestTimeout)
		defer cancel()

		hints, err := sugg.Suggest(ctx, cat, goal, questions)
		if err != nil {
			return suggestFailedMsg{Err: err}
		}
		return suggestReadyMsg{Items: hints}
	}
}
