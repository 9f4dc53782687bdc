package intro

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/youthtopro/swotter/internal/screen"
	"github.com/youthtopro/swotter/internal/structgen"
	"github.com/youthtopro/swotter/internal/swot"
	"github.com/youthtopro/swotter/internal/ui/components"
	"github.com/youthtopro/swotter/internal/ui/layout"
)

const (
	genTimeout   = 90 * time.Second
	tickInterval = 250 * time.Millisecond
)

const (
	focusName = iota
	focusGoal
)

// IntroScreen collects the mentee profile and kicks off question generation.
type IntroScreen struct {
	wizard     *swot.Wizard
	gen        *structgen.Service
	name       components.TextInput
	goal       components.TextInput
	focus      int
	generating bool
	tickCount  int
	errMsg     string
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates an IntroScreen. gen may be nil when no AI provider is
// configured; the wizard then proceeds with the standard question set.
func New(wizard *swot.Wizard, gen *structgen.Service) *IntroScreen {
	s := &IntroScreen{
		wizard: wizard,
		gen:    gen,
		name:   components.NewTextInput("e.g. Sara Haddad", 60),
		goal:   components.NewTextInput("e.g. Become a data analyst in the energy sector", 120),
	}
	p := wizard.Profile()
	s.name.Model.SetValue(p.MenteeName)
	s.goal.Model.SetValue(p.CareerGoal)
	return s
}

func (s *IntroScreen) Title() string {
	return "Welcome"
}

func (s *IntroScreen) Init() tea.Cmd {
	return s.name.Model.Focus()
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	if s.generating {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Continue"},
	}
	if s.gen != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Standard questions"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case structureReadyMsg:
		s.generating = false
		if err := s.wizard.AcceptStructure(msg.Structure); err != nil {
			s.errMsg = "Question generation failed: " + err.Error()
		}
		return s, nil

	case structureFailedMsg:
		s.generating = false
		s.errMsg = "Question generation failed: " + msg.Err.Error()
		return s, nil

	case genTickMsg:
		if !s.generating {
			return s, nil
		}
		s.tickCount++
		return s, genTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, s.forwardToFocused(msg)
}

func (s *IntroScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.generating {
		return s, nil
	}

	switch msg.String() {
	case "tab", "down":
		return s, s.setFocus(focusGoal)
	case "shift+tab", "up":
		return s, s.setFocus(focusName)
	case "enter":
		if s.focus == focusName {
			return s, s.setFocus(focusGoal)
		}
		return s, s.submit(true)
	case "ctrl+s":
		return s, s.submit(false)
	}

	return s, s.forwardToFocused(msg)
}

func (s *IntroScreen) setFocus(focus int) tea.Cmd {
	if s.focus == focus {
		return nil
	}
	s.focus = focus
	if focus == focusName {
		s.goal.Model.Blur()
		return s.name.Model.Focus()
	}
	s.name.Model.Blur()
	return s.goal.Model.Focus()
}

// submit validates the profile and either launches AI question generation or
// advances with the standard set.
func (s *IntroScreen) submit(withAI bool) tea.Cmd {
	p := swot.Profile{
		MenteeName: strings.TrimSpace(s.name.Value()),
		CareerGoal: strings.TrimSpace(s.goal.Value()),
	}
	if err := s.wizard.SubmitIntro(p); err != nil {
		s.errMsg = err.Error()
		s.name.Submit(p.MenteeName != "")
		s.goal.Submit(p.CareerGoal != "")
		return nil
	}
	s.errMsg = ""

	if !withAI || s.gen == nil {
		s.wizard.UseStaticQuestions()
		return nil
	}

	s.generating = true
	s.tickCount = 0
	return tea.Batch(s.generate(p.CareerGoal), genTick())
}

func (s *IntroScreen) generate(goal string) tea.Cmd {
	gen := s.gen
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), genTimeout)
		defer cancel()

		structure, err := gen.Generate(ctx, goal)
		if err != nil {
			return structureFailedMsg{Err: err}
		}
		return structureReadyMsg{Structure: structure}
	}
}

func (s *IntroScreen) forwardToFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if s.focus == focusName {
		s.name, cmd = s.name.Update(msg)
	} else {
		s.goal, cmd = s.goal.Update(msg)
	}
	return cmd
}

func genTick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return genTickMsg(t)
	})
}
