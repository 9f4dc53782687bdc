package intro

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/youthtopro/swotter/internal/llm"
	"github.com/youthtopro/swotter/internal/structgen"
	"github.com/youthtopro/swotter/internal/swot"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func testStructure() swot.Structure {
	s := swot.Structure{}
	for _, c := range swot.Categories() {
		s[c] = []swot.QuestionItem{
			{Question: "What about " + string(c) + "?", SampleAnswer: "An answer."},
		}
	}
	return s
}

func fillProfile(s *IntroScreen, name, goal string) {
	s.name.Model.SetValue(name)
	s.goal.Model.SetValue(goal)
}

func TestEnterMovesFocusThenSubmits(t *testing.T) {
	w := swot.NewWizard()
	s := New(w, nil)
	fillProfile(s, "Sara", "Data analyst")

	s.Update(specialKey(tea.KeyEnter))
	if s.focus != focusGoal {
		t.Fatalf("expected focus on goal after first enter, got %d", s.focus)
	}

	s.Update(specialKey(tea.KeyEnter))
	if w.Step() != swot.StepStrengths {
		t.Errorf("expected strengths step, got %v", w.Step())
	}
	if w.Generated() {
		t.Error("expected the static question set without a generator")
	}
}

func TestSubmitBlankShowsError(t *testing.T) {
	w := swot.NewWizard()
	s := New(w, nil)

	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))

	if w.Step() != swot.StepIntro {
		t.Errorf("expected to stay on intro, got %v", w.Step())
	}
	if s.errMsg == "" {
		t.Error("expected a validation message")
	}
}

func TestSubmitWithGeneratorStartsGeneration(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := structgen.NewService(mock, structgen.DefaultConfig())

	w := swot.NewWizard()
	s := New(w, gen)
	fillProfile(s, "Sara", "Data analyst")
	s.focus = focusGoal

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if !s.generating {
		t.Error("expected the screen to enter the generating state")
	}
	if cmd == nil {
		t.Error("expected a generation command")
	}
	if w.Step() != swot.StepIntro {
		t.Errorf("intro must not advance until a structure arrives, got %v", w.Step())
	}
}

func TestStructureReadyAdvances(t *testing.T) {
	w := swot.NewWizard()
	s := New(w, nil)
	if err := w.SubmitIntro(swot.Profile{MenteeName: "Sara", CareerGoal: "Data analyst"}); err != nil {
		t.Fatal(err)
	}
	s.generating = true

	s.Update(structureReadyMsg{Structure: testStructure()})

	if s.generating {
		t.Error("generating flag should be cleared")
	}
	if w.Step() != swot.StepStrengths {
		t.Errorf("expected strengths step, got %v", w.Step())
	}
	if !w.Generated() {
		t.Error("expected the generated question set")
	}
}

func TestStructureFailedStaysOnIntro(t *testing.T) {
	w := swot.NewWizard()
	s := New(w, nil)
	if err := w.SubmitIntro(swot.Profile{MenteeName: "Sara", CareerGoal: "Data analyst"}); err != nil {
		t.Fatal(err)
	}
	s.generating = true

	s.Update(structureFailedMsg{Err: errors.New("rate limited")})

	if s.generating {
		t.Error("generating flag should be cleared")
	}
	if w.Step() != swot.StepIntro {
		t.Errorf("a failed generation must not advance, got %v", w.Step())
	}
	if !strings.Contains(s.errMsg, "rate limited") {
		t.Errorf("expected the failure to be shown, got %q", s.errMsg)
	}
}

func TestPartialStructureStaysOnIntro(t *testing.T) {
	w := swot.NewWizard()
	s := New(w, nil)
	if err := w.SubmitIntro(swot.Profile{MenteeName: "Sara", CareerGoal: "Data analyst"}); err != nil {
		t.Fatal(err)
	}
	s.generating = true

	partial := testStructure()
	delete(partial, swot.CategoryThreats)
	s.Update(structureReadyMsg{Structure: partial})

	if w.Step() != swot.StepIntro {
		t.Errorf("a rejected structure must not advance, got %v", w.Step())
	}
	if w.Generated() {
		t.Error("the rejected structure must not be installed")
	}
	if s.errMsg == "" {
		t.Error("expected the rejection to be shown")
	}
}

func TestRetryAfterFailedGeneration(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := structgen.NewService(mock, structgen.DefaultConfig())

	w := swot.NewWizard()
	s := New(w, gen)
	fillProfile(s, "Sara", "Data analyst")
	s.focus = focusGoal

	s.Update(specialKey(tea.KeyEnter))
	s.Update(structureFailedMsg{Err: errors.New("service unreachable")})

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if !s.generating {
		t.Error("expected a second attempt to start")
	}
	if cmd == nil {
		t.Error("expected a generation command on retry")
	}
	if s.errMsg != "" {
		t.Errorf("expected the error to clear on retry, got %q", s.errMsg)
	}
}

func TestCtrlSSkipsGeneration(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := structgen.NewService(mock, structgen.DefaultConfig())

	w := swot.NewWizard()
	s := New(w, gen)
	fillProfile(s, "Sara", "Data analyst")

	s.Update(ctrlKey('s'))

	if s.generating {
		t.Error("ctrl+s must not start generation")
	}
	if w.Step() != swot.StepStrengths {
		t.Errorf("expected strengths step, got %v", w.Step())
	}
	if w.Generated() {
		t.Error("expected the static question set")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider must not be called, got %d calls", mock.CallCount())
	}
}
