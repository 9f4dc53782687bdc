package swot

import (
	"strings"
	"testing"
)

func TestQuestionsFor_StaticDefaults(t *testing.T) {
	for _, c := range Categories() {
		items := QuestionsFor(c, nil)
		if len(items) != 5 {
			t.Errorf("%s: expected 5 static questions, got %d", c, len(items))
		}
		for i, item := range items {
			if item.Question == "" {
				t.Errorf("%s[%d]: empty question", c, i)
			}
			if item.SampleAnswer != "" {
				t.Errorf("%s[%d]: static question has sample answer %q", c, i, item.SampleAnswer)
			}
		}
		last := items[len(items)-1].Question
		if !strings.Contains(last, "Any other areas") {
			t.Errorf("%s: static list should end with an open-ended prompt, got %q", c, last)
		}
	}
}

func TestQuestionsFor_GeneratedAppendsTrailing(t *testing.T) {
	structure := Structure{
		CategoryStrengths: {
			{Question: "Q1", SampleAnswer: "A1"},
			{Question: "Q2", SampleAnswer: "A2"},
		},
	}

	items := QuestionsFor(CategoryStrengths, structure)
	if len(items) != 3 {
		t.Fatalf("expected 2 generated + 1 trailing, got %d", len(items))
	}
	trailing := items[2]
	if trailing.Question != "What other Strengths do you wish to add?" {
		t.Errorf("unexpected trailing question %q", trailing.Question)
	}
	if trailing.SampleAnswer != "" {
		t.Errorf("trailing question must have no sample answer, got %q", trailing.SampleAnswer)
	}

	// Categories absent from the structure fall back to the static list.
	if got := QuestionsFor(CategoryThreats, structure); len(got) != 5 {
		t.Errorf("expected static fallback for threats, got %d questions", len(got))
	}
}

func TestCategoryOrder(t *testing.T) {
	want := []Category{CategoryStrengths, CategoryWeaknesses, CategoryOpportunities, CategoryThreats}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestStepSequence(t *testing.T) {
	order := []Step{StepIntro, StepStrengths, StepWeaknesses, StepOpportunities, StepThreats, StepSummary}
	for i := 0; i < len(order)-1; i++ {
		next, ok := order[i].next()
		if !ok || next != order[i+1] {
			t.Errorf("next(%s): expected %s, got %s (ok=%v)", order[i], order[i+1], next, ok)
		}
	}
	if _, ok := StepSummary.next(); ok {
		t.Error("summary should have no next step")
	}
	if _, ok := StepIntro.prev(); ok {
		t.Error("intro should have no previous step")
	}
}
