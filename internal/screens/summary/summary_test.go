package summary

import (
	"os"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/youthtopro/swotter/internal/swot"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// completedWizard walks a wizard through every section to the summary step.
func completedWizard(t *testing.T) *swot.Wizard {
	t.Helper()
	w := swot.NewWizard()
	if err := w.SubmitIntro(swot.Profile{MenteeName: "Sara Haddad", CareerGoal: "Data analyst"}); err != nil {
		t.Fatal(err)
	}
	w.UseStaticQuestions()

	for _, c := range swot.Categories() {
		for i := 0; i < len(w.Questions(c))-1; i++ {
			if err := w.Answer(c, i, "An honest answer."); err != nil {
				t.Fatal(err)
			}
		}
		if err := w.Advance(); err != nil {
			t.Fatal(err)
		}
	}

	if w.Step() != swot.StepSummary {
		t.Fatalf("expected summary step, got %v", w.Step())
	}
	return w
}

func TestExportPDFWritesFile(t *testing.T) {
	dir := t.TempDir()
	w := completedWizard(t)
	s := New(w, nil, dir)

	msg := s.export("pdf")()
	done, ok := msg.(exportDoneMsg)
	if !ok {
		t.Fatalf("expected exportDoneMsg, got %T", msg)
	}
	if done.Err != nil {
		t.Fatalf("export failed: %v", done.Err)
	}
	if !strings.HasSuffix(done.Path, ".pdf") {
		t.Errorf("expected a .pdf path, got %q", done.Path)
	}

	data, err := os.ReadFile(done.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Error("expected a PDF file header")
	}
}

func TestExportDOCXWritesFile(t *testing.T) {
	dir := t.TempDir()
	w := completedWizard(t)
	s := New(w, nil, dir)

	msg := s.export("docx")()
	done, ok := msg.(exportDoneMsg)
	if !ok {
		t.Fatalf("expected exportDoneMsg, got %T", msg)
	}
	if done.Err != nil {
		t.Fatalf("export failed: %v", done.Err)
	}

	data, err := os.ReadFile(done.Path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 2 || data[0] != 'P' || data[1] != 'K' {
		t.Error("expected a zip container header")
	}
}

func TestExportStatusShown(t *testing.T) {
	w := completedWizard(t)
	s := New(w, nil, t.TempDir())

	s.Update(exportDoneMsg{Path: "/tmp/report.pdf"})
	if s.status != "Saved /tmp/report.pdf" || s.statusErr {
		t.Errorf("unexpected status %q (err=%v)", s.status, s.statusErr)
	}
}

func TestEscRetreatsToThreats(t *testing.T) {
	w := completedWizard(t)
	s := New(w, nil, "")

	s.Update(specialKey(tea.KeyEscape))

	if w.Step() != swot.StepThreats {
		t.Errorf("expected threats step, got %v", w.Step())
	}
}

func TestStartOverResetsWizard(t *testing.T) {
	w := completedWizard(t)
	s := New(w, nil, "")

	// Move the menu to "Start over" and select it.
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEnter))

	if w.Step() != swot.StepIntro {
		t.Errorf("expected intro step, got %v", w.Step())
	}
	if w.Profile().MenteeName != "" {
		t.Error("expected the profile to be cleared")
	}
}
