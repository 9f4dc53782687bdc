package summary

import (
	"os"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/youthtopro/swotter/internal/llm"
	"github.com/youthtopro/swotter/internal/report"
	"github.com/youthtopro/swotter/internal/screen"
	"github.com/youthtopro/swotter/internal/swot"
	"github.com/youthtopro/swotter/internal/ui/components"
	"github.com/youthtopro/swotter/internal/ui/layout"
)

// exportDoneMsg reports the outcome of a document export.
type exportDoneMsg struct {
	Path string
	Err  error
}

// SummaryScreen reviews the completed assessment and offers export options.
type SummaryScreen struct {
	wizard    *swot.Wizard
	usage     *llm.UsageRecorder
	exportDir string
	menu      components.Menu

	status    string
	statusErr bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. usage may be nil when no AI provider was
// configured for the session; an empty exportDir means the current working
// directory.
func New(wizard *swot.Wizard, usage *llm.UsageRecorder, exportDir string) *SummaryScreen {
	s := &SummaryScreen{
		wizard:    wizard,
		usage:     usage,
		exportDir: exportDir,
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Export PDF", Action: func() tea.Cmd { return s.export("pdf") }},
		{Label: "Export DOCX", Action: func() tea.Cmd { return s.export("docx") }},
		{Label: "Start over", Action: func() tea.Cmd {
			s.wizard.GoHome()
			return nil
		}},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return s
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		if msg.Err != nil {
			s.status = "Export failed: " + msg.Err.Error()
			s.statusErr = true
		} else {
			s.status = "Saved " + msg.Path
			s.statusErr = false
		}
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			s.wizard.Retreat()
			return s, nil
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	return s, nil
}

// export writes the assessment document to the export directory.
func (s *SummaryScreen) export(ext string) tea.Cmd {
	p := s.wizard.Profile()
	in := report.Input{
		MenteeName: p.MenteeName,
		CareerGoal: p.CareerGoal,
		Answers:    s.wizard.AnswerMap(),
	}
	dir := s.exportDir

	return func() tea.Msg {
		var err error
		if dir == "" {
			dir, err = os.Getwd()
			if err != nil {
				dir = "."
			}
		}
		path := filepath.Join(dir, report.Filename(in.MenteeName, ext, time.Now()))

		switch ext {
		case "pdf":
			err = report.ExportPDF(in, path)
		case "docx":
			err = report.ExportDOCX(in, path)
		}
		if err != nil {
			return exportDoneMsg{Err: err}
		}
		return exportDoneMsg{Path: path}
	}
}
