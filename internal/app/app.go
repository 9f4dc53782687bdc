package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/youthtopro/swotter/internal/llm"
	"github.com/youthtopro/swotter/internal/router"
	"github.com/youthtopro/swotter/internal/screen"
	"github.com/youthtopro/swotter/internal/screens/category"
	"github.com/youthtopro/swotter/internal/screens/intro"
	"github.com/youthtopro/swotter/internal/screens/summary"
	"github.com/youthtopro/swotter/internal/screens/welcome"
	"github.com/youthtopro/swotter/internal/structgen"
	"github.com/youthtopro/swotter/internal/suggest"
	"github.com/youthtopro/swotter/internal/swot"
	"github.com/youthtopro/swotter/internal/ui/layout"
)

// Deps carries the optional AI services into the TUI. All fields may be nil;
// the wizard then runs with the standard question set and no hints.
type Deps struct {
	Structgen *structgen.Service
	Suggest   *suggest.Service
	Usage     *llm.UsageRecorder

	// ExportDir is where summary exports are written; empty means the
	// current working directory.
	ExportDir string
}

// AppModel is the root Bubble Tea model. It owns the wizard state machine
// and keeps the active screen in sync with the wizard step: whenever a
// screen's update moves the wizard to a different step, the router's active
// screen is replaced with the screen for the new step.
type AppModel struct {
	router      *router.Router
	wizard      *swot.Wizard
	deps        Deps
	currentStep swot.Step
	width       int
	height      int
}

// newAppModel creates a new AppModel showing the splash; the splash replaces
// itself with the intro screen, which matches the wizard's starting step.
func newAppModel(deps Deps) AppModel {
	wizard := swot.NewWizard()
	m := AppModel{
		wizard: wizard,
		deps:   deps,
	}
	m.currentStep = wizard.Step()
	m.router = router.New(welcome.New(func() screen.Screen {
		return intro.New(wizard, deps.Structgen)
	}))
	return m
}

// screenFor builds the screen that presents the given wizard step.
func (m AppModel) screenFor(step swot.Step) screen.Screen {
	if c, ok := step.Category(); ok {
		return category.New(m.wizard, m.deps.Suggest, c)
	}
	if step == swot.StepSummary {
		return summary.New(m.wizard, m.deps.Usage, m.deps.ExportDir)
	}
	return intro.New(m.wizard, m.deps.Structgen)
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)

	// Screens mutate the wizard; follow it to the screen for the new step.
	if step := m.wizard.Step(); step != m.currentStep {
		m.currentStep = step
		replaceCmd := m.router.Replace(m.screenFor(step))
		return m, tea.Batch(cmd, replaceCmd)
	}

	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	status := fmt.Sprintf("Step %d of %d", int(m.currentStep)+1, int(swot.StepSummary)+1)
	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
