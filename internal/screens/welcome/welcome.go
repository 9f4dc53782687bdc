package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/youthtopro/swotter/internal/router"
	"github.com/youthtopro/swotter/internal/screen"
	"github.com/youthtopro/swotter/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 400 * time.Millisecond
	totalDur     = 1200 * time.Millisecond
)

const gridArt = `┌───────────┬───────────┐
│     S     │     W     │
├───────────┼───────────┤
│     O     │     T     │
└───────────┴───────────┘`

type tickMsg time.Time

// WelcomeScreen shows a short splash before transitioning to the intro screen.
type WelcomeScreen struct {
	nextFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by
// nextFactory.
func New(nextFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		nextFactory: nextFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// Only transition once the splash has fully drawn.
		if w.elapsed >= totalDur {
			return w, w.transition()
		}
		return w, nil
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.nextFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render(gridArt))

	if w.elapsed >= phase1End {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render("Swotter"))
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Render("Your guided SWOT self-assessment"))
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render("YouthToPro | Empowering Arab Youth"))
	}

	if w.elapsed >= totalDur {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to begin"))
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
