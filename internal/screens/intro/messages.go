package intro

import (
	"time"

	"github.com/youthtopro/swotter/internal/swot"
)

// structureReadyMsg carries a generated question structure back to the screen.
type structureReadyMsg struct {
	Structure swot.Structure
}

// structureFailedMsg signals that question generation failed; the screen
// stays on the profile form with the error shown.
type structureFailedMsg struct {
	Err error
}

// genTickMsg animates the generating indicator.
type genTickMsg time.Time
