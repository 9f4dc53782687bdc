package swot

// Step identifies a position in the fixed linear wizard sequence.
type Step int

const (
	StepIntro Step = iota
	StepStrengths
	StepWeaknesses
	StepOpportunities
	StepThreats
	StepSummary
)

// steps is the full ordered sequence. Transitions only ever move to the
// immediate neighbor of the current step.
var steps = []Step{
	StepIntro,
	StepStrengths,
	StepWeaknesses,
	StepOpportunities,
	StepThreats,
	StepSummary,
}

// String returns the step name used in messages and tests.
func (s Step) String() string {
	switch s {
	case StepIntro:
		return "intro"
	case StepStrengths:
		return "strengths"
	case StepWeaknesses:
		return "weaknesses"
	case StepOpportunities:
		return "opportunities"
	case StepThreats:
		return "threats"
	case StepSummary:
		return "summary"
	}
	return "unknown"
}

// Category returns the SWOT category for a category step, or ("", false)
// for intro and summary.
func (s Step) Category() (Category, bool) {
	switch s {
	case StepStrengths:
		return CategoryStrengths, true
	case StepWeaknesses:
		return CategoryWeaknesses, true
	case StepOpportunities:
		return CategoryOpportunities, true
	case StepThreats:
		return CategoryThreats, true
	}
	return "", false
}

// StepFor returns the wizard step that presents the given category.
func StepFor(c Category) Step {
	switch c {
	case CategoryStrengths:
		return StepStrengths
	case CategoryWeaknesses:
		return StepWeaknesses
	case CategoryOpportunities:
		return StepOpportunities
	case CategoryThreats:
		return StepThreats
	}
	return StepIntro
}

// next returns the following step and true, or s and false at the end.
func (s Step) next() (Step, bool) {
	for i, st := range steps {
		if st == s && i+1 < len(steps) {
			return steps[i+1], true
		}
	}
	return s, false
}

// prev returns the preceding step and true, or s and false at the start.
func (s Step) prev() (Step, bool) {
	for i, st := range steps {
		if st == s && i > 0 {
			return steps[i-1], true
		}
	}
	return s, false
}
