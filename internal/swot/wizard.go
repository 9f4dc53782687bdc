package swot

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Profile holds the intro fields, entered once and only cleared by GoHome.
type Profile struct {
	MenteeName string
	CareerGoal string
}

// ValidationError is a recoverable, user-facing rejection of a wizard
// operation. The wizard state is never mutated when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ErrIncompleteStructure rejects a generated question structure that is
// missing one or more of the four categories.
type ErrIncompleteStructure struct {
	Missing []Category
}

func (e *ErrIncompleteStructure) Error() string {
	names := make([]string, len(e.Missing))
	for i, c := range e.Missing {
		names[i] = string(c)
	}
	return fmt.Sprintf("generated questions are missing categories: %s", strings.Join(names, ", "))
}

// Wizard is the guided assessment state machine. It owns the step sequence,
// the per-category answer lists, and the per-field edited flags. All state
// changes go through its methods; operations that fail leave state untouched.
//
// The wizard is driven from a single goroutine (the Bubble Tea update loop)
// and is not safe for concurrent use.
type Wizard struct {
	sessionID string
	step      Step
	profile   Profile
	structure Structure
	questions map[Category][]QuestionItem
	answers   map[Category][]string
	edited    map[Category]map[int]bool
}

// NewWizard creates a wizard on the intro step with the static default
// question set and empty answers.
func NewWizard() *Wizard {
	w := &Wizard{sessionID: uuid.New().String()}
	w.reload(nil)
	return w
}

// reload replaces the question lists from the given structure (nil for the
// static defaults), rebuilds every answer list from the sample answers, and
// clears all edited flags. Question list identity changes here, never
// elsewhere.
func (w *Wizard) reload(structure Structure) {
	w.structure = structure
	w.questions = make(map[Category][]QuestionItem, 4)
	w.answers = make(map[Category][]string, 4)
	w.edited = make(map[Category]map[int]bool, 4)
	for _, c := range Categories() {
		items := QuestionsFor(c, structure)
		answers := make([]string, len(items))
		for i, item := range items {
			answers[i] = item.SampleAnswer
		}
		w.questions[c] = items
		w.answers[c] = answers
		w.edited[c] = make(map[int]bool)
	}
}

// SessionID returns the identifier for this assessment run.
func (w *Wizard) SessionID() string { return w.sessionID }

// Step returns the current wizard step.
func (w *Wizard) Step() Step { return w.step }

// Profile returns the entered mentee profile.
func (w *Wizard) Profile() Profile { return w.profile }

// Generated reports whether the current question set came from the AI
// structure generator rather than the static defaults.
func (w *Wizard) Generated() bool { return w.structure != nil }

// Questions returns the current ordered question list for a category.
// The returned slice must not be mutated.
func (w *Wizard) Questions(c Category) []QuestionItem { return w.questions[c] }

// Answers returns the current answer list for a category, index-aligned with
// Questions. The returned slice must not be mutated; use Answer to write.
func (w *Wizard) Answers(c Category) []string { return w.answers[c] }

// Edited reports whether the user has changed the answer at the given index
// since the category's question list was last replaced.
func (w *Wizard) Edited(c Category, index int) bool { return w.edited[c][index] }

// AnswerMap returns a deep copy of all answers, for export.
func (w *Wizard) AnswerMap() map[Category][]string {
	out := make(map[Category][]string, len(w.answers))
	for c, answers := range w.answers {
		cp := make([]string, len(answers))
		copy(cp, answers)
		out[c] = cp
	}
	return out
}

// SubmitIntro validates and stores the intro profile. It does not leave the
// intro step: the caller launches the structure generation call and completes
// the transition through AcceptStructure or UseStaticQuestions. On a
// validation failure the stored profile is unchanged.
func (w *Wizard) SubmitIntro(p Profile) error {
	if strings.TrimSpace(p.MenteeName) == "" || strings.TrimSpace(p.CareerGoal) == "" {
		return &ValidationError{Message: "Please fill out both your name and your career goal."}
	}
	w.profile = p
	return nil
}

// AcceptStructure installs a generated question structure and advances to the
// strengths step. The structure must contain a non-empty list for every
// category; otherwise an *ErrIncompleteStructure is returned and the wizard
// keeps its previous questions, answers, and edited flags.
func (w *Wizard) AcceptStructure(s Structure) error {
	var missing []Category
	for _, c := range Categories() {
		if len(s[c]) == 0 {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &ErrIncompleteStructure{Missing: missing}
	}

	w.reload(s)
	w.step = StepStrengths
	return nil
}

// UseStaticQuestions advances from intro to strengths with the static default
// question set, skipping AI generation.
func (w *Wizard) UseStaticQuestions() {
	w.reload(nil)
	w.step = StepStrengths
}

// Answer writes text into the answer slot for a category question and marks
// the slot as edited. Writes are unvalidated; validation happens on Advance.
func (w *Wizard) Answer(c Category, index int, text string) error {
	answers, ok := w.answers[c]
	if !ok || index < 0 || index >= len(answers) {
		return fmt.Errorf("no question at %s[%d]", c, index)
	}
	answers[index] = text
	w.edited[c][index] = true
	return nil
}

// ValidateCategory checks whether the category may be advanced past: every
// guided question (all but the last) must have a non-blank answer that the
// user has edited. The trailing question never blocks.
func (w *Wizard) ValidateCategory(c Category) error {
	answers := w.answers[c]
	for i := 0; i < len(answers)-1; i++ {
		if strings.TrimSpace(answers[i]) == "" {
			return &ValidationError{Message: "Please answer all questions in this section before proceeding."}
		}
		if !w.edited[c][i] {
			return &ValidationError{Message: "Please review and edit the suggested answers before proceeding."}
		}
	}
	return nil
}

// Advance moves to the next step in the sequence. From a category step the
// category must validate; on failure the step does not change. From summary
// it is a no-op. From intro the profile is validated but the step is not
// changed; leaving intro goes through AcceptStructure or UseStaticQuestions.
func (w *Wizard) Advance() error {
	if c, ok := w.step.Category(); ok {
		if err := w.ValidateCategory(c); err != nil {
			return err
		}
		if next, ok := w.step.next(); ok {
			w.step = next
		}
		return nil
	}
	if w.step == StepIntro {
		return w.SubmitIntro(w.profile)
	}
	return nil
}

// Retreat moves to the immediately preceding step. No-op at intro. Answers
// and edited flags are untouched.
func (w *Wizard) Retreat() {
	if prev, ok := w.step.prev(); ok {
		w.step = prev
	}
}

// ResetCategory blanks every answer in the category and clears its edited
// flags. The question list keeps its identity, so sample answers reappear as
// placeholders only.
func (w *Wizard) ResetCategory(c Category) {
	answers := w.answers[c]
	for i := range answers {
		answers[i] = ""
	}
	w.edited[c] = make(map[int]bool)
}

// GoHome unconditionally returns to the intro step: the profile is cleared,
// any generated structure is discarded, answers are rebuilt from the static
// defaults, and a fresh session ID is issued.
func (w *Wizard) GoHome() {
	w.sessionID = uuid.New().String()
	w.step = StepIntro
	w.profile = Profile{}
	w.reload(nil)
}
