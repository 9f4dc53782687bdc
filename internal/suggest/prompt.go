package suggest

import (
	"fmt"
	"strings"

	"github.com/youthtopro/swotter/internal/swot"
)

const systemPrompt = "You are an expert career advisor providing SWOT analysis suggestions."

// buildUserMessage constructs the suggestion prompt for one category.
func buildUserMessage(c swot.Category, goal string, questions []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are assisting a mentee with the %s section of a SWOT analysis for the career goal: %q.\n\n",
		strings.ToUpper(string(c)), strings.TrimSpace(goal))

	b.WriteString("The guiding questions for this section are:\n")
	if len(questions) == 0 {
		b.WriteString("No specific guiding questions were provided for this section.\n")
	} else {
		for i, q := range questions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, q)
		}
	}

	b.WriteString("\nGenerate 3-5 concise, actionable bullet-point suggestions. ")
	b.WriteString("Each suggestion should directly help the mentee reflect on or answer one of the guiding questions, given their career goal.\n\n")
	b.WriteString("Provide ONLY the bullet-point suggestions, one per line, each starting with \"- \". No titles, introductions, or other text.")

	return b.String()
}
