// Package report renders a completed SWOT assessment into branded PDF and
// DOCX documents.
package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/youthtopro/swotter/internal/swot"
)

// Input is the material for one exported report.
type Input struct {
	MenteeName string
	CareerGoal string

	// Answers maps each category to its answer list, index-aligned with the
	// question list the mentee saw. Blank entries render as "N/A".
	Answers map[swot.Category][]string
}

// Validate checks the input is complete enough to export: both profile
// fields present and at least one non-blank answer overall.
func (in Input) Validate() error {
	if strings.TrimSpace(in.MenteeName) == "" {
		return fmt.Errorf("mentee name is required for export")
	}
	if strings.TrimSpace(in.CareerGoal) == "" {
		return fmt.Errorf("career goal is required for export")
	}
	for _, c := range swot.Categories() {
		for _, a := range in.Answers[c] {
			if strings.TrimSpace(a) != "" {
				return nil
			}
		}
	}
	return fmt.Errorf("no answers to export")
}

// bullets returns the printable answer lines for a category. Blank answers
// become "N/A" so the document shows every question slot; a category with
// no answers at all gets a single "N/A" line.
func (in Input) bullets(c swot.Category) []string {
	answers := in.Answers[c]
	if len(answers) == 0 {
		return []string{"N/A"}
	}
	out := make([]string, len(answers))
	for i, a := range answers {
		a = strings.TrimSpace(a)
		if a == "" {
			a = "N/A"
		}
		out[i] = a
	}
	return out
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Filename builds the deliverable file name:
// "DLV04 SWOT <name>_<YYYY-MM-DD>.<ext>". Non-alphanumeric characters in
// the name collapse to underscores; a blank name falls back to "User".
func Filename(menteeName, ext string, now time.Time) string {
	name := unsafeNameChars.ReplaceAllString(strings.TrimSpace(menteeName), "_")
	if name == "" {
		name = "User"
	}
	return fmt.Sprintf("DLV04 SWOT %s_%s.%s", name, now.Format("2006-01-02"), ext)
}

// Branding shared by both renderers.
const (
	docTitle    = "YouthToPro - SWOT Analysis Document"
	footerBrand = "YouthToPro | Empowering Arab Youth"
)

// brandColor is an RGB triple for the section bands and chrome.
type brandColor struct {
	r, g, b int
}

var (
	colorNavy   = brandColor{24, 59, 104}   // #183B68
	colorAqua   = brandColor{126, 197, 179} // #7EC5B3
	colorYellow = brandColor{243, 181, 87}  // #F3B557
	colorGray   = brandColor{153, 153, 153} // #999999
)

func (c brandColor) hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.r, c.g, c.b)
}

// categoryColor returns the band color for a category.
func categoryColor(c swot.Category) brandColor {
	switch c {
	case swot.CategoryStrengths:
		return colorAqua
	case swot.CategoryWeaknesses:
		return colorYellow
	case swot.CategoryOpportunities:
		return colorNavy
	default:
		return colorGray
	}
}
