package report

import (
	"fmt"
	"os"

	"github.com/fumiama/go-docx"
	"github.com/youthtopro/swotter/internal/swot"
)

// ExportDOCX renders the assessment to a Word document at path: a centered
// title, the profile block, and one heading plus bulleted answers per
// category. Word sizes are half-points, so "32" is 16pt.
func ExportDOCX(in Input, path string) error {
	if err := in.Validate(); err != nil {
		return err
	}

	doc := docx.New().WithDefaultTheme()

	title := doc.AddParagraph().Justification("center")
	title.AddText("SWOT Analysis Report").Size("32").Bold().Color(colorNavy.hex())

	doc.AddParagraph() // spacer

	name := doc.AddParagraph()
	name.AddText("Name: ").Size("24").Bold()
	name.AddText(in.MenteeName).Size("24")

	goal := doc.AddParagraph()
	goal.AddText("Career Goal: ").Size("24").Bold()
	goal.AddText(in.CareerGoal).Size("24")

	for _, c := range swot.Categories() {
		doc.AddParagraph() // spacer before each section

		heading := doc.AddParagraph()
		heading.AddText(c.Title()).Size("28").Bold().Color(categoryColor(c).hex())

		for _, line := range in.bullets(c) {
			p := doc.AddParagraph()
			p.AddText("• " + line).Size("24")
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := doc.WriteTo(f); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return f.Close()
}
