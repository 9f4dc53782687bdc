package report

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/youthtopro/swotter/internal/swot"
)

const (
	pdfMargin       = 40.0
	pdfHeaderHeight = 60.0
	pdfFooterHeight = 40.0
	pdfBandHeight   = 24.0
	pdfLineHeight   = 16.0
)

// ExportPDF renders the assessment to a branded PDF at path. Strengths and
// weaknesses land on the first page, opportunities and threats on the
// second, each under a colored section band.
func ExportPDF(in Input, path string) error {
	if err := in.Validate(); err != nil {
		return err
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(docTitle, true)
	pdf.SetMargins(pdfMargin, pdfHeaderHeight+20, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfFooterHeight+20)
	pdf.AliasNbPages("")

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, pageHeight := pdf.GetPageSize()

	pdf.SetHeaderFunc(func() {
		pdf.SetFillColor(colorNavy.r, colorNavy.g, colorNavy.b)
		pdf.Rect(0, 0, pageWidth, pdfHeaderHeight, "F")
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Text(pdfMargin, 40, tr(docTitle))
		pdf.SetY(pdfHeaderHeight + 20)
	})

	pdf.SetFooterFunc(func() {
		footerY := pageHeight - pdfFooterHeight
		pdf.SetFillColor(colorNavy.r, colorNavy.g, colorNavy.b)
		pdf.Rect(0, footerY, pageWidth, pdfFooterHeight, "F")
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(pdfMargin, footerY+25, tr(footerBrand))

		pageText := fmt.Sprintf("Page %d of {nb}", pdf.PageNo())
		pdf.SetXY(0, footerY+25-10)
		pdf.CellFormat(pageWidth-pdfMargin, 12, pageText, "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	// Profile block.
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetY(90)
	pdf.Text(pdfMargin, pdf.GetY(), tr("Name: "+in.MenteeName))
	pdf.Text(pdfMargin, pdf.GetY()+20, tr("Career Goal: "+in.CareerGoal))
	pdf.SetY(130)

	writeSection := func(c swot.Category) {
		writePDFSection(pdf, tr, pageWidth, pageHeight, c, in.bullets(c))
	}

	writeSection(swot.CategoryStrengths)
	writeSection(swot.CategoryWeaknesses)

	pdf.AddPage()
	writeSection(swot.CategoryOpportunities)
	writeSection(swot.CategoryThreats)

	return pdf.OutputFileAndClose(path)
}

// writePDFSection draws one category: a colored title band followed by the
// bulleted answers. The band never sits alone at a page bottom.
func writePDFSection(pdf *fpdf.Fpdf, tr func(string) string, pageWidth, pageHeight float64, c swot.Category, lines []string) {
	width := pageWidth - 2*pdfMargin

	if pdf.GetY()+pdfBandHeight+2*pdfLineHeight > pageHeight-pdfFooterHeight-20 {
		pdf.AddPage()
	}

	color := categoryColor(c)
	bandY := pdf.GetY()
	pdf.SetFillColor(color.r, color.g, color.b)
	pdf.Rect(pdfMargin, bandY, width, pdfBandHeight, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Text(pdfMargin+10, bandY+16, tr(c.Title()))
	pdf.SetY(bandY + pdfBandHeight + 12)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range lines {
		pdf.SetX(pdfMargin + 10)
		pdf.MultiCell(width-20, pdfLineHeight, tr("• "+line), "", "L", false)
	}
	pdf.SetY(pdf.GetY() + 20)
}
