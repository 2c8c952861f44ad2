// Package report renders the category summary as a downloadable PDF.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"category-audit-backend/internal/models"
)

// Params carry everything one report needs.
type Params struct {
	// ModelLabel identifies the audited model, shown under the title.
	ModelLabel string

	// Rows is the classified category summary, in master list order.
	Rows []models.Row

	// GeneratedAt stamps the document. Zero means time.Now().
	GeneratedAt time.Time
}

// legend describes the four classifications at the top of the report.
// The symbols render in ZapfDingbats: "3" is a check mark, "7" a ballot X.
var legend = []struct {
	glyph   string
	status  models.Status
	caption string
}{
	{"3", models.StatusPresent, "Green: Category is in contract and present in model"},
	{"7", models.StatusMissingFromModel, "Orange: Category is in contract but not in model"},
	{"7", models.StatusMissingFromContract, "Red: Category is in model but missing from contract"},
	{"7", models.StatusNotApplicable, "Gray: Category is neither in contract nor in model"},
}

// Filename returns the download name for a report generated at t.
func Filename(t time.Time) string {
	return "Category_Summary_" + t.Format("20060102_150405") + ".pdf"
}

// Build renders the report and returns the PDF bytes.
func Build(params Params) ([]byte, error) {
	generatedAt := params.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Category Summary Report", false)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Category Summary Report", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// Metadata
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Generated: "+generatedAt.Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")
	label := params.ModelLabel
	if label == "" {
		label = "Unknown"
	}
	pdf.CellFormat(0, 6, "File: "+label, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Legend
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Legend", "", 1, "L", false, 0, "")
	for _, item := range legend {
		r, g, b := item.status.RGB()

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(5, 6, "-", "", 0, "L", false, 0, "")

		pdf.SetFont("ZapfDingbats", "", 10)
		pdf.SetTextColor(r, g, b)
		pdf.CellFormat(6, 6, item.glyph, "", 0, "C", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, 6, item.caption, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Details table
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Category Details", "", 1, "L", false, 0, "")

	const (
		categoryWidth    = 60.0
		statusWidth      = 30.0
		descriptionWidth = 100.0
		rowHeight        = 7.0
	)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(categoryWidth, rowHeight, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(statusWidth, rowHeight, "Status", "1", 0, "C", true, 0, "")
	pdf.CellFormat(descriptionWidth, rowHeight, "Description", "1", 1, "L", true, 0, "")

	for _, row := range params.Rows {
		r, g, b := row.Status.RGB()

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(categoryWidth, rowHeight, row.Category, "1", 0, "L", false, 0, "")

		pdf.SetFont("ZapfDingbats", "", 10)
		pdf.SetTextColor(r, g, b)
		pdf.CellFormat(statusWidth, rowHeight, statusGlyph(row.Status), "1", 0, "C", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(descriptionWidth, rowHeight, describe(row), "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func statusGlyph(s models.Status) string {
	if s == models.StatusPresent {
		return "3"
	}
	return "7"
}

// describe returns the description column text. Present categories report
// their element count, the rest reuse the summary wording.
func describe(row models.Row) string {
	if row.Status == models.StatusPresent {
		return fmt.Sprintf("Present (%d elements)", row.ElementCount)
	}
	return row.Description
}
