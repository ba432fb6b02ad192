package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// BuildPDF renders the report as an A4 landscape document: heading,
// counters, then one table per category.
func BuildPDF(r Report) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	// Core fonts are cp1252; translate so Norwegian account names survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	v := r.View
	pdf.Cell(0, 8, tr("General ledger"))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	if r.Business != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Business: %s", r.Business)))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s", r.PeriodLabel()))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", r.GeneratedAt.Format("2006-01-02 15:04")))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Entries: %d shown, %d total, %d crossed, %d open",
		v.FilteredCount, v.Summary.Total, v.Summary.Crossed, v.Summary.Open))
	pdf.Ln(8)

	for _, c := range v.Categories {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 7, tr(fmt.Sprintf("%s (%s) - %d entries", c.Name, c.AccountRange, c.EntryCount)))
		pdf.Ln(8)

		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(25, 6, "Account", "1", 0, "C", false, 0, "")
		pdf.CellFormat(90, 6, "Name", "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 6, "Entries", "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, "Debit", "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, "Credit", "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, "Balance", "1", 0, "C", false, 0, "")
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		for _, a := range c.WithEntries() {
			pdf.CellFormat(25, 6, a.Account.AccountID, "1", 0, "L", false, 0, "")
			pdf.CellFormat(90, 6, tr(a.Account.Name), "1", 0, "L", false, 0, "")
			pdf.CellFormat(20, 6, fmt.Sprintf("%d", len(a.Entries)), "1", 0, "R", false, 0, "")
			pdf.CellFormat(40, 6, money(a.Totals.Debit), "1", 0, "R", false, 0, "")
			pdf.CellFormat(40, 6, money(a.Totals.Credit), "1", 0, "R", false, 0, "")
			pdf.CellFormat(40, 6, money(a.Totals.Balance), "1", 0, "R", false, 0, "")
			pdf.Ln(-1)
		}
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(135, 6, "Total", "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, money(c.Totals.Debit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, money(c.Totals.Credit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, money(c.Totals.Balance), "1", 0, "R", false, 0, "")
		pdf.Ln(10)
	}

	if err := pdf.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
