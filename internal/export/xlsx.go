package export

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Sheet names in the XLSX workbook.
const (
	SheetSummary = "summary"
	SheetLedger  = "ledger"
	SheetEntries = "entries"
)

var (
	ledgerHeader  = []any{"Category", "Account", "Name", "Subcategory", "Entries", "Debit", "Credit", "Balance"}
	entriesHeader = []any{"Entry", "Date", "Type", "Account", "Account name", "Debit", "Credit", "VAT code", "VAT", "Description", "Reference", "Crossed"}
)

// BuildXLSX renders the report as a workbook with a summary sheet, one row
// per account in the ledger sheet, and one row per line in the entries sheet.
func BuildXLSX(r Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}
	for _, name := range []string{SheetLedger, SheetEntries} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("adding sheet %s: %w", name, err)
		}
	}

	v := r.View
	summary := [][]any{
		{"General ledger"},
		{},
		{"Business", r.Business},
		{"Period", r.PeriodLabel()},
		{"Generated", r.GeneratedAt.Format("2006-01-02 15:04")},
		{"Entries shown", v.FilteredCount},
		{"Entries total", v.Summary.Total},
		{"Crossed", v.Summary.Crossed},
		{"Open", v.Summary.Open},
	}
	if err := writeRows(f, SheetSummary, 1, summary); err != nil {
		return nil, err
	}

	rows := [][]any{ledgerHeader}
	for _, c := range v.Categories {
		for _, a := range c.Accounts {
			rows = append(rows, []any{
				c.Name, a.Account.AccountID, a.Account.Name, a.SubcategoryName, len(a.Entries),
				number(a.Totals.Debit), number(a.Totals.Credit), number(a.Totals.Balance),
			})
		}
		rows = append(rows, []any{
			c.Name + " total", "", "", "", c.EntryCount,
			number(c.Totals.Debit), number(c.Totals.Credit), number(c.Totals.Balance),
		})
	}
	if err := writeRows(f, SheetLedger, 1, rows); err != nil {
		return nil, err
	}

	rows = [][]any{entriesHeader}
	for _, e := range v.Entries {
		for _, l := range e.Lines {
			rows = append(rows, []any{
				e.EntryID, e.Date.Format("2006-01-02"), string(e.EntryType), l.AccountID, l.AccountName,
				sideAmount(l.Debit), sideAmount(l.Credit), string(l.VATCode), l.VATCode.Label(), l.Description, e.Reference, crossedMark(e),
			})
		}
	}
	if err := writeRows(f, SheetEntries, 1, rows); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, start int, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, start+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, start+i, err)
		}
	}
	return nil
}

// number stores amounts as numeric cells so spreadsheets can sum them.
func number(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
