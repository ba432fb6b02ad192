package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/model"
)

// Header is the CSV header for entries.csv. Each row is one line; the
// entry-level columns repeat on every line of the entry.
const Header = "entry_id,entry_type,date,line_id,account_id,account_name,debit,credit,amount,vat_code,vat_amount,description,counterparty_id,document_url,created_at,created_by,reference,project_id,is_crossed,is_open"

const (
	numFields       = 20
	dateFormat      = "2006-01-02"
	createdAtFormat = "2006-01-02T15:04:05"
	colEntryID      = 0
	colType         = 1
	colDate         = 2
	colLineID       = 3
	colAcctID       = 4
	colAcctName     = 5
	colDebit        = 6
	colCredit       = 7
	colAmount       = 8
	colVATCode      = 9
	colVATAmount    = 10
	colDesc         = 11
	colCparty       = 12
	colDocURL       = 13
	colCreatedAt    = 14
	colCreatedBy    = 15
	colRef          = 16
	colProject      = 17
	colCrossed      = 18
	colOpen         = 19
)

// ReadEntries reads entries.csv. Consecutive rows sharing an entry_id form
// one entry; entry-level fields come from the entry's first row.
func ReadEntries(r io.Reader) ([]model.JournalEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}
	if got := strings.Join(records[0], ","); got != Header {
		return nil, fmt.Errorf("unexpected journal header %q", got)
	}

	var entries []model.JournalEntry
	for i, rec := range records[1:] {
		entry, line, err := UnmarshalLine(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if n := len(entries); n > 0 && entries[n-1].EntryID == entry.EntryID {
			entries[n-1].Lines = append(entries[n-1].Lines, line)
			continue
		}
		entry.Lines = []model.JournalEntryLine{line}
		entries = append(entries, entry)
	}
	return entries, nil
}

// WriteEntries writes entries to an entries.csv writer (including header).
func WriteEntries(w io.Writer, entries []model.JournalEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := 2
	for _, e := range entries {
		for _, rec := range MarshalLines(e) {
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("writing row %d: %w", row, err)
			}
			row++
		}
	}
	return cw.Error()
}

// MarshalLines converts an entry to one CSV row per line.
func MarshalLines(e model.JournalEntry) [][]string {
	rows := make([][]string, 0, len(e.Lines))
	for _, l := range e.Lines {
		row := make([]string, numFields)
		row[colEntryID] = e.EntryID
		row[colType] = string(e.EntryType)
		row[colDate] = e.Date.Format(dateFormat)
		row[colLineID] = l.LineID
		row[colAcctID] = l.AccountID
		row[colAcctName] = l.AccountName
		if l.Debit.Valid {
			row[colDebit] = l.Debit.Decimal.StringFixed(2)
		}
		if l.Credit.Valid {
			row[colCredit] = l.Credit.Decimal.StringFixed(2)
		}
		row[colAmount] = l.Amount.StringFixed(2)
		row[colVATCode] = string(l.VATCode)
		row[colVATAmount] = l.VATAmount.StringFixed(2)
		row[colDesc] = l.Description
		row[colCparty] = e.CounterpartyID
		row[colDocURL] = e.DocumentURL
		if !e.CreatedAt.IsZero() {
			row[colCreatedAt] = e.CreatedAt.Format(createdAtFormat)
		}
		row[colCreatedBy] = e.CreatedBy
		row[colRef] = e.Reference
		row[colProject] = e.ProjectID
		row[colCrossed] = strconv.FormatBool(e.IsCrossed)
		row[colOpen] = strconv.FormatBool(e.IsOpen)
		rows = append(rows, row)
	}
	return rows
}

// UnmarshalLine converts a CSV row to its entry header (without lines) and
// the line it carries.
func UnmarshalLine(record []string) (model.JournalEntry, model.JournalEntryLine, error) {
	var (
		entry model.JournalEntry
		line  model.JournalEntryLine
	)
	if len(record) != numFields {
		return entry, line, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return entry, line, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	var createdAt time.Time
	if record[colCreatedAt] != "" {
		createdAt, err = time.Parse(createdAtFormat, record[colCreatedAt])
		if err != nil {
			return entry, line, fmt.Errorf("parsing created_at %q: %w", record[colCreatedAt], err)
		}
	}

	debit, err := parseNullDecimal("debit", record[colDebit])
	if err != nil {
		return entry, line, err
	}
	credit, err := parseNullDecimal("credit", record[colCredit])
	if err != nil {
		return entry, line, err
	}
	amount, err := parseDecimal("amount", record[colAmount])
	if err != nil {
		return entry, line, err
	}
	vatAmount, err := parseDecimal("vat_amount", record[colVATAmount])
	if err != nil {
		return entry, line, err
	}

	crossed, err := parseBool("is_crossed", record[colCrossed])
	if err != nil {
		return entry, line, err
	}
	open, err := parseBool("is_open", record[colOpen])
	if err != nil {
		return entry, line, err
	}

	entry = model.JournalEntry{
		EntryID:        record[colEntryID],
		EntryType:      model.EntryType(record[colType]),
		Date:           date,
		CounterpartyID: record[colCparty],
		DocumentURL:    record[colDocURL],
		CreatedAt:      createdAt,
		CreatedBy:      record[colCreatedBy],
		Reference:      record[colRef],
		ProjectID:      record[colProject],
		IsCrossed:      crossed,
		IsOpen:         open,
	}
	line = model.JournalEntryLine{
		LineID:      record[colLineID],
		AccountID:   record[colAcctID],
		AccountName: record[colAcctName],
		Debit:       debit,
		Credit:      credit,
		Amount:      amount,
		VATCode:     model.VATCode(record[colVATCode]),
		VATAmount:   vatAmount,
		Description: record[colDesc],
	}
	return entry, line, nil
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %s %q: %w", field, s, err)
	}
	return d, nil
}

func parseNullDecimal(field, s string) (decimal.NullDecimal, error) {
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("parsing %s %q: %w", field, s, err)
	}
	return decimal.NewNullDecimal(d), nil
}

func parseBool(field, s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("parsing %s %q: %w", field, s, err)
	}
	return b, nil
}
