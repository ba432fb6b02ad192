package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies a journal entry (bilagstype).
type EntryType string

const (
	EntrySale         EntryType = "sale"
	EntryPurchase     EntryType = "purchase"
	EntrySalary       EntryType = "salary"
	EntryBank         EntryType = "bank"
	EntryJournal      EntryType = "journal"
	EntryDepreciation EntryType = "depreciation"
	EntryAdjustment   EntryType = "adjustment"
)

// EntryTypes lists every entry type in display order.
var EntryTypes = []EntryType{
	EntrySale,
	EntryPurchase,
	EntrySalary,
	EntryBank,
	EntryJournal,
	EntryDepreciation,
	EntryAdjustment,
}

// Valid reports whether t is one of the known entry types.
func (t EntryType) Valid() bool {
	for _, known := range EntryTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseEntryType normalises user input such as " Purchase " to an EntryType.
// ok is false when the result is not a known type; callers filtering on it
// still get a value that simply matches no entry.
func ParseEntryType(s string) (t EntryType, ok bool) {
	t = EntryType(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Valid()
}

// VATCode is a Norwegian MVA code attached to a line.
type VATCode string

var vatCodes = map[VATCode]string{
	"0":  "No VAT",
	"1":  "Output VAT 25%",
	"11": "Output VAT 15%",
	"13": "Output VAT 12%",
	"3":  "Input VAT 25%",
	"31": "Input VAT 15%",
	"33": "Input VAT 12%",
	"5":  "VAT exempt",
	"6":  "Outside the VAT act",
	"7":  "No VAT treatment",
	"14": "Reverse charge",
	"81": "Import of goods",
	"83": "Import of services",
	"86": "Import of foodstuffs",
	"87": "Import of raw materials",
}

// Known reports whether c is in the MVA code table.
func (c VATCode) Known() bool {
	_, ok := vatCodes[c]
	return ok
}

// Label returns a short description of the code, or "" if unknown.
func (c VATCode) Label() string {
	return vatCodes[c]
}

// JournalEntryLine is one posting (posteringslinje) against a single account.
// Exactly one of Debit and Credit is set; Amount mirrors it.
type JournalEntryLine struct {
	LineID      string              `json:"lineId"`
	AccountID   string              `json:"accountId"`
	AccountName string              `json:"accountName"` // denormalized copy
	Debit       decimal.NullDecimal `json:"debit"`
	Credit      decimal.NullDecimal `json:"credit"`
	Amount      decimal.Decimal     `json:"amount"`
	VATCode     VATCode             `json:"vatCode"`
	VATAmount   decimal.Decimal     `json:"vatAmount"`
	Description string              `json:"description"`
}

// IsDebit reports whether the line posts to the debit side.
func (l JournalEntryLine) IsDebit() bool { return l.Debit.Valid }

// IsCredit reports whether the line posts to the credit side.
func (l JournalEntryLine) IsCredit() bool { return l.Credit.Valid }

// DebitOrZero returns the debit amount, treating null as zero.
func (l JournalEntryLine) DebitOrZero() decimal.Decimal {
	if !l.Debit.Valid {
		return decimal.Zero
	}
	return l.Debit.Decimal
}

// CreditOrZero returns the credit amount, treating null as zero.
func (l JournalEntryLine) CreditOrZero() decimal.Decimal {
	if !l.Credit.Valid {
		return decimal.Zero
	}
	return l.Credit.Decimal
}

// JournalEntry is one voucher (bilag). IsCrossed is the only field that
// changes after creation.
type JournalEntry struct {
	EntryID        string             `json:"entryId"`
	EntryType      EntryType          `json:"entryType"`
	Date           time.Time          `json:"date"`
	Lines          []JournalEntryLine `json:"lines"`
	CounterpartyID string             `json:"customerSupplierId,omitempty"`
	DocumentURL    string             `json:"documentUrl,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	CreatedBy      string             `json:"createdBy"`
	Reference      string             `json:"reference,omitempty"`
	ProjectID      string             `json:"projectId,omitempty"`
	IsCrossed      bool               `json:"isCrossed"`
	IsOpen         bool               `json:"isOpen"`
}

// Touches reports whether any line posts to accountID.
func (e JournalEntry) Touches(accountID string) bool {
	for _, l := range e.Lines {
		if l.AccountID == accountID {
			return true
		}
	}
	return false
}

// TouchesAny reports whether any line posts to an account in ids.
func (e JournalEntry) TouchesAny(ids map[string]struct{}) bool {
	for _, l := range e.Lines {
		if _, ok := ids[l.AccountID]; ok {
			return true
		}
	}
	return false
}

// EntryTotals holds the debit and credit sums of one entry.
type EntryTotals struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// Balanced reports whether debits equal credits.
func (t EntryTotals) Balanced() bool {
	return t.Debit.Equal(t.Credit)
}

// Totals sums the entry's lines, null amounts counting as zero.
func (e JournalEntry) Totals() EntryTotals {
	t := EntryTotals{Debit: decimal.Zero, Credit: decimal.Zero}
	for _, l := range e.Lines {
		t.Debit = t.Debit.Add(l.DebitOrZero())
		t.Credit = t.Credit.Add(l.CreditOrZero())
	}
	return t
}

// Amount is the entry's debit total, the figure shown in the entry table.
func (e JournalEntry) Amount() decimal.Decimal {
	return e.Totals().Debit
}

// PrimaryAccountID returns the account of the first line, or "".
func (e JournalEntry) PrimaryAccountID() string {
	if len(e.Lines) == 0 {
		return ""
	}
	return e.Lines[0].AccountID
}
