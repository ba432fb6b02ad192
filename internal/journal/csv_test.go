package journal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledger/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func assertSameEntry(t *testing.T, want, got model.JournalEntry) {
	t.Helper()
	assert.Equal(t, want.EntryID, got.EntryID)
	assert.Equal(t, want.EntryType, got.EntryType)
	assert.True(t, want.Date.Equal(got.Date), "date mismatch for %s", want.EntryID)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "created_at mismatch for %s", want.EntryID)
	assert.Equal(t, want.CreatedBy, got.CreatedBy)
	assert.Equal(t, want.CounterpartyID, got.CounterpartyID)
	assert.Equal(t, want.DocumentURL, got.DocumentURL)
	assert.Equal(t, want.Reference, got.Reference)
	assert.Equal(t, want.ProjectID, got.ProjectID)
	assert.Equal(t, want.IsCrossed, got.IsCrossed)
	assert.Equal(t, want.IsOpen, got.IsOpen)
	require.Len(t, got.Lines, len(want.Lines))
	for i := range want.Lines {
		w, g := want.Lines[i], got.Lines[i]
		assert.Equal(t, w.LineID, g.LineID)
		assert.Equal(t, w.AccountID, g.AccountID)
		assert.Equal(t, w.AccountName, g.AccountName)
		assert.Equal(t, w.Debit.Valid, g.Debit.Valid, "debit validity %s/%s", want.EntryID, w.LineID)
		assert.Equal(t, w.Credit.Valid, g.Credit.Valid, "credit validity %s/%s", want.EntryID, w.LineID)
		assert.True(t, w.DebitOrZero().Equal(g.DebitOrZero()))
		assert.True(t, w.CreditOrZero().Equal(g.CreditOrZero()))
		assert.True(t, w.Amount.Equal(g.Amount))
		assert.True(t, w.VATAmount.Equal(g.VATAmount))
		assert.Equal(t, w.VATCode, g.VATCode)
		assert.Equal(t, w.Description, g.Description)
	}
}

func TestRoundTrip(t *testing.T) {
	entries := DemoEntries()

	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, entries))

	// Verify header is present.
	assert.True(t, strings.HasPrefix(buf.String(), "entry_id,"))

	got, err := ReadEntries(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(entries))

	for i := range entries {
		assertSameEntry(t, entries[i], got[i])
	}
}

func TestMarshalLines(t *testing.T) {
	e := DemoEntries()[0]
	rows := MarshalLines(e)
	require.Len(t, rows, 3)

	assert.Equal(t, "B-2024-001", rows[0][colEntryID])
	assert.Equal(t, "sale", rows[0][colType])
	assert.Equal(t, "2024-01-15", rows[0][colDate])
	assert.Equal(t, "12500.00", rows[0][colDebit])
	assert.Equal(t, "", rows[0][colCredit], "null credit should be empty")
	assert.Equal(t, "", rows[1][colDebit], "null debit should be empty")
	assert.Equal(t, "10000.00", rows[1][colCredit])
	assert.Equal(t, "2024-01-15T10:30:00", rows[2][colCreatedAt])
	assert.Equal(t, "false", rows[2][colCrossed])
}

func TestUnmarshalLine(t *testing.T) {
	record := strings.Split("B-2024-009,journal,2024-03-01,1,1920,Bankinnskudd,250.50,,250.50,0,0,Korrigering,,,2024-03-01T08:00:00,Ole Hansen,Ref 9,P-002,true,", ",")
	entry, line, err := UnmarshalLine(record)
	require.NoError(t, err)

	assert.Equal(t, "B-2024-009", entry.EntryID)
	assert.Equal(t, model.EntryJournal, entry.EntryType)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), entry.Date)
	assert.Equal(t, "P-002", entry.ProjectID)
	assert.True(t, entry.IsCrossed)
	assert.False(t, entry.IsOpen)
	assert.Empty(t, entry.Lines)

	assert.True(t, line.IsDebit())
	assert.False(t, line.IsCredit())
	assert.True(t, line.Debit.Decimal.Equal(dec("250.50")))
	assert.True(t, line.VATAmount.IsZero())
}

func TestUnmarshalLine_Errors(t *testing.T) {
	valid := strings.Split("B-2024-009,journal,2024-03-01,1,1920,Bank,1.00,,1.00,0,0,x,,,,,,,false,false", ",")

	tests := []struct {
		name string
		col  int
		val  string
	}{
		{"bad date", colDate, "01/03/2024"},
		{"bad debit", colDebit, "abc"},
		{"bad credit", colCredit, "1,0"},
		{"bad amount", colAmount, "x"},
		{"bad vat", colVATAmount, "--"},
		{"bad created_at", colCreatedAt, "yesterday"},
		{"bad crossed", colCrossed, "maybe"},
		{"bad open", colOpen, "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := append([]string(nil), valid...)
			rec[tt.col] = tt.val
			_, _, err := UnmarshalLine(rec)
			assert.Error(t, err)
		})
	}

	_, _, err := UnmarshalLine(valid[:5])
	assert.Error(t, err)
}

func TestReadEntries_GroupsConsecutiveRows(t *testing.T) {
	csvData := Header + "\n" +
		"B-2024-010,bank,2024-04-02,1,1920,Bankinnskudd,100.00,,100.00,0,0,Inn,,,,,,,false,true\n" +
		"B-2024-010,bank,2024-04-02,2,1500,Kundefordringer,,100.00,100.00,0,0,Ut,,,,,,,false,true\n" +
		"B-2024-011,bank,2024-04-03,1,1920,Bankinnskudd,50.00,,50.00,0,0,Inn,,,,,,,false,false\n" +
		"B-2024-011,bank,2024-04-03,2,1500,Kundefordringer,,50.00,50.00,0,0,Ut,,,,,,,false,false\n"

	entries, err := ReadEntries(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Len(t, entries[0].Lines, 2)
	assert.Len(t, entries[1].Lines, 2)
	assert.True(t, entries[0].IsOpen)
	assert.Equal(t, "2", entries[1].Lines[1].LineID)
}

func TestReadEntries_Empty(t *testing.T) {
	entries, err := ReadEntries(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = ReadEntries(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadEntries_WrongFieldCount(t *testing.T) {
	_, err := ReadEntries(strings.NewReader(Header + "\nB-2024-001,sale\n"))
	require.Error(t, err)
}

func TestReadEntries_MissingHeader(t *testing.T) {
	row := "B-2024-010,bank,2024-04-02,1,1920,Bankinnskudd,100.00,,100.00,0,0,Inn,,,,,,,false,true\n"
	_, err := ReadEntries(strings.NewReader(row))
	assert.ErrorContains(t, err, "unexpected journal header")
}
