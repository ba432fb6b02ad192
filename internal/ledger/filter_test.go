package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledger/internal/journal"
	"github.com/cleared-dev/ledger/internal/ledger"
	"github.com/cleared-dev/ledger/internal/model"
)

func ids(entries []model.JournalEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.EntryID)
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		filter ledger.Filter
		want   []string
	}{
		{"zero filter", ledger.Filter{}, []string{"B-2024-001", "B-2024-002", "B-2024-003", "B-2024-004", "B-2024-005"}},
		{"year", ledger.Filter{Period: ledger.Period{Year: 2024}}, []string{"B-2024-001", "B-2024-002", "B-2024-003", "B-2024-004", "B-2024-005"}},
		{"other year", ledger.Filter{Period: ledger.Period{Year: 2023}}, []string{}},
		{"month", ledger.Filter{Period: ledger.Period{Year: 2024, Month: 2}}, []string{"B-2024-005"}},
		{"invalid month", ledger.Filter{Period: ledger.Period{Year: 2024, Month: 13}}, []string{}},
		{"purchase 2024", ledger.Filter{Period: ledger.Period{Year: 2024}, EntryType: model.EntryPurchase}, []string{"B-2024-002", "B-2024-005"}},
		{"unknown type", ledger.Filter{EntryType: "salg"}, []string{}},
		{"account", ledger.Filter{AccountID: "1500"}, []string{"B-2024-001", "B-2024-003"}},
		{"missing account", ledger.Filter{AccountID: "9999"}, []string{}},
		{"open mode", ledger.Filter{CrossingEnabled: true, CrossingMode: ledger.CrossingOpen}, []string{"B-2024-003", "B-2024-005"}},
		{"open mode disabled", ledger.Filter{CrossingMode: ledger.CrossingOpen}, []string{"B-2024-001", "B-2024-002", "B-2024-003", "B-2024-004", "B-2024-005"}},
		{"all mode", ledger.Filter{CrossingEnabled: true, CrossingMode: ledger.CrossingAll}, []string{"B-2024-001", "B-2024-002", "B-2024-003", "B-2024-004", "B-2024-005"}},
		{"crossed mode", ledger.Filter{CrossingEnabled: true, CrossingMode: ledger.CrossingCrossed}, []string{"B-2024-002"}},
		{"project", ledger.Filter{ProjectID: "P-001"}, []string{"B-2024-001"}},
		{"search reference", ledger.Filter{Search: "faktura 8842"}, []string{"B-2024-005"}},
		{"search line text", ledger.Filter{Search: "MVA"}, []string{"B-2024-001", "B-2024-002", "B-2024-005"}},
		{"search account name", ledger.Filter{Search: "skattetrekk"}, []string{"B-2024-004"}},
		{"date range", ledger.Filter{From: time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC), To: time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC)}, []string{"B-2024-002", "B-2024-003", "B-2024-004"}},
		{"combined", ledger.Filter{Period: ledger.Period{Year: 2024}, AccountID: "2400", CrossingEnabled: true, CrossingMode: ledger.CrossingOpen}, []string{"B-2024-005"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.Apply(journal.DemoEntries(), tt.filter)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_Idempotent(t *testing.T) {
	f := ledger.Filter{Period: ledger.Period{Year: 2024}, AccountID: "2710"}
	once := ledger.Apply(journal.DemoEntries(), f)
	twice := ledger.Apply(once, f)
	assert.Equal(t, once, twice)
}

func TestApply_Commutative(t *testing.T) {
	entries := journal.DemoEntries()
	byType := ledger.Filter{EntryType: model.EntryPurchase}
	byAccount := ledger.Filter{AccountID: "2710"}

	a := ledger.Apply(ledger.Apply(entries, byType), byAccount)
	b := ledger.Apply(ledger.Apply(entries, byAccount), byType)
	assert.Equal(t, a, b)
	assert.Equal(t, []string{"B-2024-002", "B-2024-005"}, ids(a))
}

func TestApply_EmptyInput(t *testing.T) {
	got := ledger.Apply(nil, ledger.Filter{Period: ledger.Period{Year: 2024}})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApply_DoesNotMutate(t *testing.T) {
	entries := journal.DemoEntries()
	_ = ledger.Apply(entries, ledger.Filter{AccountID: "1500"})
	assert.Equal(t, journal.DemoEntries(), entries)
}

// A single sale voucher filtered by year and totalled on 1500.
func TestApply_SingleSaleTotals(t *testing.T) {
	entries := journal.DemoEntries()[:1]

	result := ledger.Apply(entries, ledger.Filter{Period: ledger.Period{Year: 2024}})
	require.Len(t, result, 1)

	totals := ledger.TotalsForAccount(result, "1500")
	assert.Equal(t, "12500", totals.Debit.String())
	assert.True(t, totals.Credit.IsZero())
	assert.Equal(t, "12500", totals.Balance.String())
}

func TestParseCrossingMode(t *testing.T) {
	m, err := ledger.ParseCrossingMode("")
	require.NoError(t, err)
	assert.Equal(t, ledger.CrossingAll, m)

	m, err = ledger.ParseCrossingMode("Open")
	require.NoError(t, err)
	assert.Equal(t, ledger.CrossingOpen, m)

	_, err = ledger.ParseCrossingMode("closed")
	assert.ErrorContains(t, err, "unknown crossing mode")
}
