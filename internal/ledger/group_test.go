package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledger/internal/accounts"
	"github.com/cleared-dev/ledger/internal/journal"
	"github.com/cleared-dev/ledger/internal/ledger"
	"github.com/cleared-dev/ledger/internal/model"
)

func categoryIDs(views []ledger.CategoryView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.ID)
	}
	return out
}

func accountIDs(views []ledger.AccountView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Account.AccountID)
	}
	return out
}

func TestEntriesForAccount(t *testing.T) {
	got := ledger.EntriesForAccount(journal.DemoEntries(), "2710")
	assert.Equal(t, []string{"B-2024-002", "B-2024-005"}, ids(got))

	assert.Empty(t, ledger.EntriesForAccount(journal.DemoEntries(), "9999"))
}

func TestTotalsForAccount(t *testing.T) {
	entries := journal.DemoEntries()

	tests := []struct {
		account                string
		debit, credit, balance int64
		side                   ledger.Side
	}{
		{"1500", 12500, 12500, 0, ledger.SideZero},
		{"1920", 12500, 0, 12500, ledger.SideDebit},
		{"2400", 0, 9000, -9000, ledger.SideCredit},
		{"2710", 1800, 0, 1800, ledger.SideDebit},
		{"9999", 0, 0, 0, ledger.SideZero},
	}
	for _, tt := range tests {
		got := ledger.TotalsForAccount(entries, tt.account)
		assert.True(t, got.Debit.Equal(decimal.NewFromInt(tt.debit)), "debit %s", tt.account)
		assert.True(t, got.Credit.Equal(decimal.NewFromInt(tt.credit)), "credit %s", tt.account)
		assert.True(t, got.Balance.Equal(decimal.NewFromInt(tt.balance)), "balance %s", tt.account)
		assert.Equal(t, tt.side, got.Side(), "side %s", tt.account)
		assert.True(t, got.AbsBalance().Equal(decimal.NewFromInt(tt.balance).Abs()))
	}
}

func TestTotalsForAccount_BalanceIdentity(t *testing.T) {
	entries := journal.DemoEntries()
	svc := accounts.NewService(accounts.DefaultChart())
	for _, a := range svc.All() {
		got := ledger.TotalsForAccount(ledger.EntriesForAccount(entries, a.AccountID), a.AccountID)
		assert.True(t, got.Balance.Equal(got.Debit.Sub(got.Credit)), "account %s", a.AccountID)
	}
}

func TestIndex(t *testing.T) {
	entries := journal.DemoEntries()
	idx := ledger.NewIndex(entries)

	// 2710 appears once in each of two entries.
	assert.Equal(t, []int{1, 4}, idx["2710"])
	assert.True(t, idx.Has("5400"))
	assert.False(t, idx.Has("9999"))
	assert.Equal(t, []string{"B-2024-001", "B-2024-003"}, ids(idx.Entries(entries, "1500")))
}

func TestIndex_DuplicateLinesCountedOnce(t *testing.T) {
	e := journal.DemoEntries()[1]
	e.Lines = append(append([]model.JournalEntryLine(nil), e.Lines...), e.Lines[0])
	idx := ledger.NewIndex([]model.JournalEntry{e})
	assert.Equal(t, []int{0}, idx["6800"])
}

func TestAccountsWithEntries(t *testing.T) {
	got := ledger.AccountsWithEntries(accounts.DefaultChart(), journal.DemoEntries())
	want := []string{"1500", "1920", "2400", "2600", "2700", "2710", "2770", "2920", "3000", "5000", "5400", "6800", "6940"}

	gotIDs := make([]string, 0, len(got))
	for _, a := range got {
		gotIDs = append(gotIDs, a.AccountID)
	}
	assert.Equal(t, want, gotIDs)
}

func TestGroup_AllCategories(t *testing.T) {
	chart := accounts.DefaultChart()
	views := ledger.Group(chart, journal.DemoEntries(), ledger.GroupOptions{})

	// Cost of goods and financial items have no entries and are suppressed.
	assert.Equal(t, []string{"assets", "equity-liabilities", "revenue", "payroll", "operating-expenses"}, categoryIDs(views))

	assets := views[0]
	assert.Equal(t, "Eiendeler", assets.Name)
	assert.Equal(t, model.ColorBlue, assets.Color)
	assert.Equal(t, 2, assets.EntryCount)
	// Every declared account is exposed, in declared order.
	assert.Equal(t, []string{"1200", "1250", "1500", "1570", "1900", "1920"}, accountIDs(assets.Accounts))
	assert.Equal(t, []string{"1500", "1920"}, accountIDs(assets.WithEntries()))

	liabilities := views[1]
	// B-2024-002, -004 and -005 touch several liability accounts but count once each;
	// B-2024-001 touches 2700.
	assert.Equal(t, 4, liabilities.EntryCount)
	assert.Equal(t, "receivables", assets.Accounts[2].SubcategoryID)
	assert.Equal(t, "Fordringer", assets.Accounts[2].SubcategoryName)
}

func TestGroup_CategoryTotals(t *testing.T) {
	views := ledger.Group(accounts.DefaultChart(), journal.DemoEntries(), ledger.GroupOptions{})
	payroll := views[3]
	require.Equal(t, "payroll", payroll.ID)
	assert.True(t, payroll.Totals.Debit.Equal(decimal.NewFromInt(51345)))
	assert.True(t, payroll.Totals.Credit.IsZero())
	assert.True(t, payroll.Totals.Balance.Equal(decimal.NewFromInt(51345)))
}

func TestGroup_SelectedAccount(t *testing.T) {
	chart := accounts.DefaultChart()
	filtered := ledger.Apply(journal.DemoEntries(), ledger.Filter{AccountID: "2710"})
	views := ledger.Group(chart, filtered, ledger.GroupOptions{AccountID: "2710"})

	require.Len(t, views, 1)
	assert.Equal(t, "equity-liabilities", views[0].ID)
	require.Len(t, views[0].Accounts, 1)
	assert.Equal(t, "2710", views[0].Accounts[0].Account.AccountID)
	assert.Equal(t, 2, views[0].EntryCount)
	assert.True(t, views[0].Accounts[0].Totals.Debit.Equal(decimal.NewFromInt(1800)))
}

func TestGroup_SelectedAccountWithoutEntries(t *testing.T) {
	views := ledger.Group(accounts.DefaultChart(), journal.DemoEntries(), ledger.GroupOptions{AccountID: "1200"})
	assert.Empty(t, views)
}

// Filtering on an account that does not exist suppresses every category.
func TestGroup_UnknownAccountFilter(t *testing.T) {
	f := ledger.Filter{AccountID: "9999"}
	filtered := ledger.Apply(journal.DemoEntries(), f)
	assert.Empty(t, filtered)
	assert.Empty(t, ledger.Group(accounts.DefaultChart(), filtered, ledger.GroupOptions{AccountID: f.AccountID}))
}

func TestGroup_EmptyInput(t *testing.T) {
	views := ledger.Group(accounts.DefaultChart(), nil, ledger.GroupOptions{})
	require.NotNil(t, views)
	assert.Empty(t, views)

	assert.Empty(t, ledger.Group(nil, journal.DemoEntries(), ledger.GroupOptions{}))
}

func TestGroup_CategoryCoverage(t *testing.T) {
	chart := accounts.DefaultChart()
	entries := journal.DemoEntries()
	views := ledger.Group(chart, entries, ledger.GroupOptions{})

	byID := make(map[string]ledger.CategoryView)
	for _, v := range views {
		byID[v.ID] = v
	}
	for _, c := range chart {
		want := ledger.CategoryEntries(c, entries)
		if len(want) == 0 {
			assert.NotContains(t, byID, c.ID)
			continue
		}
		assert.Equal(t, len(want), byID[c.ID].EntryCount, "category %s", c.ID)
		for _, e := range entries {
			if e.TouchesAny(c.AccountIDs()) {
				assert.Contains(t, ids(want), e.EntryID)
			}
		}
	}
}

func TestGroup_UnknownColorFallsBack(t *testing.T) {
	chart := []model.Category{{
		ID:            "misc",
		Color:         "pink",
		Subcategories: []model.Subcategory{{ID: "s", Accounts: []model.Account{{AccountID: "1500"}}}},
	}}
	views := ledger.Group(chart, journal.DemoEntries(), ledger.GroupOptions{})
	require.Len(t, views, 1)
	assert.Equal(t, model.ColorSlate, views[0].Color)
}
