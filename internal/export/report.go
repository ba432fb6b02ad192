package export

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/ledger"
	"github.com/cleared-dev/ledger/internal/model"
)

// Report is a view plus the heading printed above it.
type Report struct {
	Business    string
	Period      ledger.Period
	GeneratedAt time.Time
	View        ledger.View
}

// PeriodLabel renders the period as "2024", "2024-02", "any-02" (that month
// in every year) or "all".
func (r Report) PeriodLabel() string {
	switch {
	case r.Period.Year == 0 && r.Period.Month == 0:
		return "all"
	case r.Period.Year == 0:
		return fmt.Sprintf("any-%02d", r.Period.Month)
	case r.Period.Month == 0:
		return fmt.Sprintf("%04d", r.Period.Year)
	default:
		return fmt.Sprintf("%04d-%02d", r.Period.Year, r.Period.Month)
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func sideAmount(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return money(d.Decimal)
}

func crossedMark(e model.JournalEntry) string {
	if e.IsCrossed {
		return "x"
	}
	return ""
}
