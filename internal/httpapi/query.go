package httpapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cleared-dev/ledger/internal/ledger"
	"github.com/cleared-dev/ledger/internal/model"
)

const dateParam = "2006-01-02"

// parseQuery maps ledger query parameters onto a ledger.Query. defaultYear
// applies when the caller sends no year; year=all selects every year.
func parseQuery(v url.Values, defaultYear int) (ledger.Query, error) {
	var q ledger.Query
	f := &q.Filter

	switch y := strings.TrimSpace(v.Get("year")); y {
	case "":
		f.Period.Year = defaultYear
	case "all":
	default:
		year, err := strconv.Atoi(y)
		if err != nil {
			return q, fmt.Errorf("invalid year %q", y)
		}
		f.Period.Year = year
	}

	if m := strings.TrimSpace(v.Get("month")); m != "" {
		month, err := strconv.Atoi(m)
		if err != nil {
			return q, fmt.Errorf("invalid month %q", m)
		}
		f.Period.Month = month
	}

	// Unknown types and months outside 1-12 are kept as given and match nothing.
	if et := v.Get("entry_type"); et != "" {
		f.EntryType, _ = model.ParseEntryType(et)
	}

	f.AccountID = v.Get("account_id")
	f.ProjectID = v.Get("project_id")
	f.Search = v.Get("q")

	if c := v.Get("crossing"); c != "" {
		enabled, err := strconv.ParseBool(c)
		if err != nil {
			return q, fmt.Errorf("invalid crossing %q", c)
		}
		f.CrossingEnabled = enabled
	}
	mode, err := ledger.ParseCrossingMode(v.Get("mode"))
	if err != nil {
		return q, err
	}
	f.CrossingMode = mode

	if f.From, err = parseDate("from", v.Get("from")); err != nil {
		return q, err
	}
	if f.To, err = parseDate("to", v.Get("to")); err != nil {
		return q, err
	}

	q.Sort, err = ledger.ParseSortOptions(v.Get("sort"), v.Get("dir"))
	if err != nil {
		return q, err
	}
	return q, nil
}

func parseDate(name, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateParam, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q", name, s)
	}
	return t, nil
}
