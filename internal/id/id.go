package id

import (
	"fmt"
	"strconv"
	"strings"
)

// Prefix starts every voucher number.
const Prefix = "B"

// FormatEntryID returns a voucher number like "B-2024-001".
func FormatEntryID(year, seq int) string {
	return fmt.Sprintf("%s-%04d-%03d", Prefix, year, seq)
}

// ParseEntryID parses "B-2024-001" into year and sequence.
func ParseEntryID(id string) (year, seq int, err error) {
	parts := strings.SplitN(id, "-", 3)
	if len(parts) != 3 || parts[0] != Prefix {
		return 0, 0, fmt.Errorf("invalid entry ID format: %q", id)
	}

	year, err = strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 4 {
		return 0, 0, fmt.Errorf("invalid year in entry ID %q", id)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil || seq <= 0 {
		return 0, 0, fmt.Errorf("invalid sequence in entry ID %q", id)
	}

	return year, seq, nil
}

// NextEntryID returns the voucher number following the highest sequence
// used for year among existing. Malformed IDs are ignored.
func NextEntryID(existing []string, year int) string {
	maxSeq := 0
	for _, e := range existing {
		y, seq, err := ParseEntryID(e)
		if err != nil || y != year {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return FormatEntryID(year, maxSeq+1)
}
