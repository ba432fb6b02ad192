package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatParse(t *testing.T) {
	cases := map[string]struct{ year, seq int }{
		"B-2024-001":  {2024, 1},
		"B-2024-099":  {2024, 99},
		"B-2025-1234": {2025, 1234},
	}
	for voucher, c := range cases {
		assert.Equal(t, voucher, FormatEntryID(c.year, c.seq))

		year, seq, err := ParseEntryID(voucher)
		require.NoError(t, err, voucher)
		assert.Equal(t, c.year, year, voucher)
		assert.Equal(t, c.seq, seq, voucher)
	}
}

func TestParseEntryID_Rejects(t *testing.T) {
	for _, voucher := range []string{"", "B-2024", "X-2024-001", "B-24-001", "B-2024-000", "B-2024-abc", "B-2024--1"} {
		_, _, err := ParseEntryID(voucher)
		assert.Error(t, err, voucher)
	}
}

func TestNextEntryID(t *testing.T) {
	used := []string{"B-2024-001", "B-2024-004", "B-2023-010", "garbage"}

	assert.Equal(t, "B-2024-005", NextEntryID(used, 2024))
	assert.Equal(t, "B-2023-011", NextEntryID(used, 2023))
	assert.Equal(t, "B-2025-001", NextEntryID(used, 2025))
	assert.Equal(t, "B-2025-001", NextEntryID(nil, 2025))
}
