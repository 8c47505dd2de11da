package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("2026-Q2")
	require.NoError(t, err)
	assert.Equal(t, 2026, p.Year)
	assert.Equal(t, 2, p.Quarter)
	assert.Equal(t, "DK-2026-Q2", p.RecordID())
	assert.Equal(t, "Quý 2/2026", p.Display())
}

func TestParsePeriodRejectsMalformed(t *testing.T) {
	for _, code := range []string{"", "2026", "2026-Q5", "2026-Q0", "abcd-Q1", "2026-QX"} {
		_, err := ParsePeriod(code)
		assert.ErrorIs(t, err, ErrInvalidPeriod, code)
	}
}

func TestPeriodDeadline(t *testing.T) {
	q1, err := ParsePeriod("2026-Q1")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), q1.End())
	assert.Equal(t, time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC), q1.Deadline())

	q2, err := ParsePeriod("2026-Q2")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC), q2.Deadline())

	q4, err := ParsePeriod("2026-Q4")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2027, 1, 30, 0, 0, 0, 0, time.UTC), q4.Deadline())
}

func TestFormatVND(t *testing.T) {
	formatted := FormatVND(9000000)
	assert.Contains(t, formatted, "₫")
	assert.Equal(t, "9.000.000 ₫", formatted)
	assert.Equal(t, "0 ₫", FormatVND(0))
}
