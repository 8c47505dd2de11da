package shared

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Declaration record statuses reused outside the declaration module.
const (
	StatusDraft     = "Draft"
	StatusSubmitted = "Submitted"
)

// Period identifies one quarterly declaration interval, e.g. "2026-Q2".
type Period struct {
	Year    int
	Quarter int
}

// ParsePeriod parses a "<year>-Q<quarter>" period code.
func ParsePeriod(code string) (Period, error) {
	parts := strings.SplitN(strings.TrimSpace(code), "-Q", 2)
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, code)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 2000 || year > 2999 {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, code)
	}
	quarter, err := strconv.Atoi(parts[1])
	if err != nil || quarter < 1 || quarter > 4 {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, code)
	}
	return Period{Year: year, Quarter: quarter}, nil
}

// Code renders the canonical period code, e.g. "2026-Q2".
func (p Period) Code() string {
	return fmt.Sprintf("%d-Q%d", p.Year, p.Quarter)
}

// RecordID derives the declaration record identifier, e.g. "DK-2026-Q2".
func (p Period) RecordID() string {
	return fmt.Sprintf("DK-%d-Q%d", p.Year, p.Quarter)
}

// Display renders the Vietnamese display label, e.g. "Quý 2/2026".
func (p Period) Display() string {
	return fmt.Sprintf("Quý %d/%d", p.Quarter, p.Year)
}

// End returns the last calendar day of the quarter.
func (p Period) End() time.Time {
	firstOfNext := time.Date(p.Year, time.Month(p.Quarter*3)+1, 1, 0, 0, 0, 0, time.UTC)
	return firstOfNext.AddDate(0, 0, -1)
}

// Deadline returns the filing deadline: 30 days after quarter end.
func (p Period) Deadline() time.Time {
	return p.End().AddDate(0, 0, 30)
}
