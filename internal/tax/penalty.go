package tax

import (
	"fmt"
	"time"
)

// Late-filing outcome levels.
const (
	LevelOnTime  = "Đúng hạn"
	LevelLate    = "Vi phạm chậm nộp"
	LevelMaximum = "Mức phạt cao nhất"
)

// Daily late-payment interest: 0.03%/day, simple, not compounded.
const lateInterestBpPerDay = 3

// PenaltyInput describes an overdue (or on-time) filing. Dates are ISO-8601
// calendar dates with no time-of-day component.
type PenaltyInput struct {
	DueDate    string `json:"dueDate" validate:"required,datetime=2006-01-02"`
	SubmitDate string `json:"submitDate" validate:"required,datetime=2006-01-02"`
	TaxAmount  int64  `json:"taxAmount" validate:"min=0"`
}

// PenaltyResult is the fine and interest breakdown for a late filing.
type PenaltyResult struct {
	DaysLate     int    `json:"daysLate"`
	Fine         int64  `json:"fine"`
	LateInterest int64  `json:"lateInterest"`
	Total        int64  `json:"total"`
	Level        string `json:"level"`
}

// fineTiers are evaluated in ascending order of MaxDays; first match wins.
type fineTier struct {
	MaxDays int
	Fine    int64
}

var fineTiers = []fineTier{
	{MaxDays: 30, Fine: 3_500_000},
	{MaxDays: 60, Fine: 6_500_000},
	{MaxDays: 90, Fine: 11_500_000},
}

const maxFine = 20_000_000

// Penalty computes days late, the fixed-tier fine and daily interest on the
// overdue tax. Submitting on or before the due date is on time.
func Penalty(in PenaltyInput) (PenaltyResult, error) {
	if err := validate.Struct(in); err != nil {
		return PenaltyResult{}, err
	}
	due, err := time.Parse("2006-01-02", in.DueDate)
	if err != nil {
		return PenaltyResult{}, fmt.Errorf("due date: %w", err)
	}
	submit, err := time.Parse("2006-01-02", in.SubmitDate)
	if err != nil {
		return PenaltyResult{}, fmt.Errorf("submit date: %w", err)
	}

	daysLate := int(submit.Sub(due) / (24 * time.Hour))
	if daysLate <= 0 {
		return PenaltyResult{Level: LevelOnTime}, nil
	}

	var fine int64 = maxFine
	level := LevelMaximum
	for _, tier := range fineTiers {
		if daysLate <= tier.MaxDays {
			fine = tier.Fine
			level = LevelLate
			break
		}
	}

	interest := in.TaxAmount * int64(daysLate) * lateInterestBpPerDay / rateScale

	return PenaltyResult{
		DaysLate:     daysLate,
		Fine:         fine,
		LateInterest: interest,
		Total:        fine + interest,
		Level:        level,
	}, nil
}
