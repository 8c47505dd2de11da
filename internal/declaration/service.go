package declaration

import (
	"fmt"

	"github.com/hkdtax/hkdtax/internal/ledger"
	"github.com/hkdtax/hkdtax/internal/shared"
	"github.com/hkdtax/hkdtax/internal/tax"
)

// Advisory thresholds, in đồng.
const (
	lowRevenueThreshold = 10_000_000
	highTaxThreshold    = 5_000_000
)

// Summarize derives the declaration summary from a revenue-book snapshot.
// Pure: the same snapshot always yields the same summary.
func Summarize(entries []ledger.S1RevenueEntry) Summary {
	var s Summary
	for _, e := range entries {
		s.Rev010 += e.Rev010
		s.Rev020 += e.Rev020
		s.Rev030 += e.Rev030
		s.Rev040 += e.Rev040
	}

	sectors := tax.Sectors()
	revenues := []int64{s.Rev010, s.Rev020, s.Rev030, s.Rev040}
	for i, sector := range sectors {
		s.VAT += sector.VAT(revenues[i])
		s.PIT += sector.PIT(revenues[i])
	}

	s.TotalRevenue = s.Rev010 + s.Rev020 + s.Rev030 + s.Rev040
	s.TotalTax = s.VAT + s.PIT
	return s
}

// Check runs the advisory rules over a summary. Rules are independent, both
// may fire, and they are emitted in a fixed order: low revenue first, high
// tax second.
func Check(s Summary) []Warning {
	warnings := make([]Warning, 0, 2)
	if s.TotalRevenue < lowRevenueThreshold {
		warnings = append(warnings, Warning{
			Severity: SeverityInfo,
			Title:    "Doanh thu thấp hơn dự kiến",
			Description: fmt.Sprintf(
				"Doanh thu kê khai %s thấp hơn mức trung bình của các kỳ trước. Vui lòng kiểm tra lại sổ S1.",
				shared.FormatVND(s.TotalRevenue)),
		})
	}
	if s.TotalTax > highTaxThreshold {
		warnings = append(warnings, Warning{
			Severity: SeverityWarning,
			Title:    "Nghĩa vụ thuế cao",
			Description: fmt.Sprintf(
				"Số thuế phải nộp %s cao bất thường. Đảm bảo rằng tất cả chi phí hợp lệ đã được ghi nhận.",
				shared.FormatVND(s.TotalTax)),
		})
	}
	return warnings
}
