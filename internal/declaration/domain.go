// Package declaration derives the quarterly presumptive-tax declaration from
// the revenue book and tracks declaration records per period.
package declaration

// Summary is the declaration figure set derived from the current S1 entries.
// It is recomputed on every read and never persisted, so it cannot go stale.
type Summary struct {
	Rev010       int64 `json:"rev010"`
	Rev020       int64 `json:"rev020"`
	Rev030       int64 `json:"rev030"`
	Rev040       int64 `json:"rev040"`
	TotalRevenue int64 `json:"totalRevenue"`
	VAT          int64 `json:"vat"`
	PIT          int64 `json:"pit"`
	TotalTax     int64 `json:"totalTax"`
}

// Severity grades an advisory warning.
type Severity string

// Warning severities.
const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Warning is one advisory check result over a Summary. Ephemeral; a fresh
// list is produced on every call.
type Warning struct {
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

// Record kinds shown on declaration listings.
const (
	KindDraft    = "Tờ khai nháp"
	KindOfficial = "Tờ khai chính thức"
)

// Record tracks one declaration per period. Lifecycle is one-way:
// Draft -> Submitted, no reopening.
type Record struct {
	ID          string `json:"id"`
	Period      string `json:"period"`
	PeriodLabel string `json:"periodLabel"`
	Kind        string `json:"kind"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submittedAt,omitempty"`
	TotalTax    int64  `json:"totalTax"`
	Deadline    string `json:"deadline"`
}
