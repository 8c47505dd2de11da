package declaration

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hkdtax/hkdtax/internal/platform/events"
	"github.com/hkdtax/hkdtax/internal/shared"
)

// Registry keeps at most one declaration record per period id. Submitting is
// an upsert keyed by period; last writer wins.
type Registry struct {
	mu      sync.Mutex
	records map[string]Record
	events  events.Publisher
	now     func() time.Time
}

// NewRegistry constructs an empty Registry. A nil publisher disables events.
func NewRegistry(pub events.Publisher) *Registry {
	if pub == nil {
		pub = events.Noop{}
	}
	return &Registry{
		records: make(map[string]Record),
		events:  pub,
		now:     time.Now,
	}
}

// WithNow overrides the registry clock for testing.
func (r *Registry) WithNow(fn func() time.Time) {
	if fn != nil {
		r.now = fn
	}
}

// Start opens a draft declaration for the period. Starting an already
// submitted period fails: the lifecycle is one-way.
func (r *Registry) Start(ctx context.Context, periodCode string) (Record, error) {
	period, err := shared.ParsePeriod(periodCode)
	if err != nil {
		return Record{}, err
	}

	r.mu.Lock()
	id := period.RecordID()
	if existing, ok := r.records[id]; ok && existing.Status == shared.StatusSubmitted {
		r.mu.Unlock()
		return existing, shared.ErrAlreadySubmitted
	}
	record := Record{
		ID:          id,
		Period:      period.Code(),
		PeriodLabel: period.Display(),
		Kind:        KindDraft,
		Status:      shared.StatusDraft,
		Deadline:    period.Deadline().Format("2006-01-02"),
	}
	r.records[id] = record
	r.mu.Unlock()

	_ = r.events.Publish(ctx, events.Event{
		Type:   events.TypeDeclarationStarted,
		ID:     id,
		Period: period.Code(),
	})
	return record, nil
}

// Submit snapshots the given total tax for the period, stamps the submission
// date and replaces any prior record for the same period.
func (r *Registry) Submit(ctx context.Context, periodCode string, totalTax int64) (Record, error) {
	period, err := shared.ParsePeriod(periodCode)
	if err != nil {
		return Record{}, err
	}

	r.mu.Lock()
	id := period.RecordID()
	record := Record{
		ID:          id,
		Period:      period.Code(),
		PeriodLabel: period.Display(),
		Kind:        KindOfficial,
		Status:      shared.StatusSubmitted,
		SubmittedAt: r.now().UTC().Format("2006-01-02"),
		TotalTax:    totalTax,
		Deadline:    period.Deadline().Format("2006-01-02"),
	}
	r.records[id] = record
	r.mu.Unlock()

	_ = r.events.Publish(ctx, events.Event{
		Type:   events.TypeDeclarationSubmitted,
		ID:     id,
		Period: period.Code(),
	})
	return record, nil
}

// Get looks a record up by period code.
func (r *Registry) Get(periodCode string) (Record, error) {
	period, err := shared.ParsePeriod(periodCode)
	if err != nil {
		return Record{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[period.RecordID()]
	if !ok {
		return Record{}, shared.ErrNotFound
	}
	return record, nil
}

// List returns all records, most recent deadline first.
func (r *Registry) List() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Deadline > out[j].Deadline })
	return out
}
