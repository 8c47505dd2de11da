package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/hkdtax/hkdtax/internal/platform/events"
)

// Store owns all book entries. Mutations are guarded so that derived reads
// never observe a partially applied add or delete. Entries keep insertion
// order: it represents the chronological recording order.
type Store struct {
	mu       sync.RWMutex
	validate *validator.Validate
	events   events.Publisher

	s1 []S1RevenueEntry
	s2 []S2InventoryEntry
	s3 []S3CostEntry
	s4 []S4TaxPaymentEntry
	s5 []S5PayrollEntry
	s6 []S6CashEntry
	s7 []S7BankEntry
}

// NewStore constructs an empty Store. A nil publisher disables events.
func NewStore(pub events.Publisher) *Store {
	if pub == nil {
		pub = events.Noop{}
	}
	return &Store{
		validate: validator.New(),
		events:   pub,
	}
}

// Add validates the entry, assigns a fresh id and appends it to its book.
// Caller-supplied ids are ignored; derived fields are never accepted at all,
// the entry types simply do not carry them.
func (s *Store) Add(ctx context.Context, entry Entry) (string, error) {
	if err := s.validate.Struct(entry); err != nil {
		return "", fmt.Errorf("%s entry invalid: %w", entry.Book(), err)
	}

	id := uuid.NewString()

	s.mu.Lock()
	switch e := entry.(type) {
	case S1RevenueEntry:
		e.ID = id
		s.s1 = append(s.s1, e)
	case S2InventoryEntry:
		e.ID = id
		s.s2 = append(s.s2, e)
	case S3CostEntry:
		e.ID = id
		s.s3 = append(s.s3, e)
	case S4TaxPaymentEntry:
		e.ID = id
		s.s4 = append(s.s4, e)
	case S5PayrollEntry:
		e.ID = id
		s.s5 = append(s.s5, e)
	case S6CashEntry:
		e.ID = id
		s.s6 = append(s.s6, e)
	case S7BankEntry:
		e.ID = id
		s.s7 = append(s.s7, e)
	default:
		s.mu.Unlock()
		return "", fmt.Errorf("unsupported entry type %T", entry)
	}
	s.mu.Unlock()

	_ = s.events.Publish(ctx, events.Event{
		Type: events.TypeEntryAdded,
		Book: string(entry.Book()),
		ID:   id,
	})
	return id, nil
}

// Delete removes an entry by id. Deleting an absent id is a no-op and
// reports false; it never fails.
func (s *Store) Delete(ctx context.Context, book BookID, id string) bool {
	s.mu.Lock()
	removed := false
	switch book {
	case BookS1:
		s.s1, removed = deleteByID(s.s1, id)
	case BookS2:
		s.s2, removed = deleteByID(s.s2, id)
	case BookS3:
		s.s3, removed = deleteByID(s.s3, id)
	case BookS4:
		s.s4, removed = deleteByID(s.s4, id)
	case BookS5:
		s.s5, removed = deleteByID(s.s5, id)
	case BookS6:
		s.s6, removed = deleteByID(s.s6, id)
	case BookS7:
		s.s7, removed = deleteByID(s.s7, id)
	}
	s.mu.Unlock()

	if removed {
		_ = s.events.Publish(ctx, events.Event{
			Type: events.TypeEntryDeleted,
			Book: string(book),
			ID:   id,
		})
	}
	return removed
}

func deleteByID[E Entry](entries []E, id string) ([]E, bool) {
	for i, e := range entries {
		if e.entryID() == id {
			return append(entries[:i:i], entries[i+1:]...), true
		}
	}
	return entries, false
}

// ListS1 returns a copy of the revenue book in insertion order.
func (s *Store) ListS1() []S1RevenueEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.s1)
}

// ListS2 returns a copy of the inventory book in insertion order.
func (s *Store) ListS2() []S2InventoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.s2)
}

// ListS3 returns a copy of the cost book in insertion order.
func (s *Store) ListS3() []S3CostEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.s3)
}

// ListS4 returns a copy of the tax-payment book in insertion order.
func (s *Store) ListS4() []S4TaxPaymentEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.s4)
}

// ListS5 returns a copy of the payroll book in insertion order.
func (s *Store) ListS5() []S5PayrollEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.s5)
}

// ListS6 returns a copy of the cash book in insertion order.
func (s *Store) ListS6() []S6CashEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.s6)
}

// ListS7 returns a copy of the bank book in insertion order.
func (s *Store) ListS7() []S7BankEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.s7)
}

// Count reports how many entries a book holds.
func (s *Store) Count(book BookID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch book {
	case BookS1:
		return len(s.s1)
	case BookS2:
		return len(s.s2)
	case BookS3:
		return len(s.s3)
	case BookS4:
		return len(s.s4)
	case BookS5:
		return len(s.s5)
	case BookS6:
		return len(s.s6)
	case BookS7:
		return len(s.s7)
	}
	return 0
}

func copySlice[E any](in []E) []E {
	out := make([]E, len(in))
	copy(out, in)
	return out
}
