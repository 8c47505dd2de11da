package declaration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hkdtax/hkdtax/internal/shared"
)

func fixedClock() time.Time {
	return time.Date(2026, 7, 20, 10, 15, 0, 0, time.UTC)
}

func TestStartCreatesDraft(t *testing.T) {
	reg := NewRegistry(nil)
	record, err := reg.Start(context.Background(), "2026-Q2")
	require.NoError(t, err)

	assert.Equal(t, "DK-2026-Q2", record.ID)
	assert.Equal(t, shared.StatusDraft, record.Status)
	assert.Equal(t, KindDraft, record.Kind)
	assert.Equal(t, "Quý 2/2026", record.PeriodLabel)
	assert.Equal(t, "2026-07-30", record.Deadline)
	assert.Empty(t, record.SubmittedAt)
	assert.Zero(t, record.TotalTax)
}

func TestSubmitUpsertsByPeriod(t *testing.T) {
	reg := NewRegistry(nil)
	reg.WithNow(fixedClock)
	ctx := context.Background()

	_, err := reg.Start(ctx, "2026-Q2")
	require.NoError(t, err)

	first, err := reg.Submit(ctx, "2026-Q2", 2_150_000)
	require.NoError(t, err)
	assert.Equal(t, shared.StatusSubmitted, first.Status)
	assert.Equal(t, KindOfficial, first.Kind)
	assert.Equal(t, "2026-07-20", first.SubmittedAt)

	// Submitting again replaces the record, keeping the latest snapshot.
	second, err := reg.Submit(ctx, "2026-Q2", 3_000_000)
	require.NoError(t, err)
	assert.Equal(t, int64(3_000_000), second.TotalTax)

	records := reg.List()
	require.Len(t, records, 1)
	assert.Equal(t, int64(3_000_000), records[0].TotalTax)
}

func TestStartAfterSubmitFails(t *testing.T) {
	reg := NewRegistry(nil)
	ctx := context.Background()
	_, err := reg.Submit(ctx, "2026-Q1", 2_150_000)
	require.NoError(t, err)

	_, err = reg.Start(ctx, "2026-Q1")
	assert.ErrorIs(t, err, shared.ErrAlreadySubmitted)
}

func TestStartTwiceKeepsSingleDraft(t *testing.T) {
	reg := NewRegistry(nil)
	ctx := context.Background()
	_, err := reg.Start(ctx, "2026-Q3")
	require.NoError(t, err)
	_, err = reg.Start(ctx, "2026-Q3")
	require.NoError(t, err)
	assert.Len(t, reg.List(), 1)
}

func TestListOrdersByDeadlineDescending(t *testing.T) {
	reg := NewRegistry(nil)
	ctx := context.Background()
	_, err := reg.Submit(ctx, "2026-Q1", 2_150_000)
	require.NoError(t, err)
	_, err = reg.Start(ctx, "2026-Q2")
	require.NoError(t, err)

	records := reg.List()
	require.Len(t, records, 2)
	assert.Equal(t, "DK-2026-Q2", records[0].ID)
	assert.Equal(t, "DK-2026-Q1", records[1].ID)
}

func TestRegistryRejectsBadPeriods(t *testing.T) {
	reg := NewRegistry(nil)
	ctx := context.Background()
	_, err := reg.Start(ctx, "Q2-2026")
	assert.ErrorIs(t, err, shared.ErrInvalidPeriod)
	_, err = reg.Submit(ctx, "2026-Q9", 0)
	assert.ErrorIs(t, err, shared.ErrInvalidPeriod)
	_, err = reg.Get("bogus")
	assert.ErrorIs(t, err, shared.ErrInvalidPeriod)
}

func TestGetReturnsNotFound(t *testing.T) {
	reg := NewRegistry(nil)
	_, err := reg.Get("2026-Q4")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
