package jobs

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hkdtax/hkdtax/internal/ledger"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleInvoiceScanInsertsRevenueEntry(t *testing.T) {
	store := ledger.NewStore(nil)
	task, err := NewInvoiceScanTask(InvoiceScanPayload{
		InvoiceNo: "INV-042",
		Partner:   "Cửa hàng AI",
		Date:      "2026-07-25",
		Amount:    450_000,
	})
	require.NoError(t, err)

	handler := HandleInvoiceScan(store, discardLogger())
	require.NoError(t, handler(context.Background(), task))

	entries := store.ListS1()
	require.Len(t, entries, 1)
	assert.Equal(t, "INV-042", entries[0].InvoiceNo)
	assert.Equal(t, int64(450_000), entries[0].Rev010)
	assert.Equal(t, int64(450_000), entries[0].Total())
}

func TestHandleTaxOfficeSyncInsertsTaxPayment(t *testing.T) {
	store := ledger.NewStore(nil)
	task, err := NewTaxOfficeSyncTask(TaxOfficeSyncPayload{Period: "2026-Q1"})
	require.NoError(t, err)

	handler := HandleTaxOfficeSync(store, discardLogger())
	require.NoError(t, handler(context.Background(), task))

	entries := store.ListS4()
	require.Len(t, entries, 1)
	assert.Equal(t, "GTGT", entries[0].TaxType)
	assert.Equal(t, int64(1_500_000), entries[0].Paid)
}

func TestHandlersSkipRetryOnGarbagePayload(t *testing.T) {
	store := ledger.NewStore(nil)
	task := asynq.NewTask(TaskInvoiceScan, []byte("{not json"))

	err := HandleInvoiceScan(store, discardLogger())(context.Background(), task)
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Equal(t, 0, store.Count(ledger.BookS1))
}
