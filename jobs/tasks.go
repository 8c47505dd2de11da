// Package jobs runs the simulated external collaborators (tax-office sync,
// invoice OCR) as queued tasks. Their only effect on the engine is inserting
// ledger entries; the engine itself never waits on them.
package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/hkdtax/hkdtax/internal/ledger"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTaxOfficeSync simulates pulling paid-tax receipts from the tax office.
	TaskTaxOfficeSync = "integration:tax_office_sync"
	// TaskInvoiceScan simulates OCR of a paper invoice.
	TaskInvoiceScan = "invoice:scan"
)

// TaxOfficeSyncPayload asks for the period to reconcile.
type TaxOfficeSyncPayload struct {
	Period string `json:"period"`
}

// InvoiceScanPayload carries the scanned invoice figures.
type InvoiceScanPayload struct {
	InvoiceNo string `json:"invoiceNo"`
	Partner   string `json:"partner"`
	Date      string `json:"date"`
	Amount    int64  `json:"amount"`
}

// NewTaxOfficeSyncTask constructs an Asynq task.
func NewTaxOfficeSyncTask(payload TaxOfficeSyncPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTaxOfficeSync, data), nil
}

// NewInvoiceScanTask constructs an Asynq task.
func NewInvoiceScanTask(payload InvoiceScanPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskInvoiceScan, data), nil
}

// HandleTaxOfficeSync returns the handler for TaskTaxOfficeSync. The mock tax
// office reports one GTGT receipt which lands in the S4 book.
func HandleTaxOfficeSync(store *ledger.Store, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload TaxOfficeSyncPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
		id, err := store.Add(ctx, ledger.S4TaxPaymentEntry{
			Date:        time.Now().UTC().Format("2006-01-02"),
			DocNo:       "NT-SYNC",
			Description: "Đồng bộ biên lai nộp thuế " + payload.Period,
			TaxType:     "GTGT",
			Paid:        1_500_000,
		})
		if err != nil {
			return err
		}
		logger.Info("tax office sync applied",
			slog.String("period", payload.Period),
			slog.String("entry_id", id))
		return nil
	}
}

// HandleInvoiceScan returns the handler for TaskInvoiceScan. The recognised
// invoice is recorded as goods-distribution revenue in the S1 book.
func HandleInvoiceScan(store *ledger.Store, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload InvoiceScanPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
		date := payload.Date
		if date == "" {
			date = time.Now().UTC().Format("2006-01-02")
		}
		id, err := store.Add(ctx, ledger.S1RevenueEntry{
			Date:        date,
			InvoiceNo:   payload.InvoiceNo,
			InvoiceDate: date,
			Description: "Hóa đơn quét từ " + payload.Partner,
			Rev010:      payload.Amount,
		})
		if err != nil {
			return err
		}
		logger.Info("invoice scan applied",
			slog.String("invoice", payload.InvoiceNo),
			slog.String("entry_id", id))
		return nil
	}
}
