package jobs

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"

	"github.com/hkdtax/hkdtax/internal/platform/httpx"
)

// Simulated round-trip latency before a queued collaborator reports back.
const simulatedDelay = 2 * time.Second

// Handler exposes enqueue endpoints for the simulated integrations.
type Handler struct {
	logger *slog.Logger
	client *asynq.Client
}

// NewHandler constructs a Handler. A nil client means the queue is down;
// requests are then answered with 503.
func NewHandler(logger *slog.Logger, client *asynq.Client) *Handler {
	return &Handler{logger: logger, client: client}
}

// MountRoutes registers integration routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/integration/tax-office/sync", h.syncTaxOffice)
	r.Post("/invoices/scan", h.scanInvoice)
}

func (h *Handler) enqueue(w http.ResponseWriter, task *asynq.Task) {
	if h.client == nil {
		httpx.Problem(w, http.StatusServiceUnavailable, "Queue Unavailable", "background queue is not connected")
		return
	}
	info, err := h.client.Enqueue(task, asynq.Queue(QueueDefault), asynq.ProcessIn(simulatedDelay))
	if err != nil {
		h.logger.Error("enqueue task", slog.String("type", task.Type()), slog.Any("error", err))
		httpx.Problem(w, http.StatusServiceUnavailable, "Queue Unavailable", "could not enqueue task")
		return
	}
	httpx.JSON(w, http.StatusAccepted, map[string]string{"taskId": info.ID, "state": info.State.String()})
}

func (h *Handler) syncTaxOffice(w http.ResponseWriter, r *http.Request) {
	var payload TaxOfficeSyncPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed sync payload")
		return
	}
	task, err := NewTaxOfficeSyncTask(payload)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.enqueue(w, task)
}

func (h *Handler) scanInvoice(w http.ResponseWriter, r *http.Request) {
	var payload InvoiceScanPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed scan payload")
		return
	}
	task, err := NewInvoiceScanTask(payload)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.enqueue(w, task)
}
