package declaration

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hkdtax/hkdtax/internal/ledger"
	"github.com/hkdtax/hkdtax/internal/platform/httpx"
)

// Handler wires HTTP endpoints for declaration summaries and records.
type Handler struct {
	logger   *slog.Logger
	store    *ledger.Store
	registry *Registry
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, store *ledger.Store, registry *Registry) *Handler {
	return &Handler{logger: logger, store: store, registry: registry}
}

// MountRoutes registers declaration routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/declaration/summary", h.getSummary)
	r.Get("/declaration/warnings", h.getWarnings)
	r.Get("/declarations", h.listRecords)
	r.Post("/declarations/{period}/start", h.startDeclaration)
	r.Post("/declarations/{period}/submit", h.submitDeclaration)
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, Summarize(h.store.ListS1()))
}

func (h *Handler) getWarnings(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, Check(Summarize(h.store.ListS1())))
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.registry.List())
}

func (h *Handler) startDeclaration(w http.ResponseWriter, r *http.Request) {
	record, err := h.registry.Start(r.Context(), chi.URLParam(r, "period"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("declaration started", slog.String("period", record.Period))
	httpx.JSON(w, http.StatusCreated, record)
}

func (h *Handler) submitDeclaration(w http.ResponseWriter, r *http.Request) {
	// Snapshot the tax liability as of submission.
	summary := Summarize(h.store.ListS1())
	record, err := h.registry.Submit(r.Context(), chi.URLParam(r, "period"), summary.TotalTax)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("declaration submitted",
		slog.String("period", record.Period),
		slog.Int64("total_tax", record.TotalTax))
	httpx.JSON(w, http.StatusOK, record)
}
