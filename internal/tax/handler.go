package tax

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hkdtax/hkdtax/internal/platform/httpx"
)

// Handler wires HTTP endpoints for the standalone tax tools.
type Handler struct {
	logger *slog.Logger
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// MountRoutes registers tool routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/sectors", h.listSectors)
	r.Post("/tools/quick-calc", h.quickCalc)
	r.Post("/tools/penalty", h.penalty)
}

func (h *Handler) listSectors(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, Sectors())
}

func (h *Handler) quickCalc(w http.ResponseWriter, r *http.Request) {
	var in QuickCalcInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed quick-calc payload")
		return
	}
	result, err := QuickCalc(in)
	if err != nil {
		h.logger.Warn("quick calc rejected", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) penalty(w http.ResponseWriter, r *http.Request) {
	var in PenaltyInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed penalty payload")
		return
	}
	result, err := Penalty(in)
	if err != nil {
		h.logger.Warn("penalty calc rejected", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}
