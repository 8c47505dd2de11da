package ledger

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hkdtax/hkdtax/internal/platform/httpx"
)

// Handler wires HTTP endpoints for the accounting books.
type Handler struct {
	logger *slog.Logger
	store  *Store
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, store *Store) *Handler {
	return &Handler{logger: logger, store: store}
}

// MountRoutes registers book routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/books/{bookID}", func(r chi.Router) {
		r.Get("/", h.listEntries)
		r.Post("/", h.addEntry)
		r.Get("/export", h.exportCSV)
		r.Delete("/{entryID}", h.deleteEntry)
	})
}

// Listing rows render derived fields next to the raw ones so the UI never
// recomputes totals itself.

type s1Row struct {
	S1RevenueEntry
	Total int64 `json:"total"`
}

type s2Row struct {
	S2InventoryEntry
	InTotal    int64 `json:"inTotal"`
	OutTotal   int64 `json:"outTotal"`
	StockTotal int64 `json:"stockTotal"`
}

type s3Row struct {
	S3CostEntry
	Total int64 `json:"total"`
}

type s4Row struct {
	S4TaxPaymentEntry
	Balance int64 `json:"balance"`
}

type s5Row struct {
	S5PayrollEntry
	Net int64 `json:"net"`
}

type s6Row struct {
	S6CashEntry
	Balance int64 `json:"balance"`
}

type s7Row struct {
	S7BankEntry
	Balance int64 `json:"balance"`
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	book, err := ParseBookID(chi.URLParam(r, "bookID"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, h.bookRows(book))
}

func (h *Handler) bookRows(book BookID) any {
	switch book {
	case BookS1:
		entries := h.store.ListS1()
		rows := make([]s1Row, len(entries))
		for i, e := range entries {
			rows[i] = s1Row{S1RevenueEntry: e, Total: e.Total()}
		}
		return rows
	case BookS2:
		entries := h.store.ListS2()
		rows := make([]s2Row, len(entries))
		for i, e := range entries {
			rows[i] = s2Row{S2InventoryEntry: e, InTotal: e.InTotal(), OutTotal: e.OutTotal(), StockTotal: e.StockTotal()}
		}
		return rows
	case BookS3:
		entries := h.store.ListS3()
		rows := make([]s3Row, len(entries))
		for i, e := range entries {
			rows[i] = s3Row{S3CostEntry: e, Total: e.Total()}
		}
		return rows
	case BookS4:
		entries := h.store.ListS4()
		rows := make([]s4Row, len(entries))
		for i, e := range entries {
			rows[i] = s4Row{S4TaxPaymentEntry: e, Balance: e.Balance()}
		}
		return rows
	case BookS5:
		entries := h.store.ListS5()
		rows := make([]s5Row, len(entries))
		for i, e := range entries {
			rows[i] = s5Row{S5PayrollEntry: e, Net: e.Net()}
		}
		return rows
	case BookS6:
		entries := h.store.ListS6()
		balances := CashBalances(entries)
		rows := make([]s6Row, len(entries))
		for i, e := range entries {
			rows[i] = s6Row{S6CashEntry: e, Balance: balances[i]}
		}
		return rows
	case BookS7:
		entries := h.store.ListS7()
		balances := BankBalances(entries)
		rows := make([]s7Row, len(entries))
		for i, e := range entries {
			rows[i] = s7Row{S7BankEntry: e, Balance: balances[i]}
		}
		return rows
	}
	return nil
}

func (h *Handler) addEntry(w http.ResponseWriter, r *http.Request) {
	book, err := ParseBookID(chi.URLParam(r, "bookID"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	entry, err := decodeEntry(book, r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed entry payload")
		return
	}

	id, err := h.store.Add(r.Context(), entry)
	if err != nil {
		h.logger.Warn("entry rejected", slog.String("book", string(book)), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("entry added", slog.String("book", string(book)), slog.String("id", id))
	httpx.JSON(w, http.StatusCreated, map[string]string{"id": id})
}

// decodeEntry dispatches the request body to the typed schema of the book.
func decodeEntry(book BookID, r *http.Request) (Entry, error) {
	switch book {
	case BookS1:
		var e S1RevenueEntry
		err := httpx.DecodeJSON(r, &e)
		return e, err
	case BookS2:
		var e S2InventoryEntry
		err := httpx.DecodeJSON(r, &e)
		return e, err
	case BookS3:
		var e S3CostEntry
		err := httpx.DecodeJSON(r, &e)
		return e, err
	case BookS4:
		var e S4TaxPaymentEntry
		err := httpx.DecodeJSON(r, &e)
		return e, err
	case BookS5:
		var e S5PayrollEntry
		err := httpx.DecodeJSON(r, &e)
		return e, err
	case BookS6:
		var e S6CashEntry
		err := httpx.DecodeJSON(r, &e)
		return e, err
	default:
		var e S7BankEntry
		err := httpx.DecodeJSON(r, &e)
		return e, err
	}
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	book, err := ParseBookID(chi.URLParam(r, "bookID"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	deleted := h.store.Delete(r.Context(), book, chi.URLParam(r, "entryID"))
	httpx.JSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}
