package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*Store, http.Handler) {
	t.Helper()
	store := NewStore(nil)
	r := chi.NewRouter()
	NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), store).MountRoutes(r)
	return store, r
}

func TestAddEntryEndpoint(t *testing.T) {
	store, router := newTestHandler(t)

	body := `{"date":"2026-07-01","invoiceNo":"HD001","description":"Bán quần áo nam","rev010":5000000}`
	req := httptest.NewRequest(http.MethodPost, "/books/S1/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, 1, store.Count(BookS1))
}

func TestAddEntryEndpointValidation(t *testing.T) {
	_, router := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/books/S1/", strings.NewReader(`{"date":"2026-07-01","rev010":-5}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUnknownBookIs404(t *testing.T) {
	_, router := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/books/S9/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRendersDerivedFields(t *testing.T) {
	store, router := newTestHandler(t)
	require.NoError(t, store.Seed(context.Background()))

	req := httptest.NewRequest(http.MethodGet, "/books/S6/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []struct {
		Income  int64 `json:"income"`
		Expense int64 `json:"expense"`
		Balance int64 `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, int64(5_000_000), rows[0].Balance)
	assert.Equal(t, int64(0), rows[1].Balance)
}

func TestDeleteEndpointIdempotent(t *testing.T) {
	store, router := newTestHandler(t)
	id, err := store.Add(context.Background(), S1RevenueEntry{Date: "2026-07-01", InvoiceNo: "HD001"})
	require.NoError(t, err)

	del := func(target string) map[string]bool {
		req := httptest.NewRequest(http.MethodDelete, target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var out map[string]bool
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		return out
	}

	assert.True(t, del(fmt.Sprintf("/books/S1/%s", id))["deleted"])
	assert.False(t, del(fmt.Sprintf("/books/S1/%s", id))["deleted"])
	assert.Equal(t, 0, store.Count(BookS1))
}

func TestExportCSV(t *testing.T) {
	store, router := newTestHandler(t)
	require.NoError(t, store.Seed(context.Background()))

	req := httptest.NewRequest(http.MethodGet, "/books/S1/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\r\n")
	// Title, header, two seeded rows, total line.
	require.Len(t, lines, 5)
	assert.Contains(t, lines[len(lines)-1], "Tổng cộng")
	assert.Contains(t, lines[len(lines)-1], "6.200.000")
}
