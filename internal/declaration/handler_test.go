package declaration

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hkdtax/hkdtax/internal/ledger"
)

func newTestHandler(t *testing.T) (*ledger.Store, *Registry, http.Handler) {
	t.Helper()
	store := ledger.NewStore(nil)
	registry := NewRegistry(nil)
	r := chi.NewRouter()
	NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), store, registry).MountRoutes(r)
	return store, registry, r
}

func TestSummaryEndpointReflectsLedger(t *testing.T) {
	store, _, router := newTestHandler(t)
	require.NoError(t, store.Seed(context.Background()))

	req := httptest.NewRequest(http.MethodGet, "/declaration/summary", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var s Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, int64(5_000_000), s.Rev010)
	assert.Equal(t, int64(1_200_000), s.Rev020)
	assert.Equal(t, int64(6_200_000), s.TotalRevenue)
	// 5M*1% + 1.2M*5% VAT; 5M*0.5% + 1.2M*2% PIT.
	assert.Equal(t, int64(110_000), s.VAT)
	assert.Equal(t, int64(49_000), s.PIT)
	assert.Equal(t, int64(159_000), s.TotalTax)
}

func TestWarningsEndpoint(t *testing.T) {
	store, _, router := newTestHandler(t)
	require.NoError(t, store.Seed(context.Background()))

	req := httptest.NewRequest(http.MethodGet, "/declaration/warnings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var warnings []Warning
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &warnings))
	// Seeded revenue is 6.2M, below the 10M advisory threshold.
	require.Len(t, warnings, 1)
	assert.Equal(t, SeverityInfo, warnings[0].Severity)
}

func TestSubmitEndpointSnapshotsCurrentTax(t *testing.T) {
	store, registry, router := newTestHandler(t)
	require.NoError(t, store.Seed(context.Background()))

	req := httptest.NewRequest(http.MethodPost, "/declarations/2026-Q2/submit", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var record Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, int64(159_000), record.TotalTax)

	stored, err := registry.Get("2026-Q2")
	require.NoError(t, err)
	assert.Equal(t, record, stored)
}

func TestStartEndpointRejectsBadPeriod(t *testing.T) {
	_, _, router := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/declarations/nonsense/start", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
