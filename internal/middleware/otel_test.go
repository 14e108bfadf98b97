package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seodash/internal/infrastructure"
	"seodash/internal/shared/testutil"
)

func TestOTelMiddleware_RecordsRoutePattern(t *testing.T) {
	cfg := infrastructure.DefaultOTelConfig()
	cfg.EnableTracing = true
	cfg.TraceExporter = "stdout"

	providers, err := infrastructure.InitializeOTel(cfg, testutil.DiscardLogger())
	require.NoError(t, err)
	defer providers.Shutdown(context.Background())

	metrics, err := infrastructure.CreateBusinessMetrics(providers.Meter)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(NewOTelMiddleware(providers, metrics).Handler)

	var traceID string
	r.Get("/api/tables/{name}", func(w http.ResponseWriter, req *http.Request) {
		traceID = infrastructure.GetTraceID(req.Context())
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tables/listings", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, traceID, 32)

	rec := httptest.NewRecorder()
	providers.PrometheusHTTP.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `route="/api/tables/{name}"`)
}

func TestGetRealIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	assert.Equal(t, "10.0.0.1:1234", GetRealIP(r))

	r.Header.Set("X-Real-IP", "192.0.2.7")
	assert.Equal(t, "192.0.2.7", GetRealIP(r))

	r.Header.Set("X-Forwarded-For", "198.51.100.2")
	assert.Equal(t, "198.51.100.2", GetRealIP(r))
}
