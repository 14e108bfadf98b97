package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
)

func TestMetricsHandler(t *testing.T) {
	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "exports_written_total", Help: "test"})
	registry.MustRegister(counter)
	counter.Inc()

	rec := httptest.NewRecorder()
	NewMetricsHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "exports_written_total 1")
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestMetricsHandler_Disabled(t *testing.T) {
	rec := httptest.NewRecorder()
	NewMetricsHandler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
