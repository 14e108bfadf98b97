package http

import (
	"net/http"
)

// MetricsHandler exposes the Prometheus scrape endpoint
type MetricsHandler struct {
	handler http.Handler
}

// NewMetricsHandler wraps the exporter's scrape handler. A nil handler
// answers 404, matching a process started with metrics disabled.
func NewMetricsHandler(handler http.Handler) *MetricsHandler {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	return &MetricsHandler{handler: handler}
}

// ServeHTTP writes the current metrics in the Prometheus text format
func (h *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	h.handler.ServeHTTP(w, r)
}
