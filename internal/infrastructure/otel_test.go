package infrastructure

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestInitializeOTel_Defaults(t *testing.T) {
	providers, err := InitializeOTel(nil, discardLogger())
	require.NoError(t, err)
	defer providers.Shutdown(context.Background())

	assert.Nil(t, providers.TracerProvider)
	assert.NotNil(t, providers.Tracer)
	assert.NotNil(t, providers.MeterProvider)
	assert.NotNil(t, providers.Meter)
	assert.NotNil(t, providers.PrometheusHTTP)
}

func TestInitializeOTel_Tracing(t *testing.T) {
	cfg := DefaultOTelConfig()
	cfg.EnableTracing = true
	cfg.TraceExporter = "stdout"
	cfg.EnableMetrics = false

	providers, err := InitializeOTel(cfg, discardLogger())
	require.NoError(t, err)
	require.NotNil(t, providers.TracerProvider)

	ctx, span := providers.Tracer.Start(context.Background(), "test-operation")
	traceID := TraceIDFromContext(ctx)
	assert.Equal(t, span.SpanContext().TraceID().String(), traceID)
	span.End()

	// metrics disabled still yields a usable meter
	_, err = CreateBusinessMetrics(providers.Meter)
	assert.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, providers.Shutdown(ctx))
}

func TestInitializeOTel_UnknownExporter(t *testing.T) {
	cfg := DefaultOTelConfig()
	cfg.EnableTracing = true
	cfg.TraceExporter = "jaeger"

	_, err := InitializeOTel(cfg, discardLogger())
	assert.Error(t, err)
}

func TestBusinessMetrics_PrometheusExposition(t *testing.T) {
	providers, err := InitializeOTel(DefaultOTelConfig(), discardLogger())
	require.NoError(t, err)
	defer providers.Shutdown(context.Background())

	metrics, err := CreateBusinessMetrics(providers.Meter)
	require.NoError(t, err)

	ctx := context.Background()
	RecordExport(ctx, metrics, "opportunities", "pdf", 20*time.Millisecond, nil)
	RecordExport(ctx, metrics, "listings", "csv", time.Millisecond, errors.New("disk full"))
	RecordLinkBuilt(ctx, metrics, "Pinterest Ads", nil)
	RecordHTTPRequest(ctx, metrics, http.MethodGet, "/api/tables", 200, time.Millisecond)

	rec := httptest.NewRecorder()
	providers.PrometheusHTTP.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "exports_total")
	assert.Contains(t, body, `table="opportunities"`)
	assert.Contains(t, body, `status="failure"`)
	assert.Contains(t, body, "tracking_links_built_total")
	assert.Contains(t, body, "http_requests_total")
	assert.Contains(t, body, "go_goroutines")
}

func TestRecordHelpers_NilMetrics(t *testing.T) {
	ctx := context.Background()
	assert.NotPanics(t, func() {
		RecordExport(ctx, nil, "t", "csv", 0, nil)
		RecordLinkBuilt(ctx, nil, "", nil)
		RecordHTTPRequest(ctx, nil, "GET", "/", 200, 0)
		RecordError(ctx, errors.New("no span"))
	})
}

func TestCreateBusinessMetrics_Noop(t *testing.T) {
	metrics, err := CreateBusinessMetrics(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	assert.NotNil(t, metrics.ExportsTotal)
	assert.NotNil(t, metrics.LinksBuiltTotal)
}
