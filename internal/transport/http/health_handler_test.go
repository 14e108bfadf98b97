package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seodash/internal/dataset"
	"seodash/internal/services"
	"seodash/internal/shared/testutil"
)

func testCatalog(t *testing.T) *dataset.Catalog {
	t.Helper()
	opportunities, err := dataset.NewTable("opportunities",
		[]string{"keyword", "volume", "competition", "current_rank", "suggested_listing"},
		[][]string{{"ceramic mug", "5400", "low", "14", "Handmade mug"}})
	require.NoError(t, err)
	listings, err := dataset.NewTable("listings",
		[]string{"listing_id", "title", "price", "views", "favorites"},
		[][]string{{"L-1", "Handmade <b>mug</b>", "24.00", "120", "7"}})
	require.NoError(t, err)

	catalog, err := dataset.NewCatalog(opportunities, listings)
	require.NoError(t, err)
	return catalog
}

func TestHealthHandler(t *testing.T) {
	logger := testutil.DiscardLogger()
	svc := services.NewHealthService("v1.0.0-test", testCatalog(t), t.TempDir(), logger)
	handler := NewHealthHandler(svc, logger)

	tests := []struct {
		name           string
		handle         http.HandlerFunc
		expectedStatus string
	}{
		{"health", handler.HealthCheck, services.StatusOK},
		{"ready", handler.ReadinessCheck, services.StatusReady},
		{"live", handler.LivenessCheck, services.StatusAlive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handle(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.expectedStatus, body["status"])
			assert.Equal(t, "v1.0.0-test", body["version"])
		})
	}

	t.Run("version", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.Version(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "v1.0.0-test", body["version"])
		assert.Equal(t, "v1", body["api_version"])
	})
}

func TestHealthHandler_NotReady(t *testing.T) {
	blocked := filepath.Join(t.TempDir(), "exports")
	require.NoError(t, os.WriteFile(blocked, nil, 0644))

	logger := testutil.DiscardLogger()
	svc := services.NewHealthService("dev", testCatalog(t), blocked, logger)

	rec := httptest.NewRecorder()
	NewHealthHandler(svc, logger).ReadinessCheck(rec, httptest.NewRequest(http.MethodGet, "/api/health/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, services.StatusNotReady, body["status"])
}
