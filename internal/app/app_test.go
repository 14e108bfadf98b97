package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seodash/internal/config"
	"seodash/internal/dataset"
	"seodash/internal/shared/testutil"
)

var testData = map[string]string{
	"opportunities.csv": "keyword,volume,competition,current_rank,suggested_listing\n" +
		"ceramic mug,5400,low,14,Handmade mug\n" +
		"gift for her,22000,high,,Gift box\n",
	"listings.csv": "listing_id,title,price,views,favorites\n" +
		"L-1,Handmade mug,24.00,120,7\n",
	"queries.csv": "query,clicks,impressions,ctr,position\n" +
		"ceramic mug,40,1200,0.033,8.2\n",
}

// setupTestApp builds an application over a temporary base directory
func setupTestApp(t *testing.T, mutate func(*config.Config)) *Application {
	t.Helper()
	base := t.TempDir()
	dataDir := filepath.Join(base, config.DefaultDataDir)
	require.NoError(t, os.MkdirAll(dataDir, 0755))
	for name, content := range testData {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0644))
	}

	cfg := config.Default()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	cfg.Paths.BaseDir = base
	if mutate != nil {
		mutate(cfg)
	}

	paths, err := cfg.ResolvePaths()
	require.NoError(t, err)
	require.NoError(t, paths.EnsureDirectories())

	app, err := New(context.Background(), cfg, paths, testutil.DiscardLogger())
	require.NoError(t, err)
	return app
}

func serve(app *Application, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func TestNew_LoadsCatalog(t *testing.T) {
	app := setupTestApp(t, nil)

	assert.Equal(t, []string{dataset.Opportunities, dataset.Listings, dataset.Queries}, app.Catalog.Names())
	assert.NotNil(t, app.Services.Data)
	assert.NotNil(t, app.Services.Export)
	assert.NotNil(t, app.Services.Link)
	assert.NotNil(t, app.Services.Health)
	assert.Equal(t, "127.0.0.1:0", app.Server.Addr)
}

func TestNew_MissingDataSet(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, config.DefaultDataDir), 0755))

	cfg := config.Default()
	cfg.Paths.BaseDir = base
	paths, err := cfg.ResolvePaths()
	require.NoError(t, err)

	_, err = New(context.Background(), cfg, paths, testutil.DiscardLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, dataset.ErrSourceNotFound))
}

func TestRouter_Endpoints(t *testing.T) {
	app := setupTestApp(t, nil)

	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		expectedCode int
		contains     string
	}{
		{"dashboard", http.MethodGet, "/", "", http.StatusOK, "UTM Builder"},
		{"health", http.MethodGet, "/api/health", "", http.StatusOK, `"status":"ok"`},
		{"ready", http.MethodGet, "/api/health/ready", "", http.StatusOK, `"status":"ready"`},
		{"version", http.MethodGet, "/api/version", "", http.StatusOK, `"api_version":"v1"`},
		{"tables", http.MethodGet, "/api/tables", "", http.StatusOK, `"count":3`},
		{"table page", http.MethodGet, "/api/tables/opportunities?limit=1", "", http.StatusOK, `"total":2`},
		{"unknown table", http.MethodGet, "/api/tables/orders", "", http.StatusNotFound, "/errors/data/not-found"},
		{"csv export", http.MethodGet, "/api/exports/listings.csv", "", http.StatusOK, "L-1,Handmade mug,24.00,120,7"},
		{"export options", http.MethodGet, "/api/exports", "", http.StatusOK, `"count":9`},
		{"channels", http.MethodGet, "/api/utm/channels", "", http.StatusOK, `"count":6`},
		{
			"build link", http.MethodPost, "/api/utm/links",
			`{"url":"https://www.etsy.com/listing/1","channel":"Instagram Ads","campaign":"launch"}`,
			http.StatusOK, "utm_source=instagram\\u0026utm_medium=cpc\\u0026utm_campaign=launch",
		},
		{
			"missing url", http.MethodPost, "/api/utm/links",
			`{"url":"","channel":"Instagram Ads","campaign":"launch"}`,
			http.StatusBadRequest, "Please enter a listing URL.",
		},
		{
			"client log", http.MethodPost, "/api/logs",
			`{"level":"warn","message":"download blocked","source":"utm-download"}`,
			http.StatusAccepted, `"status":"success"`,
		},
		{"unknown route", http.MethodGet, "/nope", "", http.StatusNotFound, "/errors/not-found"},
		{"wrong method", http.MethodDelete, "/api/tables", "", http.StatusMethodNotAllowed, "/errors/method-not-allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(app, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedCode, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), tt.contains)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestRouter_SecurityHeaders(t *testing.T) {
	app := setupTestApp(t, nil)
	rec := serve(app, http.MethodGet, "/api/health", "")

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'self'")
}

func TestRouter_ExportWritesToExportsDir(t *testing.T) {
	app := setupTestApp(t, nil)

	rec := serve(app, http.MethodGet, "/api/exports/opportunities.pdf", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
	assert.FileExists(t, filepath.Join(app.Paths.ExportsDir, "opportunities_report.pdf"))
}

func TestRouter_Metrics(t *testing.T) {
	app := setupTestApp(t, nil)

	serve(app, http.MethodGet, "/api/exports/listings.xlsx", "")
	serve(app, http.MethodPost, "/api/utm/links", `{"url":"https://shop.example","source":"google","medium":"cpc","campaign":"c"}`)

	rec := serve(app, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "exports_total")
	assert.Contains(t, body, "tracking_links_built_total")
	assert.Contains(t, body, `route="/api/exports/{name}.{format}"`)
}

func TestRouter_RateLimit(t *testing.T) {
	app := setupTestApp(t, func(cfg *config.Config) {
		cfg.Security.RateLimit.RPS = 1
		cfg.Security.RateLimit.Burst = 1
	})

	assert.Equal(t, http.StatusOK, serve(app, http.MethodGet, "/api/health", "").Code)
	rec := serve(app, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestApplication_ServeAndShutdown(t *testing.T) {
	app := setupTestApp(t, nil)
	require.NoError(t, app.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx) }()

	url := fmt.Sprintf("http://%s/api/health/live", app.Addr())
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
