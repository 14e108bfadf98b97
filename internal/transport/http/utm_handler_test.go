package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apierrors "seodash/internal/errors"
	"seodash/internal/utm"
	api "seodash/pkg/contracts/api/v1"
	"seodash/pkg/contracts/domain"
)

func newUTMRouter(t *testing.T, svc *MockLinkService) http.Handler {
	t.Helper()
	deps := newHandlerDeps(t)
	r := chi.NewRouter()
	r.Mount("/api/utm", NewUTMHandler(svc, deps.validator, deps.logger, deps.errorHandler).Routes())
	return r
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestUTMHandler_Channels(t *testing.T) {
	svc := new(MockLinkService)
	svc.On("Channels").Return([]domain.Channel{
		{Name: utm.ChannelPinterestOrganic, Source: "pinterest", Medium: "social"},
		{Name: utm.ChannelPinterestAds, Source: "pinterest", Medium: "cpc"},
	})
	svc.On("Channel", utm.ChannelGoogleAdsSearch).Return(domain.Channel{Name: utm.ChannelGoogleAdsSearch, Source: "google", Medium: "cpc"}, nil)
	svc.On("Channel", "TikTok Ads").Return(domain.Channel{}, &utm.UnknownChannelError{Channel: "TikTok Ads"})

	router := newUTMRouter(t, svc)

	t.Run("list", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/utm/channels", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(2), decodeBody(t, rec)["count"])
	})

	t.Run("resolve escaped name", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/utm/channels/Google%20Ads%20%28Search%29", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeBody(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, "google", data["source"])
		assert.Equal(t, "cpc", data["medium"])
	})

	t.Run("unknown channel", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/utm/channels/TikTok%20Ads", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, apierrors.TypeUnknownChannel, body["type"])
		assert.Equal(t, "TikTok Ads", body["channel"])
	})

	svc.AssertExpectations(t)
}

func TestUTMHandler_BuildLink(t *testing.T) {
	req := api.LinkRequest{
		URL:      "https://www.etsy.com/listing/123",
		Channel:  utm.ChannelPinterestAds,
		Campaign: "spring_launch_2025",
	}
	link := &domain.TrackingLink{
		URL:      "https://www.etsy.com/listing/123?utm_source=pinterest&utm_medium=cpc&utm_campaign=spring_launch_2025",
		BaseURL:  req.URL,
		Channel:  req.Channel,
		Source:   "pinterest",
		Medium:   "cpc",
		Campaign: req.Campaign,
	}

	svc := new(MockLinkService)
	svc.On("Build", req).Return(link, nil)

	rec := httptest.NewRecorder()
	newUTMRouter(t, svc).ServeHTTP(rec, postJSON("/api/utm/links",
		`{"url":"https://www.etsy.com/listing/123","channel":"Pinterest Ads","campaign":"spring_launch_2025"}`))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, link.URL, data["url"])
	svc.AssertExpectations(t)
}

func TestUTMHandler_BuildLinkErrors(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockLinkService)
		expectedCode   int
		expectedType   string
		expectedDetail string
	}{
		{
			name:           "missing url",
			body:           `{"source":"google","medium":"cpc","campaign":"launch"}`,
			setupMock:      func(m *MockLinkService) {},
			expectedCode:   http.StatusBadRequest,
			expectedType:   apierrors.TypeValidation,
			expectedDetail: api.MsgMissingURL,
		},
		{
			name:           "missing source without channel",
			body:           `{"url":"https://shop.example","medium":"cpc","campaign":"launch"}`,
			setupMock:      func(m *MockLinkService) {},
			expectedCode:   http.StatusBadRequest,
			expectedType:   apierrors.TypeValidation,
			expectedDetail: "source is required when channel is not set",
		},
		{
			name:         "malformed json",
			body:         `{"url":`,
			setupMock:    func(m *MockLinkService) {},
			expectedCode: http.StatusBadRequest,
			expectedType: apierrors.TypeBadRequest,
		},
		{
			name: "relative url",
			body: `{"url":"/listing/1","source":"google","medium":"cpc","campaign":"launch"}`,
			setupMock: func(m *MockLinkService) {
				m.On("Build", mock.Anything).Return(nil, &utm.InvalidURLError{URL: "/listing/1", Reason: "url must be absolute with scheme and host"})
			},
			expectedCode: http.StatusBadRequest,
			expectedType: apierrors.TypeInvalidURL,
		},
		{
			name: "unknown channel",
			body: `{"url":"https://shop.example","channel":"TikTok Ads","campaign":"launch"}`,
			setupMock: func(m *MockLinkService) {
				m.On("Build", mock.Anything).Return(nil, &utm.UnknownChannelError{Channel: "TikTok Ads"})
			},
			expectedCode: http.StatusNotFound,
			expectedType: apierrors.TypeUnknownChannel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockLinkService)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			newUTMRouter(t, svc).ServeHTTP(rec, postJSON("/api/utm/links", tt.body))

			assert.Equal(t, tt.expectedCode, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.expectedType, body["type"])
			if tt.expectedDetail != "" {
				assert.Equal(t, tt.expectedDetail, body["detail"])
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestUTMHandler_DownloadLink(t *testing.T) {
	link := "https://shop.example/x?utm_source=google&utm_medium=organic&utm_campaign=launch"

	svc := new(MockLinkService)
	svc.On("Build", mock.Anything).Return(&domain.TrackingLink{URL: link}, nil)

	rec := httptest.NewRecorder()
	newUTMRouter(t, svc).ServeHTTP(rec, postJSON("/api/utm/links/download",
		`{"url":"https://shop.example/x","channel":"Google (organic)","campaign":"launch"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=utm_link.txt", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, link, rec.Body.String())
}
