package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seodash/internal/shared/testutil"
)

func TestClientLogHandler_Handle(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedLevel  slog.Level
	}{
		{
			name:           "error entry",
			body:           `{"level":"error","message":"tracking link request failed","source":"utm-builder","data":{"status":400}}`,
			expectedStatus: http.StatusAccepted,
			expectedLevel:  slog.LevelError,
		},
		{
			name:           "warn entry",
			body:           `{"level":"warn","message":"download blocked"}`,
			expectedStatus: http.StatusAccepted,
			expectedLevel:  slog.LevelWarn,
		},
		{
			name:           "missing level logs as info",
			body:           `{"message":"tab opened","source":"tabs"}`,
			expectedStatus: http.StatusAccepted,
			expectedLevel:  slog.LevelInfo,
		},
		{
			name:           "unknown level",
			body:           `{"level":"fatal","message":"x"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing message",
			body:           `{"level":"info"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			body:           `{"level":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newHandlerDeps(t)
			handler := NewClientLogHandler(deps.validator, deps.logger, deps.errorHandler)

			rec := httptest.NewRecorder()
			handler.Handle(rec, postJSON("/api/logs", tt.body))

			require.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			if tt.expectedStatus != http.StatusAccepted {
				return
			}

			assert.Equal(t, "success", decodeBody(t, rec)["status"])
			records := deps.logs.GetRecordsByLevel(tt.expectedLevel)
			require.NotEmpty(t, records)
			assert.Equal(t, "client_log", records[len(records)-1].Attrs["component"])
		})
	}
}

func TestClientLogHandler_CarriesSourceAndData(t *testing.T) {
	deps := newHandlerDeps(t)
	handler := NewClientLogHandler(deps.validator, deps.logger, deps.errorHandler)

	rec := httptest.NewRecorder()
	handler.Handle(rec, postJSON("/api/logs", `{"level":"error","message":"export failed","source":"exports","data":{"table":"listings"}}`))
	require.Equal(t, http.StatusAccepted, rec.Code)

	record, ok := deps.logs.FindRecord("export failed")
	require.True(t, ok)
	assert.Equal(t, "exports", record.Attrs["client_source"])
	assert.Equal(t, map[string]interface{}{"table": "listings"}, record.Attrs["data"])

	testutil.AssertLogContains(t, deps.logs, slog.LevelError, "export failed")
}
