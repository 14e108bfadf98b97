package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	apierrors "seodash/internal/errors"
	"seodash/internal/infrastructure"
	"seodash/internal/middleware"
	api "seodash/pkg/contracts/api/v1"
)

// ClientLogHandler records log entries sent by the dashboard page
type ClientLogHandler struct {
	validator    *middleware.Validator
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewClientLogHandler creates a new client log handler
func NewClientLogHandler(validator *middleware.Validator, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ClientLogHandler {
	return &ClientLogHandler{
		validator:    validator,
		logger:       logger.With(slog.String("component", "client_log")),
		errorHandler: errorHandler,
	}
}

// Handle handles POST /api/logs. An empty level is logged as info.
func (h *ClientLogHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req api.ClientLogRequest
	if err := h.validator.DecodeJSON(w, r, &req); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	attrs := []slog.Attr{
		slog.String("client_source", req.Source),
		slog.String("user_agent", r.UserAgent()),
	}
	if req.Data != nil {
		attrs = append(attrs, slog.Any("data", req.Data))
	}

	h.logger.LogAttrs(r.Context(), infrastructure.ParseLogLevel(req.Level), req.Message, attrs...)

	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
	})
}
