package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "seodash/internal/errors"
	"seodash/internal/middleware"
	api "seodash/pkg/contracts/api/v1"
)

// MaxPageSize bounds the limit query parameter of table reads
const MaxPageSize = 1000

// DataHandler serves the loaded tables with RFC 7807 errors
type DataHandler struct {
	service      DataServiceInterface
	validator    *middleware.Validator
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewDataHandler creates a new data handler
func NewDataHandler(service DataServiceInterface, validator *middleware.Validator, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DataHandler {
	return &DataHandler{
		service:      service,
		validator:    validator,
		logger:       logger.With(slog.String("component", "data_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the table routes
func (h *DataHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.ListTables)
	r.Get("/{name}", h.GetTable)

	return r
}

// ListTables handles GET /api/tables
func (h *DataHandler) ListTables(w http.ResponseWriter, r *http.Request) {
	summaries := h.service.Summaries(r.Context())

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   summaries,
		"count":  len(summaries),
	})
}

// GetTable handles GET /api/tables/{name}?offset=&limit=
func (h *DataHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	offset, err := h.validator.QueryInt(r, "offset", 0, int(^uint(0)>>1), 0)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	limit, err := h.validator.QueryInt(r, "limit", 0, MaxPageSize, 0)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	view, err := h.service.Table(r.Context(), name, api.TableRequest{Offset: offset, Limit: limit})
	if err != nil {
		h.logger.WarnContext(r.Context(), "failed to read table",
			slog.String("table", name),
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   view,
		"count":  view.RowCount,
	})
}
