package http

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "seodash/internal/errors"
	"seodash/internal/middleware"
	api "seodash/pkg/contracts/api/v1"
)

// ExportHandler turns tables into downloadable files
type ExportHandler struct {
	service      ExportServiceInterface
	validator    *middleware.Validator
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewExportHandler creates a new export handler
func NewExportHandler(service ExportServiceInterface, validator *middleware.Validator, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ExportHandler {
	return &ExportHandler{
		service:      service,
		validator:    validator,
		logger:       logger.With(slog.String("component", "export_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the export routes
func (h *ExportHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.With(render.SetContentType(render.ContentTypeJSON)).Get("/", h.ListOptions)
	r.Get("/{name}.{format}", h.Download)

	return r
}

// ListOptions handles GET /api/exports
func (h *ExportHandler) ListOptions(w http.ResponseWriter, r *http.Request) {
	options := h.service.Options()

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   options,
		"count":  len(options),
	})
}

// Download handles GET /api/exports/{name}.{format}. The file is written to
// the exports directory and then streamed as an attachment.
func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	req := api.ExportRequest{
		Table:  chi.URLParam(r, "name"),
		Format: chi.URLParam(r, "format"),
		Title:  r.URL.Query().Get("title"),
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	report, err := h.service.Export(r.Context(), req)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	f, err := os.Open(report.FilePath)
	if err != nil {
		h.errorHandler.HandleError(w, r, fmt.Errorf("open export: %w", err))
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.errorHandler.HandleError(w, r, fmt.Errorf("stat export: %w", err))
		return
	}

	h.logger.InfoContext(r.Context(), "serving export",
		slog.String("table", report.Table),
		slog.String("format", string(report.Format)),
		slog.Int64("bytes", info.Size()),
		slog.String("request_id", middleware.GetRequestID(r.Context())),
	)

	setAttachment(w, report.FileName, report.ContentType)
	http.ServeContent(w, r, report.FileName, info.ModTime(), f)
}

// setAttachment marks the response as a file download
func setAttachment(w http.ResponseWriter, fileName, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	w.Header().Set("Cache-Control", "no-store")
}
