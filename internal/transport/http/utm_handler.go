package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"seodash/internal/config"
	apierrors "seodash/internal/errors"
	"seodash/internal/middleware"
	api "seodash/pkg/contracts/api/v1"
)

// UTMHandler builds campaign tracking links
type UTMHandler struct {
	service      LinkServiceInterface
	validator    *middleware.Validator
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewUTMHandler creates a new UTM handler
func NewUTMHandler(service LinkServiceInterface, validator *middleware.Validator, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *UTMHandler {
	return &UTMHandler{
		service:      service,
		validator:    validator,
		logger:       logger.With(slog.String("component", "utm_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the UTM routes
func (h *UTMHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/channels", h.ListChannels)
		r.Get("/channels/{channel}", h.GetChannel)
		r.Post("/links", h.BuildLink)
	})
	r.Post("/links/download", h.DownloadLink)

	return r
}

// ListChannels handles GET /api/utm/channels
func (h *UTMHandler) ListChannels(w http.ResponseWriter, r *http.Request) {
	channels := h.service.Channels()

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   channels,
		"count":  len(channels),
	})
}

// GetChannel handles GET /api/utm/channels/{channel}. Channel names contain
// spaces and parentheses so the parameter arrives escaped.
func (h *UTMHandler) GetChannel(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "channel"))
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("channel", "Invalid channel name encoding"))
		return
	}

	channel, err := h.service.Channel(name)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   channel,
	})
}

// BuildLink handles POST /api/utm/links
func (h *UTMHandler) BuildLink(w http.ResponseWriter, r *http.Request) {
	var req api.LinkRequest
	if err := h.validator.DecodeJSON(w, r, &req); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	link, err := h.service.Build(r.Context(), req)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   link,
	})
}

// DownloadLink handles POST /api/utm/links/download. The body is the same
// as BuildLink; the response is a text file holding only the link.
func (h *UTMHandler) DownloadLink(w http.ResponseWriter, r *http.Request) {
	var req api.LinkRequest
	if err := h.validator.DecodeJSON(w, r, &req); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	link, err := h.service.Build(r.Context(), req)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "serving link file",
		slog.String("channel", link.Channel),
		slog.String("request_id", middleware.GetRequestID(r.Context())),
	)

	setAttachment(w, config.LinkFileName, "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, link.URL)
}
