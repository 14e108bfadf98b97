package http

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"seodash/internal/config"
	"seodash/internal/dataset"
	apierrors "seodash/internal/errors"
	api "seodash/pkg/contracts/api/v1"
	"seodash/pkg/contracts/domain"
)

//go:embed templates/index.html
var templateFS embed.FS

// Dashboard page text
const (
	DashboardTitle   = "Etsy + Google SEO Dashboard"
	DashboardCaption = "Sample search and listing data with export reports and a GA4 UTM builder."
)

// dashboardTables are the tables shown as tabs, in tab order
var dashboardTables = []string{dataset.Opportunities, dataset.Listings}

type dashboardPage struct {
	Title        string
	Caption      string
	Tables       []*domain.TableView
	Exports      []domain.ReportOption
	Channels     []domain.Channel
	LinkFileName string
}

// DashboardHandler renders the HTML dashboard
type DashboardHandler struct {
	data         DataServiceInterface
	exports      ExportServiceInterface
	links        LinkServiceInterface
	tmpl         *template.Template
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewDashboardHandler parses the page template. An index.html in webDir
// replaces the built-in page.
func NewDashboardHandler(webDir string, data DataServiceInterface, exports ExportServiceInterface, links LinkServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) (*DashboardHandler, error) {
	tmpl, err := loadTemplate(webDir)
	if err != nil {
		return nil, err
	}

	return &DashboardHandler{
		data:         data,
		exports:      exports,
		links:        links,
		tmpl:         tmpl,
		logger:       logger.With(slog.String("component", "dashboard_handler")),
		errorHandler: errorHandler,
	}, nil
}

func loadTemplate(webDir string) (*template.Template, error) {
	if webDir != "" {
		custom := filepath.Join(webDir, "index.html")
		if _, err := os.Stat(custom); err == nil {
			tmpl, err := template.ParseFiles(custom)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", custom, err)
			}
			return tmpl, nil
		}
	}
	return template.ParseFS(templateFS, "templates/index.html")
}

// ServeHTTP handles GET /
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page := dashboardPage{
		Title:        DashboardTitle,
		Caption:      DashboardCaption,
		Exports:      h.exports.Options(),
		Channels:     h.links.Channels(),
		LinkFileName: config.LinkFileName,
	}

	for _, name := range dashboardTables {
		view, err := h.data.Table(r.Context(), name, api.TableRequest{})
		if errors.Is(err, dataset.ErrTableNotFound) {
			continue
		}
		if err != nil {
			h.errorHandler.HandleError(w, r, err)
			return
		}
		page.Tables = append(page.Tables, view)
	}

	// render fully before writing so a template error can still become a problem response
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, page); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render dashboard", slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, fmt.Errorf("render dashboard: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
