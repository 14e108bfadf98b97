package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	apierrors "seodash/internal/errors"
	"seodash/internal/exporter"
	"seodash/internal/infrastructure"
	api "seodash/pkg/contracts/api/v1"
	"seodash/pkg/contracts/domain"
)

// ExportService turns catalog tables into CSV, PDF and XLSX files
type ExportService struct {
	catalog  TableCatalog
	exporter *exporter.Exporter
	metrics  *infrastructure.BusinessMetrics
	logger   *slog.Logger
}

// NewExportService creates an export service. metrics may be nil.
func NewExportService(catalog TableCatalog, exp *exporter.Exporter, metrics *infrastructure.BusinessMetrics, logger *slog.Logger) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportService{
		catalog:  catalog,
		exporter: exp,
		metrics:  metrics,
		logger:   infrastructure.WithComponent(logger, "export_service"),
	}
}

// Export writes the requested table into the exports directory under its
// default file name
func (s *ExportService) Export(ctx context.Context, req api.ExportRequest) (*domain.Report, error) {
	return s.ExportTo(ctx, req, "")
}

// ExportTo writes the requested table to path. A relative path is placed in
// the exports directory; an empty path uses the format's default file name.
func (s *ExportService) ExportTo(ctx context.Context, req api.ExportRequest, path string) (*domain.Report, error) {
	kind, err := exporter.ParseKind(req.Format)
	if err != nil {
		return nil, apierrors.ErrValidation("format", err.Error())
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := s.catalog.Get(req.Table)
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = kind.FileName(t.Name)
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = exporter.ReportTitle(s.catalog.Title(t.Name))
	}

	start := time.Now()
	var written string
	switch kind {
	case exporter.KindCSV:
		written, err = s.exporter.ToCSVFile(t, path)
	case exporter.KindPDF:
		written, err = s.exporter.ToGridDocument(t, title, path)
	case exporter.KindXLSX:
		written, err = s.exporter.ToSpreadsheet(t, path)
	}
	duration := time.Since(start)

	infrastructure.RecordExport(ctx, s.metrics, t.Name, string(kind), duration, err)
	if err != nil {
		infrastructure.RecordError(ctx, err)
		s.logger.ErrorContext(ctx, "export failed",
			slog.String("table", t.Name),
			slog.String("format", string(kind)),
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("export %s as %s: %w", t.Name, kind, err)
	}

	report := &domain.Report{
		Table:       t.Name,
		Format:      domain.ReportFormat(kind),
		FileName:    kind.FileName(t.Name),
		FilePath:    written,
		ContentType: kind.ContentType(),
		RowCount:    t.Len(),
		GeneratedAt: start,
	}
	if kind == exporter.KindPDF {
		report.Title = title
	}
	if info, statErr := os.Stat(written); statErr == nil {
		report.FileSize = info.Size()
	}

	s.logger.InfoContext(ctx, "export written",
		slog.String("table", t.Name),
		slog.String("format", string(kind)),
		slog.String("path", written),
		slog.Int64("bytes", report.FileSize),
		slog.Int("rows", report.RowCount),
		slog.Duration("duration", duration))

	return report, nil
}

// Options lists the downloads offered on the Exports tab, every table in
// every format
func (s *ExportService) Options() []domain.ReportOption {
	kinds := []exporter.Kind{exporter.KindCSV, exporter.KindPDF, exporter.KindXLSX}

	var options []domain.ReportOption
	for _, name := range s.catalog.Names() {
		title := s.catalog.Title(name)
		for _, kind := range kinds {
			label := title
			if kind == exporter.KindPDF {
				label = exporter.ReportTitle(title)
			}
			options = append(options, domain.ReportOption{
				Table:    name,
				Format:   domain.ReportFormat(kind),
				Label:    fmt.Sprintf("%s (%s)", label, strings.ToUpper(string(kind))),
				FileName: kind.FileName(name),
				URL:      fmt.Sprintf("/api/exports/%s.%s", name, kind),
			})
		}
	}
	return options
}
