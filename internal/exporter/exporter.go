package exporter

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Options configures file exports
type Options struct {
	// Dir is where relative destination paths are resolved
	Dir string
	// PageSize names the grid document page format (A3, A4, A5, Letter, Legal)
	PageSize string
	// MarginMM is applied to every side of a grid document page
	MarginMM float64
	// CSVBOM prefixes CSV files with a UTF-8 byte order mark
	CSVBOM bool
}

// DefaultOptions returns A4 pages with 10mm margins and plain CSV
func DefaultOptions() Options {
	return Options{
		PageSize: "A4",
		MarginMM: 10,
	}
}

// Exporter writes tables to files. It holds no state between calls.
type Exporter struct {
	opts   Options
	layout Layout
}

// New creates an Exporter, failing on an unknown page size or a margin that
// leaves no room on the page.
func New(opts Options) (*Exporter, error) {
	if opts.PageSize == "" {
		opts.PageSize = "A4"
	}
	layout, err := NewLayout(opts.PageSize, opts.MarginMM)
	if err != nil {
		return nil, err
	}
	return &Exporter{opts: opts, layout: layout}, nil
}

// Layout returns the page geometry used for grid documents
func (e *Exporter) Layout() Layout {
	return e.layout
}

// resolvePath joins relative paths onto the exports directory
func (e *Exporter) resolvePath(path string) string {
	if filepath.IsAbs(path) || e.opts.Dir == "" {
		return path
	}
	return filepath.Join(e.opts.Dir, path)
}

// Kind is an export file format
type Kind string

// Export formats
const (
	KindCSV  Kind = "csv"
	KindPDF  Kind = "pdf"
	KindXLSX Kind = "xlsx"
)

// ParseKind maps a format name to a Kind
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindCSV, KindPDF, KindXLSX:
		return k, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// ContentType returns the MIME type of the format
func (k Kind) ContentType() string {
	switch k {
	case KindCSV:
		return "text/csv; charset=utf-8"
	case KindPDF:
		return "application/pdf"
	case KindXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// FileName returns the download name for a table exported in format k:
// <name>.csv, <name>_report.pdf or <name>.xlsx.
func (k Kind) FileName(table string) string {
	if k == KindPDF {
		return table + "_report.pdf"
	}
	return table + "." + string(k)
}

// ReportTitle returns the grid document title for a table title,
// e.g. "Opportunities" becomes "Opportunities Report".
func ReportTitle(title string) string {
	return title + " Report"
}
