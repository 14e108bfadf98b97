package domain

import (
	"time"
)

// ReportFormat defines the file format of an export
type ReportFormat string

const (
	ReportFormatCSV   ReportFormat = "csv"
	ReportFormatPDF   ReportFormat = "pdf"
	ReportFormatExcel ReportFormat = "xlsx"
)

// Report represents a generated export file
type Report struct {
	Table       string       `json:"table"`
	Title       string       `json:"title,omitempty"`
	Format      ReportFormat `json:"format"`
	FileName    string       `json:"file_name"`
	FilePath    string       `json:"file_path"`
	FileSize    int64        `json:"file_size"`
	ContentType string       `json:"content_type"`
	RowCount    int          `json:"row_count"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// ReportOption describes one export offered on the Exports tab
type ReportOption struct {
	Table    string       `json:"table"`
	Format   ReportFormat `json:"format"`
	Label    string       `json:"label"`
	FileName string       `json:"file_name"`
	URL      string       `json:"url"`
}
