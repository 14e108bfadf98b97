// Package exporter turns dataset tables into downloadable files.
//
// Three formats are supported:
//
// CSV: header line first, standard quoting, "\n" line endings. ToDelimitedText
// returns the text directly; an optional UTF-8 BOM can be enabled for files.
//
// Grid document: a paginated PDF table. Every column gets the same width
// (usable page width divided by the column count). Header names are cut to 30
// characters, cell values longer than 38 characters are cut to 35 plus "...".
// The layout is computed by PlanGrid before anything is drawn.
//
// Spreadsheet: an XLSX workbook with one sheet and a bold header row.
//
// File destinations are written through a temp file and renamed into place,
// so a failed export never leaves a partial file behind. Failures are
// reported as *WriteError.
//
// Example usage:
//
//	exp, err := exporter.New(exporter.Options{Dir: "data/exports", PageSize: "A4", MarginMM: 10})
//	if err != nil {
//		return err
//	}
//	path, err := exp.ToGridDocument(table, "Opportunities Report", "opportunities_report.pdf")
package exporter
