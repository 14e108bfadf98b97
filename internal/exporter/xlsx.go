package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"seodash/internal/dataset"
)

const maxSheetNameRunes = 31

// WriteSpreadsheet writes t to w as an XLSX workbook with one sheet named
// after the table and a bold header row
func WriteSpreadsheet(w io.Writer, t *dataset.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(t.Name)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if len(t.Columns) > 0 {
		header := make([]interface{}, len(t.Columns))
		for i, col := range t.Columns {
			header[i] = col
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		last, err := excelize.CoordinatesToCellName(len(t.Columns), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}
	}

	for i := range t.Rows {
		values := t.Values(i)
		row := make([]interface{}, len(values))
		for j, v := range values {
			row[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return f.Write(w)
}

// ToSpreadsheet writes t as XLSX to path, resolved against the exports
// directory when relative, and returns the final path.
func (e *Exporter) ToSpreadsheet(t *dataset.Table, path string) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	fullPath := e.resolvePath(path)
	err := writeFileAtomic(fullPath, func(w io.Writer) error {
		return WriteSpreadsheet(w, t)
	})
	if err != nil {
		return "", err
	}
	return fullPath, nil
}

// sheetName makes a table name usable as a worksheet name
func sheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	name = strings.Trim(name, "'")

	if r := []rune(name); len(r) > maxSheetNameRunes {
		name = string(r[:maxSheetNameRunes])
	}
	if name == "" {
		return "Sheet1"
	}
	return name
}
