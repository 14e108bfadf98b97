package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"seodash/internal/dataset"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ToDelimitedText renders t as CSV: header line first, then one line per row
// in table order, "\n" line endings and no BOM.
func ToDelimitedText(t *dataset.Table) (string, error) {
	var b strings.Builder
	if err := WriteDelimitedText(&b, t, false); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteDelimitedText streams t as CSV to w. With bom set the output starts
// with a UTF-8 byte order mark so spreadsheet tools detect the encoding.
func WriteDelimitedText(w io.Writer, t *dataset.Table, bom bool) error {
	if err := t.Validate(); err != nil {
		return err
	}

	if bom {
		if _, err := w.Write(utf8BOM); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := range t.Rows {
		if err := writer.Write(t.Values(i)); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ToCSVFile writes t as CSV to path, resolved against the exports directory
// when relative, and returns the final path.
func (e *Exporter) ToCSVFile(t *dataset.Table, path string) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	fullPath := e.resolvePath(path)
	err := writeFileAtomic(fullPath, func(w io.Writer) error {
		return WriteDelimitedText(w, t, e.opts.CSVBOM)
	})
	if err != nil {
		return "", err
	}
	return fullPath, nil
}
