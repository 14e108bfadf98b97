package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

// ErrSourceNotFound is returned when no data file exists for a data set
var ErrSourceNotFound = errors.New("data source not found")

// ReadCSV reads a table from CSV. The first record is the header.
// A record with fewer fields than the header fails with MalformedTableError.
func ReadCSV(name string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &MalformedTableError{Table: name, Row: -1, Reason: "missing header"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", name, err)
	}
	header = cleanHeader(header)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read records of %s: %w", name, err)
	}

	return NewTable(name, header, records)
}

// LoadCSV opens path and reads it with ReadCSV
func LoadCSV(name, path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(name, f)
}

// LoadXLSX reads a table from the first sheet of an XLSX workbook.
// Trailing blank cells are dropped by the workbook reader, so short rows are
// padded with empty values.
func LoadXLSX(name, path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &MalformedTableError{Table: name, Row: -1, Reason: "workbook has no sheets"}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sheets[0], path, err)
	}
	if len(rows) == 0 {
		return nil, &MalformedTableError{Table: name, Row: -1, Reason: "missing header"}
	}

	header := cleanHeader(rows[0])
	records := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < len(header) {
			padded := make([]string, len(header))
			copy(padded, row)
			row = padded
		}
		records = append(records, row)
	}

	return NewTable(name, header, records)
}

// cleanHeader trims whitespace and a UTF-8 BOM from header names
func cleanHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}

// LoadTable finds the source file for schema in dir (<name>.csv, then
// <name>.xlsx), loads it and checks the schema. It returns the table and the
// path it was read from.
func LoadTable(dir string, schema Schema) (*Table, string, error) {
	csvPath := filepath.Join(dir, schema.Name+".csv")
	xlsxPath := filepath.Join(dir, schema.Name+".xlsx")

	var (
		t    *Table
		path string
		err  error
	)
	switch {
	case fileExists(csvPath):
		path = csvPath
		t, err = LoadCSV(schema.Name, csvPath)
	case fileExists(xlsxPath):
		path = xlsxPath
		t, err = LoadXLSX(schema.Name, xlsxPath)
	default:
		return nil, "", fmt.Errorf("%w: %s (looked for %s.csv and %s.xlsx in %s)",
			ErrSourceNotFound, schema.Name, schema.Name, schema.Name, dir)
	}
	if err != nil {
		return nil, path, err
	}

	if err := schema.Check(t); err != nil {
		return nil, path, err
	}
	return t, path, nil
}

// LoadCatalog loads every schema from dir concurrently and returns the
// catalog in schema order. The first failure cancels the load.
func LoadCatalog(ctx context.Context, dir string, schemas []Schema) (*Catalog, error) {
	tables := make([]*Table, len(schemas))
	sources := make([]string, len(schemas))

	g, ctx := errgroup.WithContext(ctx)
	for i, schema := range schemas {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, path, err := LoadTable(dir, schema)
			if err != nil {
				return fmt.Errorf("load %s: %w", schema.Name, err)
			}
			tables[i] = t
			sources[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := &Catalog{entries: make(map[string]entry, len(schemas))}
	for i, schema := range schemas {
		if err := c.add(tables[i], schema.Title, sources[i]); err != nil {
			return nil, err
		}
	}
	c.loadedAt = nowFunc()
	return c, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
