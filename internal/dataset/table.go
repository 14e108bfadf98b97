package dataset

import "strings"

// Row maps column name to display value
type Row map[string]string

// Table is a named, ordered set of columns and rows
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// NewTable builds a table from a header and positional records.
// Each record must have exactly one value per column.
func NewTable(name string, columns []string, records [][]string) (*Table, error) {
	t := &Table{
		Name:    name,
		Columns: append([]string(nil), columns...),
		Rows:    make([]Row, 0, len(records)),
	}

	for i, rec := range records {
		if len(rec) < len(columns) {
			return nil, &MalformedTableError{Table: name, Row: i, Column: columns[len(rec)], Reason: "missing value"}
		}
		if len(rec) > len(columns) {
			return nil, &MalformedTableError{Table: name, Row: i, Column: "", Reason: "more values than columns"}
		}
		row := make(Row, len(columns))
		for j, col := range columns {
			row[col] = rec[j]
		}
		t.Rows = append(t.Rows, row)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks that column names are unique and non-empty and that every
// row carries a value for every column.
func (t *Table) Validate() error {
	seen := make(map[string]bool, len(t.Columns))
	for _, col := range t.Columns {
		if strings.TrimSpace(col) == "" {
			return &MalformedTableError{Table: t.Name, Row: -1, Column: col, Reason: "empty column name"}
		}
		if seen[col] {
			return &MalformedTableError{Table: t.Name, Row: -1, Column: col, Reason: "duplicate column name"}
		}
		seen[col] = true
	}

	for i, row := range t.Rows {
		for _, col := range t.Columns {
			if _, ok := row[col]; !ok {
				return &MalformedTableError{Table: t.Name, Row: i, Column: col, Reason: "missing value"}
			}
		}
	}
	return nil
}

// Header returns a copy of the column names
func (t *Table) Header() []string {
	return append([]string(nil), t.Columns...)
}

// Len returns the number of data rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// Values returns row i's values in column order
func (t *Table) Values(i int) []string {
	row := t.Rows[i]
	out := make([]string, len(t.Columns))
	for j, col := range t.Columns {
		out[j] = row[col]
	}
	return out
}

// Records returns all rows as positional records in column order
func (t *Table) Records() [][]string {
	out := make([][]string, len(t.Rows))
	for i := range t.Rows {
		out[i] = t.Values(i)
	}
	return out
}

// HasColumn reports whether the table declares col
func (t *Table) HasColumn(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}
