package domain

import "time"

// TableSummary describes a loaded data set without its rows
type TableSummary struct {
	Name     string    `json:"name"`
	Title    string    `json:"title"`
	Columns  []string  `json:"columns"`
	RowCount int       `json:"row_count"`
	Source   string    `json:"source,omitempty"`
	LoadedAt time.Time `json:"loaded_at"`
}

// TableView is one page of a data set in column order
type TableView struct {
	Name     string     `json:"name"`
	Title    string     `json:"title"`
	Columns  []string   `json:"columns"`
	Rows     [][]string `json:"rows"`
	Offset   int        `json:"offset"`
	RowCount int        `json:"row_count"`
	Total    int        `json:"total"`
}
