package dataset

import (
	"fmt"
	"strings"
	"time"
)

// Summary describes a loaded table without its rows
type Summary struct {
	Name     string    `json:"name"`
	Title    string    `json:"title"`
	Columns  []string  `json:"columns"`
	RowCount int       `json:"row_count"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loaded_at"`
}

var nowFunc = time.Now

type entry struct {
	table  *Table
	title  string
	source string
}

// Catalog is the read-only set of tables loaded for the process
type Catalog struct {
	entries  map[string]entry
	order    []string
	loadedAt time.Time
}

// NewCatalog builds a catalog from already loaded tables, keyed by Table.Name.
// Tables are shown in the order given.
func NewCatalog(tables ...*Table) (*Catalog, error) {
	c := &Catalog{
		entries:  make(map[string]entry, len(tables)),
		loadedAt: nowFunc(),
	}
	for _, t := range tables {
		if err := c.add(t, titleFor(t.Name), ""); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) add(t *Table, title, source string) error {
	if t == nil {
		return fmt.Errorf("nil table")
	}
	if _, exists := c.entries[t.Name]; exists {
		return fmt.Errorf("duplicate table %q", t.Name)
	}
	if err := t.Validate(); err != nil {
		return err
	}
	c.entries[t.Name] = entry{table: t, title: title, source: source}
	c.order = append(c.order, t.Name)
	return nil
}

// Get returns the named table
func (c *Catalog) Get(name string) (*Table, error) {
	e, ok := c.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, name)
	}
	return e.table, nil
}

// Title returns the display title of the named table
func (c *Catalog) Title(name string) string {
	if e, ok := c.entries[name]; ok && e.title != "" {
		return e.title
	}
	return titleFor(name)
}

// Names returns table names in display order
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// Summaries describes every table in display order
func (c *Catalog) Summaries() []Summary {
	out := make([]Summary, 0, len(c.order))
	for _, name := range c.order {
		e := c.entries[name]
		out = append(out, Summary{
			Name:     name,
			Title:    c.Title(name),
			Columns:  e.table.Header(),
			RowCount: e.table.Len(),
			Source:   e.source,
			LoadedAt: c.loadedAt,
		})
	}
	return out
}

func titleFor(name string) string {
	if name == "" {
		return ""
	}
	for _, s := range DefaultSchemas() {
		if s.Name == name {
			return s.Title
		}
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
