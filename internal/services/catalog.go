package services

import "seodash/internal/dataset"

// TableCatalog is the read-only view of loaded tables the services need.
// *dataset.Catalog satisfies it.
type TableCatalog interface {
	Get(name string) (*dataset.Table, error)
	Title(name string) string
	Names() []string
	Summaries() []dataset.Summary
}

var _ TableCatalog = (*dataset.Catalog)(nil)
