// Package dataset holds the tabular data sets shown on the dashboard.
//
// A Table is an ordered list of column names plus rows keyed by column name.
// Tables are loaded once at start-up from static files in the data directory
// (CSV, or the first sheet of an XLSX workbook) and collected into a Catalog,
// a read-only handle that the host passes into every service that needs data.
//
// Tables are never mutated after loading; accessors hand out copies.
package dataset
