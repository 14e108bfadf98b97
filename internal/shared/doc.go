// Package shared holds helpers used across seodash packages that belong to
// no single domain layer.
//
// The testutil subpackage provides a buffered slog handler so tests can
// assert on log messages and attributes, including those added through
// Logger.With by component loggers.
package shared
