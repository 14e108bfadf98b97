// Package errors maps seodash failures to HTTP responses.
//
// Core packages report failures as typed errors (utm.InvalidURLError,
// dataset.MalformedTableError, exporter.WriteError and their sentinels).
// ErrorHandler matches them with errors.Is and errors.As and renders an
// RFC 7807 problem document through go-chi/render:
//
//	invalid URL       400 /errors/utm/invalid-url
//	unknown channel   404 /errors/utm/unknown-channel
//	table not found   404 /errors/data/not-found
//	malformed table   422 /errors/data/malformed-table
//	write failure     500 /errors/export/write-failed
//	validation        400 /errors/validation
//
// APIError carries failures raised by the transport layer itself, such as
// request validation and rate limiting.
package errors
