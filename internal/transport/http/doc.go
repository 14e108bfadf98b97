// Package http implements the HTTP handlers of the dashboard. Handlers are a
// thin layer over the services: they parse and validate the request, call
// one service method and render the result.
//
// # Routes
//
//	GET  /                              HTML dashboard
//	GET  /api/tables                    table summaries
//	GET  /api/tables/{name}             columns and rows, paged with offset/limit
//	GET  /api/exports                   offered downloads
//	GET  /api/exports/{name}.{format}   csv, pdf or xlsx attachment
//	GET  /api/utm/channels              channel presets
//	GET  /api/utm/channels/{channel}    one preset
//	POST /api/utm/links                 build a tracking link
//	POST /api/utm/links/download        the same link as utm_link.txt
//	POST /api/logs                      log entry reported by the page
//
// # Responses
//
// Successful JSON responses use one envelope:
//
//	{"status": "success", "data": ..., "count": 3}
//
// Failures are RFC 7807 problem documents produced by errors.ErrorHandler,
// so handlers pass service errors through unchanged.
package http
