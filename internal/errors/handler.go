package errors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/go-chi/render"

	"seodash/internal/dataset"
	"seodash/internal/exporter"
	"seodash/internal/infrastructure"
	"seodash/internal/utm"
)

// Common error types following RFC 7807
const (
	TypeValidation       = "/errors/validation"
	TypeNotFound         = "/errors/not-found"
	TypeMethodNotAllowed = "/errors/method-not-allowed"
	TypeRateLimit        = "/errors/rate-limit"
	TypeInternal         = "/errors/internal"
	TypeServiceDown      = "/errors/service-unavailable"
	TypeTimeout          = "/errors/timeout"
	TypeBadRequest       = "/errors/bad-request"
)

// Domain-specific error types
const (
	TypeInvalidURL     = "/errors/utm/invalid-url"
	TypeUnknownChannel = "/errors/utm/unknown-channel"
	TypeDataNotFound   = "/errors/data/not-found"
	TypeMalformedTable = "/errors/data/malformed-table"
	TypeWriteFailed    = "/errors/export/write-failed"
)

// ErrorHandler provides centralized error handling
type ErrorHandler struct {
	logger       *slog.Logger
	includeStack bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *slog.Logger, includeStack bool) *ErrorHandler {
	return &ErrorHandler{
		logger:       logger.With(slog.String("component", "error_handler")),
		includeStack: includeStack,
	}
}

// HandleError converts any error to RFC 7807 format and responds
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	traceID := infrastructure.GetTraceID(r.Context())
	problem := h.ErrorToProblem(err, r)

	level := slog.LevelWarn
	if problem.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.Log(r.Context(), level, "request failed",
		slog.String("error", err.Error()),
		slog.Int("status", problem.Status),
		slog.String("type", problem.Type),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("remote_addr", r.RemoteAddr),
	)

	if traceID != "" {
		problem.WithExtension("trace_id", traceID)
	}
	if h.includeStack && problem.Status >= http.StatusInternalServerError {
		problem.WithExtension("stack", getStackTrace())
	}

	render.Render(w, r, problem)
}

// ErrorToProblem converts an error to RFC 7807 Problem Details
func (h *ErrorHandler) ErrorToProblem(err error, r *http.Request) *ProblemDetails {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NewProblemDetails(
			http.StatusGatewayTimeout,
			TypeTimeout,
			"Request Timeout",
			"The request took too long to process and was cancelled",
			r.URL.Path,
		)
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return h.apiErrorToProblem(apiErr, r)
	}

	var (
		urlErr       *utm.InvalidURLError
		channelErr   *utm.UnknownChannelError
		malformedErr *dataset.MalformedTableError
		writeErr     *exporter.WriteError
	)

	switch {
	case errors.As(err, &urlErr):
		return NewProblemDetails(
			http.StatusBadRequest,
			TypeInvalidURL,
			"Invalid URL",
			urlErr.Error(),
			r.URL.Path,
		).WithExtension("url", urlErr.URL)

	case errors.Is(err, utm.ErrInvalidURL):
		return NewProblemDetails(http.StatusBadRequest, TypeInvalidURL, "Invalid URL", err.Error(), r.URL.Path)

	case errors.As(err, &channelErr):
		return NewProblemDetails(
			http.StatusNotFound,
			TypeUnknownChannel,
			"Unknown Channel",
			channelErr.Error(),
			r.URL.Path,
		).WithExtension("channel", channelErr.Channel)

	case errors.Is(err, utm.ErrUnknownChannel):
		return NewProblemDetails(http.StatusNotFound, TypeUnknownChannel, "Unknown Channel", err.Error(), r.URL.Path)

	case errors.Is(err, dataset.ErrTableNotFound):
		return NewProblemDetails(
			http.StatusNotFound,
			TypeDataNotFound,
			"Table Not Found",
			err.Error(),
			r.URL.Path,
		)

	case errors.As(err, &malformedErr):
		return NewProblemDetails(
			http.StatusUnprocessableEntity,
			TypeMalformedTable,
			"Malformed Table",
			malformedErr.Error(),
			r.URL.Path,
		).WithExtension("table", malformedErr.Table).
			WithExtension("column", malformedErr.Column)

	case errors.Is(err, dataset.ErrMalformedTable):
		return NewProblemDetails(http.StatusUnprocessableEntity, TypeMalformedTable, "Malformed Table", err.Error(), r.URL.Path)

	case errors.As(err, &writeErr), errors.Is(err, exporter.ErrWrite):
		// the destination path stays in the logs only
		return NewProblemDetails(
			http.StatusInternalServerError,
			TypeWriteFailed,
			"Export Failed",
			"The export could not be written",
			r.URL.Path,
		)

	default:
		return NewProblemDetails(
			http.StatusInternalServerError,
			TypeInternal,
			"Internal Server Error",
			"An unexpected error occurred while processing your request",
			r.URL.Path,
		)
	}
}

// apiErrorToProblem converts APIError to ProblemDetails
func (h *ErrorHandler) apiErrorToProblem(apiErr *APIError, r *http.Request) *ProblemDetails {
	problemType := TypeInternal
	switch apiErr.ErrorCode {
	case CodeValidationFailed:
		problemType = TypeValidation
	case CodeInvalidRequest:
		problemType = TypeBadRequest
	case CodeNotFound:
		problemType = TypeNotFound
	case CodeRateLimited:
		problemType = TypeRateLimit
	case CodeUnavailable:
		problemType = TypeServiceDown
	}

	problem := NewProblemDetails(
		apiErr.StatusCode,
		problemType,
		http.StatusText(apiErr.StatusCode),
		apiErr.Message,
		r.URL.Path,
	).WithExtension("error_code", apiErr.ErrorCode)

	switch details := apiErr.Details.(type) {
	case nil:
	case ValidationErrors:
		problem.WithExtension("errors", details.Errors)
	default:
		problem.WithExtension("details", details)
	}

	return problem
}

// HandlePanic recovers from panics and returns RFC 7807 error
func (h *ErrorHandler) HandlePanic(w http.ResponseWriter, r *http.Request, recovered interface{}) {
	traceID := infrastructure.GetTraceID(r.Context())

	h.logger.ErrorContext(r.Context(), "panic recovered",
		slog.Any("panic", recovered),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("stack", string(debug.Stack())),
	)

	problem := NewProblemDetails(
		http.StatusInternalServerError,
		TypeInternal,
		"Internal Server Error",
		"An unexpected error occurred",
		r.URL.Path,
	)
	if traceID != "" {
		problem.WithExtension("trace_id", traceID)
	}

	if h.includeStack {
		problem.WithExtension("panic", fmt.Sprintf("%v", recovered))
		problem.WithExtension("stack", getStackTrace())
	}

	render.Render(w, r, problem)
}

// NotFound returns a standard 404 error
func (h *ErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	problem := NewProblemDetails(
		http.StatusNotFound,
		TypeNotFound,
		"Not Found",
		"The requested resource was not found",
		r.URL.Path,
	)
	if traceID := infrastructure.GetTraceID(r.Context()); traceID != "" {
		problem.WithExtension("trace_id", traceID)
	}

	render.Render(w, r, problem)
}

// MethodNotAllowed returns a standard 405 error
func (h *ErrorHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	problem := NewProblemDetails(
		http.StatusMethodNotAllowed,
		TypeMethodNotAllowed,
		"Method Not Allowed",
		fmt.Sprintf("Method %s is not allowed for this endpoint", r.Method),
		r.URL.Path,
	)
	if traceID := infrastructure.GetTraceID(r.Context()); traceID != "" {
		problem.WithExtension("trace_id", traceID)
	}

	render.Render(w, r, problem)
}

// getStackTrace returns the current goroutine's stack trace
func getStackTrace() string {
	buf := make([]byte, 1024*8)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}
