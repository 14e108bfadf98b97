package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "seodash/internal/errors"
	api "seodash/pkg/contracts/api/v1"
)

// DefaultMaxBodySize caps JSON request bodies
const DefaultMaxBodySize = 1 << 20

// Validator decodes and validates request DTOs using struct tags
type Validator struct {
	validate    *validator.Validate
	logger      *slog.Logger
	maxBodySize int64
	// messages overrides the generated text for "field.tag" pairs
	messages map[string]string
}

// NewValidator creates a validator that reports JSON field names
func NewValidator(logger *slog.Logger) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validate:    v,
		logger:      logger.With(slog.String("component", "validator")),
		maxBodySize: DefaultMaxBodySize,
		messages: map[string]string{
			"url.required": api.MsgMissingURL,
		},
	}
}

// ValidateStruct validates a struct and returns an *errors.APIError listing
// every failed field, or nil
func (v *Validator) ValidateStruct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apierrors.InvalidRequestWithError(err)
	}

	validationErrors := make([]apierrors.ValidationError, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		validationErrors = append(validationErrors, apierrors.ValidationError{
			Field:   fe.Field(),
			Message: v.formatValidationError(fe),
		})
	}
	return apierrors.NewValidationErrors(validationErrors)
}

// DecodeJSON reads a size-limited JSON body into dst and validates it
func (v *Validator) DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, v.maxBodySize)

	if err := render.DecodeJSON(r.Body, dst); err != nil {
		v.logger.DebugContext(r.Context(), "request body rejected",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		return apierrors.InvalidRequestWithError(err)
	}

	return v.ValidateStruct(dst)
}

// QueryInt parses an optional integer query parameter within [min, max]
func (v *Validator) QueryInt(r *http.Request, param string, min, max, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierrors.ErrValidation(param, fmt.Sprintf("%s must be a valid integer", param))
	}
	if n < min || n > max {
		return 0, apierrors.ErrValidation(param, fmt.Sprintf("%s must be between %d and %d", param, min, max))
	}
	return n, nil
}

// formatValidationError formats validation error messages
func (v *Validator) formatValidationError(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	if msg, ok := v.messages[field+"."+fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_without":
		return fmt.Sprintf("%s is required when %s is not set", field, strings.ToLower(param))
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(param, " ", ", "))
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
