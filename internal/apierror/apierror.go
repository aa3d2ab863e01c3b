// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, store errors, etc.).
package apierror

import (
	"errors"
	"net/http"

	"github.com/josebazania/restaurantepos/internal/model"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

var classes = []struct {
	class  error
	status int
	code   string
}{
	{model.ErrValidation, http.StatusUnprocessableEntity, "validation"},
	{model.ErrNotFound, http.StatusNotFound, "not_found"},
	{model.ErrPrecondition, http.StatusConflict, "precondition"},
	{model.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
}

// FromError maps a domain error to its HTTP status and envelope. Anything
// that is not a domain error becomes an opaque 500.
func FromError(err error) (int, *APIError) {
	var de *model.DomainError
	if errors.As(err, &de) {
		for _, c := range classes {
			if errors.Is(err, c.class) {
				return c.status, &APIError{Detail: de.Error(), Code: c.code}
			}
		}
	}
	return http.StatusInternalServerError, New("Error interno del servidor")
}
