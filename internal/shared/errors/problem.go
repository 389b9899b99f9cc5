// Package errors renders failures as RFC 7807 Problem Details.
package errors

import (
	"fmt"
	"maps"
	"net/http"
)

// ProblemDetail is an RFC 7807 problem document.
// See: https://www.rfc-editor.org/rfc/rfc7807
type ProblemDetail struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Status     int            `json:"status"`
	Detail     string         `json:"detail,omitempty"`
	Instance   string         `json:"instance,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (p ProblemDetail) Error() string {
	if p.Detail == "" {
		return p.Title
	}
	return fmt.Sprintf("%s: %s", p.Title, p.Detail)
}

// WithDetail returns a copy with the given detail message.
func (p ProblemDetail) WithDetail(detail string) ProblemDetail {
	p.Detail = detail
	return p
}

// WithExtension returns a copy carrying an extra property. The receiver's
// extension map is never mutated.
func (p ProblemDetail) WithExtension(key string, value any) ProblemDetail {
	ext := make(map[string]any, len(p.Extensions)+1)
	maps.Copy(ext, p.Extensions)
	ext[key] = value
	p.Extensions = ext
	return p
}

const (
	TypeValidation        = "/problems/validation-error"
	TypeNotFound          = "/problems/not-found"
	TypeConflict          = "/problems/conflict"
	TypeInvalidTransition = "/problems/invalid-transition"
	TypeInternal          = "/problems/internal-error"
	TypeUnauthorized      = "/problems/unauthorized"
	TypeForbidden         = "/problems/forbidden"
	TypeBadRequest        = "/problems/bad-request"
)

func template(typ, title string, status int) ProblemDetail {
	return ProblemDetail{Type: typ, Title: title, Status: status}
}

var (
	ErrValidation        = template(TypeValidation, "Validation Error", http.StatusBadRequest)
	ErrBadRequest        = template(TypeBadRequest, "Bad Request", http.StatusBadRequest)
	ErrNotFound          = template(TypeNotFound, "Resource Not Found", http.StatusNotFound)
	ErrConflict          = template(TypeConflict, "Conflict", http.StatusConflict)
	ErrInvalidTransition = template(TypeInvalidTransition, "Invalid Transition", http.StatusBadRequest)
	ErrUnauthorized      = template(TypeUnauthorized, "Unauthorized", http.StatusUnauthorized)
	ErrForbidden         = template(TypeForbidden, "Forbidden", http.StatusForbidden)
	ErrInternal          = template(TypeInternal, "Internal Server Error", http.StatusInternalServerError)
)
