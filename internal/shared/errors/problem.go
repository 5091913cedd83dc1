// Package errors renders failures as RFC 7807 problem documents.
package errors

import (
	"fmt"
	"net/http"
)

// ProblemDetail is the application/problem+json body. Kind-specific fields
// such as the offending field list live under Extensions.
type ProblemDetail struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Status     int            `json:"status"`
	Detail     string         `json:"detail,omitempty"`
	Instance   string         `json:"instance,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (p ProblemDetail) Error() string {
	if p.Detail != "" {
		return fmt.Sprintf("%s: %s", p.Title, p.Detail)
	}
	return p.Title
}

func (p ProblemDetail) WithDetail(detail string) ProblemDetail {
	p.Detail = detail
	return p
}

// WithExtension copies the extension map, so templates are never mutated.
func (p ProblemDetail) WithExtension(key string, value any) ProblemDetail {
	extensions := make(map[string]any, len(p.Extensions)+1)
	for k, v := range p.Extensions {
		extensions[k] = v
	}
	extensions[key] = value
	p.Extensions = extensions
	return p
}

const (
	TypeValidation       = "/problems/validation-error"
	TypeInvalidReference = "/problems/invalid-reference"
	TypeNotFound         = "/problems/not-found"
	TypeConflict         = "/problems/conflict"
	TypeInternal         = "/problems/internal-error"
	TypeUnauthorized     = "/problems/unauthorized"
	TypeBadRequest       = "/problems/bad-request"
)

// Templates the HTTP layer fills in directly.
var (
	ErrBadRequest   = ProblemDetail{Type: TypeBadRequest, Title: "Bad Request", Status: http.StatusBadRequest}
	ErrUnauthorized = ProblemDetail{Type: TypeUnauthorized, Title: "Unauthorized", Status: http.StatusUnauthorized}
	ErrInternal     = ProblemDetail{Type: TypeInternal, Title: "Internal Server Error", Status: http.StatusInternalServerError}
)

// NewValidationProblem lists every field the entity failed on.
func NewValidationProblem(entity string, fields []string) ProblemDetail {
	return ProblemDetail{Type: TypeValidation, Title: "Validation Error", Status: http.StatusBadRequest}.
		WithDetail(fmt.Sprintf("%s is missing or has invalid fields", entity)).
		WithExtension("entity", entity).
		WithExtension("fields", fields)
}

// NewReferenceProblem reports a write that named a customer or product that does not exist.
func NewReferenceProblem(kind string, id int64) ProblemDetail {
	return ProblemDetail{Type: TypeInvalidReference, Title: "Invalid Reference", Status: http.StatusBadRequest}.
		WithDetail(fmt.Sprintf("%s %d does not exist", kind, id)).
		WithExtension("kind", kind).
		WithExtension("id", id)
}

func NewNotFoundProblem(resource string, id int64) ProblemDetail {
	return ProblemDetail{Type: TypeNotFound, Title: "Resource Not Found", Status: http.StatusNotFound}.
		WithDetail(fmt.Sprintf("%s with identifier '%d' not found", resource, id)).
		WithExtension("resourceType", resource).
		WithExtension("identifier", id)
}

// NewInUseProblem refuses deleting a customer or product that orders still point at.
func NewInUseProblem(resource string, id int64, references int64) ProblemDetail {
	return ProblemDetail{Type: TypeConflict, Title: "Conflict", Status: http.StatusConflict}.
		WithDetail(fmt.Sprintf("%s %d is referenced by %d order(s)", resource, id, references)).
		WithExtension("resourceType", resource).
		WithExtension("identifier", id).
		WithExtension("references", references)
}
