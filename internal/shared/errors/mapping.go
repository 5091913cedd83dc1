package errors

import (
	"errors"
	"fmt"

	"github.com/Apurer/shop-backoffice/internal/shared/apperr"
)

// MapDomainError translates the apperr taxonomy into problem details.
// Persistence failures are reported without their cause; the cause is logged upstream.
func MapDomainError(err error) (ProblemDetail, bool) {
	if err == nil {
		return ProblemDetail{}, false
	}
	var (
		validation  *apperr.ValidationError
		reference   *apperr.ReferenceError
		notFound    *apperr.NotFoundError
		inUse       *apperr.InUseError
		persistence *apperr.PersistenceError
	)
	switch {
	case errors.As(err, &validation):
		return NewValidationProblem(validation.Entity, validation.Fields), true
	case errors.As(err, &reference):
		return NewReferenceProblem(reference.Kind, reference.ID), true
	case errors.As(err, &notFound):
		return NewNotFoundProblem(notFound.Resource, notFound.ID), true
	case errors.As(err, &inUse):
		return NewInUseProblem(inUse.Resource, inUse.ID, inUse.References), true
	case errors.As(err, &persistence):
		return ErrInternal.WithDetail(fmt.Sprintf("%s failed", persistence.Op)), true
	case errors.Is(err, apperr.ErrUnauthenticated):
		return ErrUnauthorized.WithDetail(err.Error()), true
	}
	return ProblemDetail{}, false
}
