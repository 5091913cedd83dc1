package application

import (
	"errors"

	"github.com/Apurer/shop-backoffice/internal/domains/customers/ports"
	"github.com/Apurer/shop-backoffice/internal/shared/apperr"
)

func mapError(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrNotFound) {
		return &apperr.NotFoundError{Resource: "customer", ID: id}
	}
	return apperr.Persistence(op, err)
}
