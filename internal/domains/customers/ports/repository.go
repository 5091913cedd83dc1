package ports

import (
	"context"
	"errors"

	"github.com/Apurer/shop-backoffice/internal/domains/customers/domain"
)

var ErrNotFound = errors.New("customer not found")

// Repository persists customers.
type Repository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	// Delete reports whether a record was removed.
	Delete(ctx context.Context, id int64) (bool, error)
	// List returns customers ascending by id.
	List(ctx context.Context) ([]*domain.Customer, error)
}

// ReferenceCounter answers how many orders still point at a customer.
type ReferenceCounter interface {
	CountByCustomer(ctx context.Context, customerID int64) (int64, error)
}
