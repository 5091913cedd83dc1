package ports

import (
	"context"
	"errors"

	"github.com/Apurer/shop-backoffice/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository persists orders.
type Repository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// Delete reports whether a record was removed.
	Delete(ctx context.Context, id int64) (bool, error)
	// List returns orders ascending by id.
	List(ctx context.Context) ([]*domain.Order, error)
	CountByCustomer(ctx context.Context, customerID int64) (int64, error)
	CountByProduct(ctx context.Context, productID int64) (int64, error)
}
