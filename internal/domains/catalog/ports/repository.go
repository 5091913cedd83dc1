package ports

import (
	"context"
	"errors"

	"github.com/Apurer/shop-backoffice/internal/domains/catalog/domain"
)

var ErrNotFound = errors.New("product not found")

// Repository persists catalog products.
type Repository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// Delete reports whether a record was removed.
	Delete(ctx context.Context, id int64) (bool, error)
	// List returns products ascending by id.
	List(ctx context.Context) ([]*domain.Product, error)
}

// ReferenceCounter answers how many orders still point at a product.
type ReferenceCounter interface {
	CountByProduct(ctx context.Context, productID int64) (int64, error)
}
