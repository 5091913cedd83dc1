package ports

import (
	"context"

	"github.com/Apurer/shop-backoffice/internal/domains/customers/domain"
	"github.com/Apurer/shop-backoffice/internal/shared/media"
)

// Service exposes customer use cases to adapters.
type Service interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer, image *media.Upload) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, customer *domain.Customer, image *media.Upload) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) (bool, error)
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
}
