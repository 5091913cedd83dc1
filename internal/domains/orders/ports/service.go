package ports

import (
	"context"

	ordertypes "github.com/Apurer/shop-backoffice/internal/domains/orders/application/types"
)

// Service defines the order use cases exposed to adapters.
type Service interface {
	CreateOrder(ctx context.Context, input ordertypes.OrderInput) (*ordertypes.OrderView, error)
	UpdateOrder(ctx context.Context, id int64, input ordertypes.OrderInput) (*ordertypes.OrderView, error)
	SetStatus(ctx context.Context, id int64, status string) (*ordertypes.OrderView, error)
	DeleteOrder(ctx context.Context, id int64) (bool, error)
	GetOrder(ctx context.Context, id int64) (*ordertypes.OrderView, error)
	ListOrders(ctx context.Context, filter ordertypes.ListFilter) ([]*ordertypes.OrderView, error)
}
