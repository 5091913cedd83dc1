package ports

import (
	"context"

	catalogdomain "github.com/Apurer/shop-backoffice/internal/domains/catalog/domain"
	customerdomain "github.com/Apurer/shop-backoffice/internal/domains/customers/domain"
	ordertypes "github.com/Apurer/shop-backoffice/internal/domains/orders/application/types"
	reportingdomain "github.com/Apurer/shop-backoffice/internal/domains/reporting/domain"
)

// OrderSource is the order projection; reporting never reads orders any other way.
type OrderSource interface {
	ListOrders(ctx context.Context, filter ordertypes.ListFilter) ([]*ordertypes.OrderView, error)
}

type ProductSource interface {
	ListProducts(ctx context.Context) ([]*catalogdomain.Product, error)
}

type CustomerSource interface {
	ListCustomers(ctx context.Context) ([]*customerdomain.Customer, error)
}

// Service exposes the dashboard aggregates.
type Service interface {
	Counts(ctx context.Context) (reportingdomain.Counts, error)
	OrdersByMonth(ctx context.Context) (reportingdomain.MonthlyHistogram, error)
	CategoryDistribution(ctx context.Context) (map[string]int, error)
	RecentOrders(ctx context.Context, search, status string, limit int) ([]*ordertypes.OrderView, error)
}
