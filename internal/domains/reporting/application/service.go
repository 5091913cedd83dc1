package application

import (
	"context"

	ordertypes "github.com/Apurer/shop-backoffice/internal/domains/orders/application/types"
	"github.com/Apurer/shop-backoffice/internal/domains/reporting/domain"
	"github.com/Apurer/shop-backoffice/internal/domains/reporting/ports"
)

// Service computes dashboard statistics on demand from the entity services.
type Service struct {
	orders    ports.OrderSource
	products  ports.ProductSource
	customers ports.CustomerSource
}

func NewService(orders ports.OrderSource, products ports.ProductSource, customers ports.CustomerSource) *Service {
	return &Service{orders: orders, products: products, customers: customers}
}

func (s *Service) Counts(ctx context.Context) (domain.Counts, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return domain.Counts{}, err
	}
	customers, err := s.customers.ListCustomers(ctx)
	if err != nil {
		return domain.Counts{}, err
	}
	orders, err := s.orders.ListOrders(ctx, ordertypes.ListFilter{})
	if err != nil {
		return domain.Counts{}, err
	}
	return domain.Counts{Products: len(products), Customers: len(customers), Orders: len(orders)}, nil
}

func (s *Service) OrdersByMonth(ctx context.Context) (domain.MonthlyHistogram, error) {
	views, err := s.orders.ListOrders(ctx, ordertypes.ListFilter{})
	if err != nil {
		return domain.MonthlyHistogram{}, err
	}
	return domain.OrdersByMonth(views), nil
}

func (s *Service) CategoryDistribution(ctx context.Context) (map[string]int, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(products))
	for _, product := range products {
		categories = append(categories, product.Category)
	}
	return domain.CategoryDistribution(categories), nil
}

// RecentOrders filters through the order projection, then keeps the newest limit entries.
func (s *Service) RecentOrders(ctx context.Context, search, status string, limit int) ([]*ordertypes.OrderView, error) {
	views, err := s.orders.ListOrders(ctx, ordertypes.ListFilter{Search: search, Status: status})
	if err != nil {
		return nil, err
	}
	return domain.RecentOrders(views, limit), nil
}

var _ ports.Service = (*Service)(nil)
