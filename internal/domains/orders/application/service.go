package application

import (
	"context"

	"github.com/Apurer/shop-backoffice/internal/domains/orders/application/types"
	"github.com/Apurer/shop-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/shop-backoffice/internal/domains/orders/ports"
	"github.com/Apurer/shop-backoffice/internal/shared/apperr"
)

// Service orchestrates order use cases: reference validation, price derivation and the status lifecycle.
type Service struct {
	repo      ports.Repository
	customers ports.CustomerDirectory
	products  ports.ProductCatalog
}

func NewService(repo ports.Repository, customers ports.CustomerDirectory, products ports.ProductCatalog) *Service {
	return &Service{repo: repo, customers: customers, products: products}
}

// CreateOrder validates both references before any write and stores the derived price.
func (s *Service) CreateOrder(ctx context.Context, input types.OrderInput) (*types.OrderView, error) {
	order, refs, err := s.build(ctx, input, domain.StatusPending)
	if err != nil {
		return nil, err
	}
	saved, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, mapError("orders.create", 0, err)
	}
	return refs.project(saved), nil
}

// UpdateOrder re-validates and re-prices the whole order. An empty status keeps the current one.
func (s *Service) UpdateOrder(ctx context.Context, id int64, input types.OrderInput) (*types.OrderView, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError("orders.get", id, err)
	}
	order, refs, err := s.build(ctx, input, existing.Status)
	if err != nil {
		return nil, err
	}
	order.ID = existing.ID
	order.Metadata = existing.Metadata
	saved, err := s.repo.Update(ctx, order)
	if err != nil {
		return nil, mapError("orders.update", id, err)
	}
	return refs.project(saved), nil
}

// SetStatus is UpdateOrder with every other field taken from the stored record.
func (s *Service) SetStatus(ctx context.Context, id int64, status string) (*types.OrderView, error) {
	if _, err := domain.ParseStatus(status); err != nil {
		return nil, apperr.NewValidation("order", "status")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError("orders.get", id, err)
	}
	return s.UpdateOrder(ctx, id, types.OrderInput{
		CustomerID: existing.CustomerID,
		ProductID:  existing.ProductID,
		Quantity:   existing.Quantity,
		Date:       domain.FormatDate(existing.Date),
		Status:     status,
	})
}

// DeleteOrder reports whether a record was removed; a missing id is not an error.
func (s *Service) DeleteOrder(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, mapError("orders.delete", id, err)
	}
	return deleted, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*types.OrderView, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError("orders.get", id, err)
	}
	refs := newNameIndex()
	if customer, ok, err := s.customers.FindCustomer(ctx, order.CustomerID); err != nil {
		return nil, apperr.Persistence("orders.customer_lookup", err)
	} else if ok {
		refs.customers[customer.ID] = customer.Name
	}
	if product, ok, err := s.products.FindProduct(ctx, order.ProductID); err != nil {
		return nil, apperr.Persistence("orders.product_lookup", err)
	} else if ok {
		refs.products[product.ID] = product.Name
	}
	return refs.project(order), nil
}

// ListOrders joins every order to current customer and product names, then filters.
func (s *Service) ListOrders(ctx context.Context, filter types.ListFilter) ([]*types.OrderView, error) {
	match, err := compileFilter(filter)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError("orders.list", 0, err)
	}
	refs, err := s.loadNameIndex(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*types.OrderView, 0, len(orders))
	for _, order := range orders {
		view := refs.project(order)
		if match(view) {
			views = append(views, view)
		}
	}
	if filter.Descending {
		reverse(views)
	}
	return views, nil
}

// build turns input into a storable order. Input errors come first, then the customer
// reference, then the product reference; nothing is written on failure.
func (s *Service) build(ctx context.Context, input types.OrderInput, fallback domain.Status) (*domain.Order, nameIndex, error) {
	var fields []string
	date, err := domain.ParseDate(input.Date)
	if err != nil {
		fields = append(fields, "date")
	}
	status := fallback
	if input.Status != "" {
		parsed, err := domain.ParseStatus(input.Status)
		if err != nil {
			fields = append(fields, "status")
		}
		status = parsed
	}
	if err := apperr.NewValidation("order", fields...); err != nil {
		return nil, nameIndex{}, err
	}

	customer, ok, err := s.customers.FindCustomer(ctx, input.CustomerID)
	if err != nil {
		return nil, nameIndex{}, apperr.Persistence("orders.customer_lookup", err)
	}
	if !ok {
		return nil, nameIndex{}, &apperr.ReferenceError{Kind: "customer", ID: input.CustomerID}
	}
	product, ok, err := s.products.FindProduct(ctx, input.ProductID)
	if err != nil {
		return nil, nameIndex{}, apperr.Persistence("orders.product_lookup", err)
	}
	if !ok {
		return nil, nameIndex{}, &apperr.ReferenceError{Kind: "product", ID: input.ProductID}
	}

	qty := domain.NormalizeQuantity(input.Quantity)
	order := &domain.Order{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Quantity:   qty,
		Price:      domain.LinePrice(product.UnitPrice, qty),
		Date:       date,
		Status:     status,
	}
	refs := newNameIndex()
	refs.customers[customer.ID] = customer.Name
	refs.products[product.ID] = product.Name
	return order, refs, nil
}

var _ ports.Service = (*Service)(nil)
