package application

import (
	"context"
	"strings"

	"github.com/Apurer/shop-backoffice/internal/domains/orders/application/types"
	"github.com/Apurer/shop-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/shop-backoffice/internal/shared/apperr"
)

// nameIndex maps referenced ids to display names for the read-side join.
type nameIndex struct {
	customers map[int64]string
	products  map[int64]string
}

func newNameIndex() nameIndex {
	return nameIndex{customers: map[int64]string{}, products: map[int64]string{}}
}

func (s *Service) loadNameIndex(ctx context.Context) (nameIndex, error) {
	refs := newNameIndex()
	customers, err := s.customers.ListCustomers(ctx)
	if err != nil {
		return refs, apperr.Persistence("orders.customer_list", err)
	}
	for _, customer := range customers {
		refs.customers[customer.ID] = customer.Name
	}
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return refs, apperr.Persistence("orders.product_list", err)
	}
	for _, product := range products {
		refs.products[product.ID] = product.Name
	}
	return refs, nil
}

// project is the only place an order is turned into a view.
func (ix nameIndex) project(order *domain.Order) *types.OrderView {
	view := &types.OrderView{
		ID:           order.ID,
		CustomerID:   order.CustomerID,
		CustomerName: types.UnknownName,
		ProductID:    order.ProductID,
		ProductName:  types.UnknownName,
		Quantity:     order.Quantity,
		Price:        order.Price,
		Date:         order.Date,
		Status:       order.Status,
	}
	if name, ok := ix.customers[order.CustomerID]; ok {
		view.CustomerName = name
	}
	if name, ok := ix.products[order.ProductID]; ok {
		view.ProductName = name
	}
	return view
}

func compileFilter(filter types.ListFilter) (func(*types.OrderView) bool, error) {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	var status domain.Status
	if raw := strings.TrimSpace(filter.Status); raw != "" && !strings.EqualFold(raw, domain.StatusFilterAll) {
		parsed, err := domain.ParseStatus(raw)
		if err != nil {
			return nil, apperr.NewValidation("filter", "status")
		}
		status = parsed
	}
	return func(view *types.OrderView) bool {
		if search != "" && !strings.Contains(strings.ToLower(view.CustomerName), search) {
			return false
		}
		return status == "" || view.Status == status
	}, nil
}

func reverse(views []*types.OrderView) {
	for i, j := 0, len(views)-1; i < j; i, j = i+1, j-1 {
		views[i], views[j] = views[j], views[i]
	}
}
