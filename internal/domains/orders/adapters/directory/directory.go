// Package directory resolves order references against the customer and catalog stores.
package directory

import (
	"context"
	"errors"

	catalogports "github.com/Apurer/shop-backoffice/internal/domains/catalog/ports"
	customerports "github.com/Apurer/shop-backoffice/internal/domains/customers/ports"
	"github.com/Apurer/shop-backoffice/internal/domains/orders/ports"
)

var (
	_ ports.CustomerDirectory = (*Customers)(nil)
	_ ports.ProductCatalog    = (*Products)(nil)
)

// Customers reads customer references straight from the customer repository.
type Customers struct {
	repo customerports.Repository
}

func NewCustomers(repo customerports.Repository) *Customers {
	return &Customers{repo: repo}
}

func (c *Customers) FindCustomer(ctx context.Context, id int64) (ports.CustomerRef, bool, error) {
	customer, err := c.repo.GetByID(ctx, id)
	if errors.Is(err, customerports.ErrNotFound) {
		return ports.CustomerRef{}, false, nil
	}
	if err != nil {
		return ports.CustomerRef{}, false, err
	}
	return ports.CustomerRef{ID: customer.ID, Name: customer.Name}, true, nil
}

func (c *Customers) ListCustomers(ctx context.Context) ([]ports.CustomerRef, error) {
	customers, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	refs := make([]ports.CustomerRef, 0, len(customers))
	for _, customer := range customers {
		refs = append(refs, ports.CustomerRef{ID: customer.ID, Name: customer.Name})
	}
	return refs, nil
}

// Products reads product references straight from the catalog repository.
type Products struct {
	repo catalogports.Repository
}

func NewProducts(repo catalogports.Repository) *Products {
	return &Products{repo: repo}
}

func (p *Products) FindProduct(ctx context.Context, id int64) (ports.ProductRef, bool, error) {
	product, err := p.repo.GetByID(ctx, id)
	if errors.Is(err, catalogports.ErrNotFound) {
		return ports.ProductRef{}, false, nil
	}
	if err != nil {
		return ports.ProductRef{}, false, err
	}
	return ports.ProductRef{ID: product.ID, Name: product.Name, UnitPrice: product.UnitPrice}, true, nil
}

func (p *Products) ListProducts(ctx context.Context) ([]ports.ProductRef, error) {
	products, err := p.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	refs := make([]ports.ProductRef, 0, len(products))
	for _, product := range products {
		refs = append(refs, ports.ProductRef{ID: product.ID, Name: product.Name, UnitPrice: product.UnitPrice})
	}
	return refs, nil
}
