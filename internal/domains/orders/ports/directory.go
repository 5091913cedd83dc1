package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// CustomerRef is the slice of a customer the order subsystem reads.
type CustomerRef struct {
	ID   int64
	Name string
}

// ProductRef is the slice of a product the order subsystem reads.
type ProductRef struct {
	ID        int64
	Name      string
	UnitPrice decimal.Decimal
}

// CustomerDirectory resolves customer references. A missing customer is (zero, false, nil).
type CustomerDirectory interface {
	FindCustomer(ctx context.Context, id int64) (CustomerRef, bool, error)
	ListCustomers(ctx context.Context) ([]CustomerRef, error)
}

// ProductCatalog resolves product references. A missing product is (zero, false, nil).
type ProductCatalog interface {
	FindProduct(ctx context.Context, id int64) (ProductRef, bool, error)
	ListProducts(ctx context.Context) ([]ProductRef, error)
}
