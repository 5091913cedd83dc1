package types

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Apurer/shop-backoffice/internal/domains/orders/domain"
)

// UnknownName stands in for a customer or product that no longer exists.
const UnknownName = "Unknown"

// OrderInput carries a create or update request after transport decoding.
// Quantity <= 0 means "use the default"; an empty Status means "default or keep".
type OrderInput struct {
	CustomerID int64
	ProductID  int64
	Quantity   int
	Date       string
	Status     string
}

// OrderView is an order with its references resolved to display names.
type OrderView struct {
	ID           int64
	CustomerID   int64
	CustomerName string
	ProductID    int64
	ProductName  string
	Quantity     int
	Price        decimal.Decimal
	Date         time.Time
	Status       domain.Status
}

// ListFilter narrows the projection after the join. Zero value lists everything ascending by id.
type ListFilter struct {
	// Search matches a case-insensitive substring of the customer name.
	Search string
	// Status is a status name or "all"; empty also means all.
	Status     string
	Descending bool
}
