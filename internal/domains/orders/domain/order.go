package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Apurer/shop-backoffice/internal/shared/apperr"
	"github.com/Apurer/shop-backoffice/internal/shared/projection"
)

// DateLayout is the wire and storage format of an order date.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("order date is invalid")

// Order records one purchase of a single product by a single customer.
// Price is a snapshot of unit price times quantity taken at the last write.
type Order struct {
	ID         int64
	CustomerID int64
	ProductID  int64
	Quantity   int
	Price      decimal.Decimal
	Date       time.Time
	Status     Status
	Metadata   projection.Metadata
}

// Validate guards the stored shape; the service has already resolved references and defaults.
func (o *Order) Validate() error {
	var fields []string
	if o.CustomerID <= 0 {
		fields = append(fields, "customerId")
	}
	if o.ProductID <= 0 {
		fields = append(fields, "productId")
	}
	if o.Quantity <= 0 {
		fields = append(fields, "qty")
	}
	if o.Price.IsNegative() {
		fields = append(fields, "price")
	}
	if o.Date.IsZero() {
		fields = append(fields, "date")
	}
	if !o.Status.Valid() {
		fields = append(fields, "status")
	}
	return apperr.NewValidation("order", fields...)
}

func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	return &clone
}

// NormalizeQuantity maps zero and negative quantities to the default of 1.
func NormalizeQuantity(qty int) int {
	if qty <= 0 {
		return 1
	}
	return qty
}

// LinePrice is unit price times quantity, exact in decimal arithmetic.
func LinePrice(unitPrice decimal.Decimal, qty int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(qty)))
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp and drops the time of day.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return CalendarDate(t), nil
}

// CalendarDate truncates t to midnight UTC of its own calendar day.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders an order date in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
