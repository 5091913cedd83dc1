package domain

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Apurer/shop-backoffice/internal/shared/apperr"
	"github.com/Apurer/shop-backoffice/internal/shared/projection"
)

// Product is a catalog entry that orders reference by identifier.
type Product struct {
	ID          int64
	SKU         string
	Name        string
	Category    string
	UnitPrice   decimal.Decimal
	Stock       int
	Description string
	Variants    []string
	ImageURL    string
	Metadata    projection.Metadata
}

// Normalize trims text fields and collapses the variant labels into an ordered set.
func (p *Product) Normalize() {
	p.SKU = strings.TrimSpace(p.SKU)
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
	p.Description = strings.TrimSpace(p.Description)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	p.Variants = NormalizeVariants(p.Variants)
}

// Validate reports every missing or out-of-range field at once.
func (p *Product) Validate() error {
	var fields []string
	if strings.TrimSpace(p.SKU) == "" {
		fields = append(fields, "sku")
	}
	if strings.TrimSpace(p.Name) == "" {
		fields = append(fields, "name")
	}
	if !ValidPrice(p.UnitPrice) {
		fields = append(fields, "price")
	}
	if p.Stock < 0 {
		fields = append(fields, "stock")
	}
	return apperr.NewValidation("product", fields...)
}

// maxPrice is the first value that no longer fits a numeric(14,2) column.
var maxPrice = decimal.New(1, 12)

// ValidPrice accepts non-negative amounts with at most two decimal places
// that the stores can hold without rounding.
func ValidPrice(price decimal.Decimal) bool {
	if price.IsNegative() || price.GreaterThanOrEqual(maxPrice) {
		return false
	}
	return price.Equal(price.Round(2))
}

// Clone returns a deep copy safe to hand out of a repository.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Variants = append([]string(nil), p.Variants...)
	return &clone
}

// NormalizeVariants trims labels, drops empties and duplicates, and keeps first-seen order.
func NormalizeVariants(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	result := make([]string, 0, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		result = append(result, label)
	}
	return result
}

// ParseVariants splits a comma-separated label list as submitted by form clients.
func ParseVariants(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return NormalizeVariants(strings.Split(raw, ","))
}
