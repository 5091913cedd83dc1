package mapper

import (
	"github.com/shopspring/decimal"

	catalogdomain "github.com/Apurer/shop-backoffice/internal/domains/catalog/domain"
)

// Product is the JSON shape exchanged by the product handlers.
type Product struct {
	ID          int64           `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Description string          `json:"description"`
	Variants    []string        `json:"variants"`
	Image       string          `json:"image,omitempty"`
}

// ToDomainProduct converts a transport product into the catalog domain model.
// The id is taken from the route, never from the body.
func ToDomainProduct(product Product) *catalogdomain.Product {
	return &catalogdomain.Product{
		SKU:         product.SKU,
		Name:        product.Name,
		Category:    product.Category,
		UnitPrice:   product.Price,
		Stock:       product.Stock,
		Description: product.Description,
		Variants:    append([]string(nil), product.Variants...),
		ImageURL:    product.Image,
	}
}

// FromDomainProduct converts a domain product to the transport representation.
func FromDomainProduct(product *catalogdomain.Product) Product {
	if product == nil {
		return Product{}
	}
	variants := product.Variants
	if variants == nil {
		variants = []string{}
	}
	return Product{
		ID:          product.ID,
		SKU:         product.SKU,
		Name:        product.Name,
		Category:    product.Category,
		Price:       product.UnitPrice,
		Stock:       product.Stock,
		Description: product.Description,
		Variants:    append([]string{}, variants...),
		Image:       product.ImageURL,
	}
}

func FromDomainProducts(products []*catalogdomain.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, product := range products {
		out = append(out, FromDomainProduct(product))
	}
	return out
}
