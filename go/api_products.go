package backofficeserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	producthttpmapper "github.com/Apurer/shop-backoffice/internal/domains/catalog/adapters/http/mapper"
	catalogdomain "github.com/Apurer/shop-backoffice/internal/domains/catalog/domain"
	catalogports "github.com/Apurer/shop-backoffice/internal/domains/catalog/ports"
	"github.com/Apurer/shop-backoffice/internal/shared/apperr"
	"github.com/Apurer/shop-backoffice/internal/shared/media"
)

// ProductAPI wires HTTP transport with the catalog service.
type ProductAPI struct {
	service catalogports.Service
}

func NewProductAPI(service catalogports.Service) ProductAPI {
	return ProductAPI{service: service}
}

// Post /api/products
// Accepts JSON or multipart form data with an optional image part.
func (api *ProductAPI) CreateProduct(c *gin.Context) {
	product, image, done, ok := api.bindProduct(c)
	if !ok {
		return
	}
	defer done()
	saved, err := api.service.CreateProduct(c.Request.Context(), product, image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, producthttpmapper.FromDomainProduct(saved))
}

// Put /api/products/:id
// Without a new image the stored image reference is kept.
func (api *ProductAPI) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	product, image, done, ok := api.bindProduct(c)
	if !ok {
		return
	}
	defer done()
	saved, err := api.service.UpdateProduct(c.Request.Context(), id, product, image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, producthttpmapper.FromDomainProduct(saved))
}

// Get /api/products/:id
func (api *ProductAPI) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := api.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, producthttpmapper.FromDomainProduct(product))
}

// Delete /api/products/:id
func (api *ProductAPI) DeleteProduct(c *gin.Context) {
	id, ok := parseDeleteIDParam(c, "id")
	if !ok {
		return
	}
	deleted, err := api.service.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, deleted)
}

// Get /api/products
func (api *ProductAPI) ListProducts(c *gin.Context) {
	products, err := api.service.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, producthttpmapper.FromDomainProducts(products))
}

// bindProduct decodes the body and writes the error response itself when it returns ok=false.
func (api *ProductAPI) bindProduct(c *gin.Context) (*catalogdomain.Product, *media.Upload, func(), bool) {
	if !isMultipart(c) {
		var payload producthttpmapper.Product
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondBadRequest(c, err)
			return nil, nil, nil, false
		}
		return producthttpmapper.ToDomainProduct(payload), nil, func() {}, true
	}

	product := &catalogdomain.Product{
		SKU:         c.PostForm("sku"),
		Name:        c.PostForm("name"),
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
		Variants:    catalogdomain.ParseVariants(c.PostForm("variants")),
	}
	var invalid []string
	if raw := strings.TrimSpace(c.PostForm("price")); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			invalid = append(invalid, "price")
		}
		product.UnitPrice = price
	}
	if raw := strings.TrimSpace(c.PostForm("stock")); raw != "" {
		stock, err := strconv.Atoi(raw)
		if err != nil {
			invalid = append(invalid, "stock")
		}
		product.Stock = stock
	}
	if err := apperr.NewValidation("product", invalid...); err != nil {
		respondError(c, err)
		return nil, nil, nil, false
	}
	image, done, err := formImage(c)
	if err != nil {
		respondBadRequest(c, err)
		return nil, nil, nil, false
	}
	return product, image, done, true
}
