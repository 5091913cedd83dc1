package backofficeserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	customerhttpmapper "github.com/Apurer/shop-backoffice/internal/domains/customers/adapters/http/mapper"
	customerdomain "github.com/Apurer/shop-backoffice/internal/domains/customers/domain"
	customerports "github.com/Apurer/shop-backoffice/internal/domains/customers/ports"
	"github.com/Apurer/shop-backoffice/internal/shared/media"
)

// CustomerAPI wires HTTP transport with the customers service.
type CustomerAPI struct {
	service customerports.Service
}

func NewCustomerAPI(service customerports.Service) CustomerAPI {
	return CustomerAPI{service: service}
}

// Post /api/customers
func (api *CustomerAPI) CreateCustomer(c *gin.Context) {
	customer, image, done, ok := bindCustomer(c)
	if !ok {
		return
	}
	defer done()
	saved, err := api.service.CreateCustomer(c.Request.Context(), customer, image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customerhttpmapper.FromDomainCustomer(saved))
}

// Put /api/customers/:id
func (api *CustomerAPI) UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	customer, image, done, ok := bindCustomer(c)
	if !ok {
		return
	}
	defer done()
	saved, err := api.service.UpdateCustomer(c.Request.Context(), id, customer, image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customerhttpmapper.FromDomainCustomer(saved))
}

// Get /api/customers/:id
func (api *CustomerAPI) GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	customer, err := api.service.GetCustomer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customerhttpmapper.FromDomainCustomer(customer))
}

// Delete /api/customers/:id
// Orders that still reference the customer project "Unknown" unless the restrict policy is active.
func (api *CustomerAPI) DeleteCustomer(c *gin.Context) {
	id, ok := parseDeleteIDParam(c, "id")
	if !ok {
		return
	}
	deleted, err := api.service.DeleteCustomer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, deleted)
}

// Get /api/customers
func (api *CustomerAPI) ListCustomers(c *gin.Context) {
	customers, err := api.service.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customerhttpmapper.FromDomainCustomers(customers))
}

func bindCustomer(c *gin.Context) (*customerdomain.Customer, *media.Upload, func(), bool) {
	if !isMultipart(c) {
		var payload customerhttpmapper.Customer
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondBadRequest(c, err)
			return nil, nil, nil, false
		}
		return customerhttpmapper.ToDomainCustomer(payload), nil, func() {}, true
	}
	customer := &customerdomain.Customer{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Phone:    c.PostForm("phone"),
		Address:  c.PostForm("address"),
		Province: c.PostForm("province"),
		City:     c.PostForm("city"),
		Type:     c.PostForm("customerType"),
		Notes:    c.PostForm("notes"),
	}
	image, done, err := formImage(c)
	if err != nil {
		respondBadRequest(c, err)
		return nil, nil, nil, false
	}
	return customer, image, done, true
}
