package backofficeserver

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/Apurer/shop-backoffice/internal/domains/orders/adapters/http/mapper"
	orderexport "github.com/Apurer/shop-backoffice/internal/domains/orders/adapters/export"
	ordertypes "github.com/Apurer/shop-backoffice/internal/domains/orders/application/types"
	orderports "github.com/Apurer/shop-backoffice/internal/domains/orders/ports"
)

// OrderAPI wires HTTP transport with the orders service.
type OrderAPI struct {
	service orderports.Service
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service orderports.Service) OrderAPI {
	return OrderAPI{service: service}
}

// Post /api/orders
// Creates an order; price is computed from the product's unit price.
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload orderhttpmapper.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	view, err := api.service.CreateOrder(c.Request.Context(), orderhttpmapper.ToOrderInput(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderhttpmapper.FromOrderView(view))
}

// Put /api/orders/:id
// Replaces an order's fields and recomputes its price.
func (api *OrderAPI) UpdateOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload orderhttpmapper.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	view, err := api.service.UpdateOrder(c.Request.Context(), id, orderhttpmapper.ToOrderInput(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromOrderView(view))
}

// Patch /api/orders/:id/status
func (api *OrderAPI) SetOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload orderhttpmapper.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	view, err := api.service.SetStatus(c.Request.Context(), id, payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromOrderView(view))
}

// Get /api/orders/:id
func (api *OrderAPI) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := api.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromOrderView(view))
}

// Delete /api/orders/:id
// Deleting a missing order is not an error; the body reports whether anything was removed.
func (api *OrderAPI) DeleteOrder(c *gin.Context) {
	id, ok := parseDeleteIDParam(c, "id")
	if !ok {
		return
	}
	deleted, err := api.service.DeleteOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, deleted)
}

// Get /api/orders
func (api *OrderAPI) ListOrders(c *gin.Context) {
	views, err := api.service.ListOrders(c.Request.Context(), listFilterFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromOrderViews(views))
}

// Get /api/orders/export.csv
// Honours the same search and status filters as the list endpoint.
func (api *OrderAPI) ExportOrdersCSV(c *gin.Context) {
	views, err := api.service.ListOrders(c.Request.Context(), listFilterFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	var buf bytes.Buffer
	if err := orderexport.WriteCSV(&buf, views); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+orderexport.Filename+`"`)
	c.Data(http.StatusOK, orderexport.ContentType, buf.Bytes())
}

func listFilterFromQuery(c *gin.Context) ordertypes.ListFilter {
	return ordertypes.ListFilter{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		Descending: strings.EqualFold(c.Query("order"), "desc"),
	}
}
