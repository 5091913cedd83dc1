package backofficeserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/Apurer/shop-backoffice/internal/domains/orders/adapters/http/mapper"
	reportingports "github.com/Apurer/shop-backoffice/internal/domains/reporting/ports"
)

// ReportAPI serves the dashboard aggregates.
type ReportAPI struct {
	service reportingports.Service
}

func NewReportAPI(service reportingports.Service) ReportAPI {
	return ReportAPI{service: service}
}

// countsResponse is the dashboard tile payload.
type countsResponse struct {
	ProductCount  int `json:"productCount"`
	CustomerCount int `json:"customerCount"`
	OrderCount    int `json:"orderCount"`
}

// Get /api/dashboard/counts
func (api *ReportAPI) Counts(c *gin.Context) {
	counts, err := api.service.Counts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, countsResponse{
		ProductCount:  counts.Products,
		CustomerCount: counts.Customers,
		OrderCount:    counts.Orders,
	})
}

// Get /api/orders/aggregate/by-month
// Twelve integers, January first.
func (api *ReportAPI) OrdersByMonth(c *gin.Context) {
	histogram, err := api.service.OrdersByMonth(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, histogram[:])
}

// Get /api/orders/aggregate/by-category
func (api *ReportAPI) CategoryDistribution(c *gin.Context) {
	distribution, err := api.service.CategoryDistribution(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, distribution)
}

// Get /api/dashboard/recent-orders
func (api *ReportAPI) RecentOrders(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondBadRequest(c, fmt.Errorf("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}
	views, err := api.service.RecentOrders(c.Request.Context(), c.Query("search"), c.Query("status"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromOrderViews(views))
}
