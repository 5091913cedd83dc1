package backofficeserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	authports "github.com/Apurer/shop-backoffice/internal/domains/auth/ports"
)

func init() {
	// Money is rendered as a JSON number, matching what the portal sends.
	decimal.MarshalJSONWithoutQuotes = true
}

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
	// Public routes skip the bearer check when authentication is required.
	Public bool
}

// ApiHandleFunctions groups the handler sets served under /api.
type ApiHandleFunctions struct {
	OrderAPI    OrderAPI
	ProductAPI  ProductAPI
	CustomerAPI CustomerAPI
	ReportAPI   ReportAPI
	AuthAPI     AuthAPI
}

// RouterOptions configure cross-cutting router behaviour.
type RouterOptions struct {
	// AuthRequired guards every non-public route with a bearer token.
	AuthRequired  bool
	Authenticator authports.Authenticator
	// UploadDir is served statically under UploadPrefix when set.
	UploadDir    string
	UploadPrefix string
	// Middleware runs ahead of every route, e.g. tracing.
	Middleware []gin.HandlerFunc
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions, opts RouterOptions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions, opts)
}

// NewRouterWithGinEngine adds the routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions, opts RouterOptions) *gin.Engine {
	router.Use(opts.Middleware...)
	if opts.UploadDir != "" {
		prefix := opts.UploadPrefix
		if prefix == "" {
			prefix = "/uploads"
		}
		router.Static(prefix, opts.UploadDir)
	}
	var guard gin.HandlerFunc
	if opts.AuthRequired && opts.Authenticator != nil {
		guard = RequireBearer(opts.Authenticator)
	}
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		handlers := []gin.HandlerFunc{route.HandlerFunc}
		if guard != nil && !route.Public {
			handlers = append([]gin.HandlerFunc{guard}, handlers...)
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, handlers...)
		case http.MethodPost:
			router.POST(route.Pattern, handlers...)
		case http.MethodPut:
			router.PUT(route.Pattern, handlers...)
		case http.MethodPatch:
			router.PATCH(route.Pattern, handlers...)
		case http.MethodDelete:
			router.DELETE(route.Pattern, handlers...)
		}
	}
	return router
}

// DefaultHandleFunc is the default handler for routes without an implementation.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

// Health answers GET / for liveness probes.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "Back-office API is running")
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{"Health", http.MethodGet, "/", Health, true},
		{"Login", http.MethodPost, "/api/login", handleFunctions.AuthAPI.Login, true},

		{"ListOrders", http.MethodGet, "/api/orders", handleFunctions.OrderAPI.ListOrders, false},
		{"CreateOrder", http.MethodPost, "/api/orders", handleFunctions.OrderAPI.CreateOrder, false},
		{"ExportOrdersCSV", http.MethodGet, "/api/orders/export.csv", handleFunctions.OrderAPI.ExportOrdersCSV, false},
		{"OrdersByMonth", http.MethodGet, "/api/orders/aggregate/by-month", handleFunctions.ReportAPI.OrdersByMonth, false},
		{"OrdersByCategory", http.MethodGet, "/api/orders/aggregate/by-category", handleFunctions.ReportAPI.CategoryDistribution, false},
		{"GetOrder", http.MethodGet, "/api/orders/:id", handleFunctions.OrderAPI.GetOrder, false},
		{"UpdateOrder", http.MethodPut, "/api/orders/:id", handleFunctions.OrderAPI.UpdateOrder, false},
		{"SetOrderStatus", http.MethodPatch, "/api/orders/:id/status", handleFunctions.OrderAPI.SetOrderStatus, false},
		{"DeleteOrder", http.MethodDelete, "/api/orders/:id", handleFunctions.OrderAPI.DeleteOrder, false},

		{"DashboardCounts", http.MethodGet, "/api/dashboard/counts", handleFunctions.ReportAPI.Counts, false},
		{"DashboardRecentOrders", http.MethodGet, "/api/dashboard/recent-orders", handleFunctions.ReportAPI.RecentOrders, false},

		{"ListProducts", http.MethodGet, "/api/products", handleFunctions.ProductAPI.ListProducts, false},
		{"CreateProduct", http.MethodPost, "/api/products", handleFunctions.ProductAPI.CreateProduct, false},
		{"GetProduct", http.MethodGet, "/api/products/:id", handleFunctions.ProductAPI.GetProduct, false},
		{"UpdateProduct", http.MethodPut, "/api/products/:id", handleFunctions.ProductAPI.UpdateProduct, false},
		{"DeleteProduct", http.MethodDelete, "/api/products/:id", handleFunctions.ProductAPI.DeleteProduct, false},

		{"ListCustomers", http.MethodGet, "/api/customers", handleFunctions.CustomerAPI.ListCustomers, false},
		{"CreateCustomer", http.MethodPost, "/api/customers", handleFunctions.CustomerAPI.CreateCustomer, false},
		{"GetCustomer", http.MethodGet, "/api/customers/:id", handleFunctions.CustomerAPI.GetCustomer, false},
		{"UpdateCustomer", http.MethodPut, "/api/customers/:id", handleFunctions.CustomerAPI.UpdateCustomer, false},
		{"DeleteCustomer", http.MethodDelete, "/api/customers/:id", handleFunctions.CustomerAPI.DeleteCustomer, false},
	}
}
