//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	backofficeserver "github.com/Apurer/shop-backoffice/go"
	pacttest "github.com/Apurer/shop-backoffice/test/pact"

	catalogmemory "github.com/Apurer/shop-backoffice/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/Apurer/shop-backoffice/internal/domains/catalog/adapters/observability"
	catalogapp "github.com/Apurer/shop-backoffice/internal/domains/catalog/application"
	catalogdomain "github.com/Apurer/shop-backoffice/internal/domains/catalog/domain"
	customermemory "github.com/Apurer/shop-backoffice/internal/domains/customers/adapters/memory"
	customerobs "github.com/Apurer/shop-backoffice/internal/domains/customers/adapters/observability"
	customerapp "github.com/Apurer/shop-backoffice/internal/domains/customers/application"
	customerdomain "github.com/Apurer/shop-backoffice/internal/domains/customers/domain"
	"github.com/Apurer/shop-backoffice/internal/domains/orders/adapters/directory"
	ordermemory "github.com/Apurer/shop-backoffice/internal/domains/orders/adapters/memory"
	orderobs "github.com/Apurer/shop-backoffice/internal/domains/orders/adapters/observability"
	orderapp "github.com/Apurer/shop-backoffice/internal/domains/orders/application"
	ordertypes "github.com/Apurer/shop-backoffice/internal/domains/orders/application/types"
	orderports "github.com/Apurer/shop-backoffice/internal/domains/orders/ports"
	reportingapp "github.com/Apurer/shop-backoffice/internal/domains/reporting/application"
)

func TestBackofficeProviderPact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateOrdersBaseline: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
		pacttest.StateOrderExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			orders := app.reset(t)
			if setup {
				_, err := orders.CreateOrder(context.Background(), ordertypes.OrderInput{
					CustomerID: pacttest.ExampleCustomerID,
					ProductID:  pacttest.ExampleProductID,
					Quantity:   pacttest.ExampleQuantity,
					Date:       pacttest.ExampleOrderDate,
				})
				require.NoError(t, err)
			}
			return nil, nil
		},
		pacttest.StateOrderMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
	})
	require.NoError(t, err)
}

// contractProviderApp rebuilds a fresh in-memory shop per provider state so ids restart at 1.
type contractProviderApp struct {
	mu      sync.RWMutex
	handler http.Handler
	server  *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()
	app := &contractProviderApp{}
	app.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.mu.RLock()
		handler := app.handler
		app.mu.RUnlock()
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(app.server.Close)
	app.reset(t)
	return app
}

func (a *contractProviderApp) reset(t testing.TB) orderports.Service {
	t.Helper()
	ctx := context.Background()

	productRepo := catalogmemory.NewRepository()
	customerRepo := customermemory.NewRepository()
	orderRepo := ordermemory.NewRepository()

	catalog := catalogobs.New(catalogapp.NewService(productRepo))
	customers := customerobs.New(customerapp.NewService(customerRepo))
	orders := orderobs.New(orderapp.NewService(orderRepo, directory.NewCustomers(customerRepo), directory.NewProducts(productRepo)))

	_, err := customers.CreateCustomer(ctx, &customerdomain.Customer{
		Name:     pacttest.ExampleCustomer,
		Email:    "aini@example.com",
		Phone:    "08123456789",
		Province: "Jawa Barat",
		City:     "Bandung",
	}, nil)
	require.NoError(t, err)
	_, err = catalog.CreateProduct(ctx, &catalogdomain.Product{
		SKU:       "CK-01",
		Name:      pacttest.ExampleProduct,
		Category:  pacttest.ExampleCategory,
		UnitPrice: decimal.NewFromInt(pacttest.ExampleUnitPrice),
		Stock:     10,
	}, nil)
	require.NoError(t, err)

	handlers := backofficeserver.ApiHandleFunctions{
		OrderAPI:    backofficeserver.NewOrderAPI(orders),
		ProductAPI:  backofficeserver.NewProductAPI(catalog),
		CustomerAPI: backofficeserver.NewCustomerAPI(customers),
		ReportAPI:   backofficeserver.NewReportAPI(reportingapp.NewService(orders, catalog, customers)),
	}
	router := backofficeserver.NewRouterWithGinEngine(gin.New(), handlers, backofficeserver.RouterOptions{
		Middleware: []gin.HandlerFunc{gin.Recovery()},
	})

	a.mu.Lock()
	a.handler = router
	a.mu.Unlock()
	return orders
}
