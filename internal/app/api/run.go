package api

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	backofficeserver "github.com/Apurer/shop-backoffice/go"

	authmemory "github.com/Apurer/shop-backoffice/internal/domains/auth/adapters/memory"
	authapp "github.com/Apurer/shop-backoffice/internal/domains/auth/application"
	authdomain "github.com/Apurer/shop-backoffice/internal/domains/auth/domain"
	catalogobs "github.com/Apurer/shop-backoffice/internal/domains/catalog/adapters/observability"
	catalogapp "github.com/Apurer/shop-backoffice/internal/domains/catalog/application"
	customerobs "github.com/Apurer/shop-backoffice/internal/domains/customers/adapters/observability"
	customerapp "github.com/Apurer/shop-backoffice/internal/domains/customers/application"
	"github.com/Apurer/shop-backoffice/internal/domains/orders/adapters/directory"
	orderobs "github.com/Apurer/shop-backoffice/internal/domains/orders/adapters/observability"
	orderapp "github.com/Apurer/shop-backoffice/internal/domains/orders/application"
	orderports "github.com/Apurer/shop-backoffice/internal/domains/orders/ports"
	reportingapp "github.com/Apurer/shop-backoffice/internal/domains/reporting/application"
	"github.com/Apurer/shop-backoffice/internal/platform/blobstore"
	platformobservability "github.com/Apurer/shop-backoffice/internal/platform/observability"
)

const shutdownTimeout = 5 * time.Second

// Run boots the back-office HTTP API and blocks until ctx is cancelled or the server fails.
func Run(ctx context.Context, cfg Config) error {
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Settings{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	stores, closeStores, err := OpenStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStores()

	handlers, auth, err := buildHandlers(cfg, stores, instruments)
	if err != nil {
		return err
	}
	router := backofficeserver.NewRouterWithGinEngine(gin.New(), handlers, backofficeserver.RouterOptions{
		AuthRequired:  cfg.AuthRequired,
		Authenticator: auth,
		UploadDir:     cfg.UploadDir,
		UploadPrefix:  blobstore.DefaultURLPrefix,
		Middleware: []gin.HandlerFunc{
			gin.Recovery(),
			otelgin.Middleware(cfg.ServiceName, otelgin.WithTracerProvider(instruments.TracerProvider)),
		},
	})

	server := &http.Server{Addr: cfg.Addr(), Handler: router, ReadHeaderTimeout: 10 * time.Second}
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Back-office API listening",
			slog.String("addr", server.Addr),
			slog.String("store", stores.Driver),
			slog.Bool("auth_required", cfg.AuthRequired),
			slog.String("reference_policy", cfg.ReferencePolicy),
		)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("Back-office API server exited", slog.String("addr", server.Addr), slog.String("error", err.Error()))
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down Back-office API")
		return server.Shutdown(shutdownCtx)
	}
}

// buildHandlers assembles the services over stores and wraps each in its observability decorator.
func buildHandlers(cfg Config, stores Stores, instruments *platformobservability.Instruments) (backofficeserver.ApiHandleFunctions, *authapp.Service, error) {
	logger := instruments.Logger
	images := blobstore.NewDiskStore(cfg.UploadDir, blobstore.DefaultURLPrefix)

	catalogOpts := []catalogapp.Option{catalogapp.WithImageStore(images)}
	customerOpts := []customerapp.Option{customerapp.WithImageStore(images)}
	if cfg.ReferencePolicy == PolicyRestrict {
		catalogOpts = append(catalogOpts, catalogapp.WithReferenceGuard(stores.Orders))
		customerOpts = append(customerOpts, customerapp.WithReferenceGuard(stores.Orders))
	}

	catalogService := catalogobs.New(
		catalogapp.NewService(stores.Products, catalogOpts...),
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catalogobs.WithMeter(instruments.Meter("internal.catalog.application")),
	)
	customerService := customerobs.New(
		customerapp.NewService(stores.Customers, customerOpts...),
		customerobs.WithLogger(logger),
		customerobs.WithTracer(instruments.Tracer("internal.customers.application")),
		customerobs.WithMeter(instruments.Meter("internal.customers.application")),
	)
	orderService := NewOrderService(stores, instruments)
	reportService := reportingapp.NewService(orderService, catalogService, customerService)

	auth, err := buildAuth(cfg, logger)
	if err != nil {
		return backofficeserver.ApiHandleFunctions{}, nil, err
	}
	return backofficeserver.ApiHandleFunctions{
		OrderAPI:    backofficeserver.NewOrderAPI(orderService),
		ProductAPI:  backofficeserver.NewProductAPI(catalogService),
		CustomerAPI: backofficeserver.NewCustomerAPI(customerService),
		ReportAPI:   backofficeserver.NewReportAPI(reportService),
		AuthAPI:     backofficeserver.NewAuthAPI(auth),
	}, auth, nil
}

// NewOrderService wires the decorated order service over stores.
func NewOrderService(stores Stores, instruments *platformobservability.Instruments) orderports.Service {
	core := orderapp.NewService(
		stores.Orders,
		directory.NewCustomers(stores.Customers),
		directory.NewProducts(stores.Products),
	)
	return orderobs.New(
		core,
		orderobs.WithLogger(instruments.Logger),
		orderobs.WithTracer(instruments.Tracer("internal.orders.application")),
		orderobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
}

func buildAuth(cfg Config, logger *slog.Logger) (*authapp.Service, error) {
	creds, err := authdomain.ParseCredentials(cfg.AuthCredentials)
	if err != nil {
		return nil, fmt.Errorf("AUTH_CREDENTIALS: %w", err)
	}
	store, err := authmemory.NewCredentialStore(creds, 0)
	if err != nil {
		return nil, err
	}
	secret := []byte(strings.TrimSpace(cfg.AuthTokenSecret))
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generate token secret: %w", err)
		}
		logger.Warn("AUTH_TOKEN_SECRET not set, tokens will not survive a restart")
	}
	return authapp.NewService(store, secret, cfg.AuthTokenTTL)
}
