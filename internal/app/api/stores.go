package api

import (
	"context"
	"fmt"
	"log/slog"

	catalogmemory "github.com/Apurer/shop-backoffice/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/Apurer/shop-backoffice/internal/domains/catalog/adapters/persistence/postgres"
	catalogsqlite "github.com/Apurer/shop-backoffice/internal/domains/catalog/adapters/persistence/sqlite"
	catalogports "github.com/Apurer/shop-backoffice/internal/domains/catalog/ports"
	customermemory "github.com/Apurer/shop-backoffice/internal/domains/customers/adapters/memory"
	customerpostgres "github.com/Apurer/shop-backoffice/internal/domains/customers/adapters/persistence/postgres"
	customersqlite "github.com/Apurer/shop-backoffice/internal/domains/customers/adapters/persistence/sqlite"
	customerports "github.com/Apurer/shop-backoffice/internal/domains/customers/ports"
	ordermemory "github.com/Apurer/shop-backoffice/internal/domains/orders/adapters/memory"
	orderpostgres "github.com/Apurer/shop-backoffice/internal/domains/orders/adapters/persistence/postgres"
	ordersqlite "github.com/Apurer/shop-backoffice/internal/domains/orders/adapters/persistence/sqlite"
	orderports "github.com/Apurer/shop-backoffice/internal/domains/orders/ports"
	platformpostgres "github.com/Apurer/shop-backoffice/internal/platform/postgres"
	platformsqlite "github.com/Apurer/shop-backoffice/internal/platform/sqlite"
)

// Stores holds one repository per entity, all on the same backend.
type Stores struct {
	Products  catalogports.Repository
	Customers customerports.Repository
	Orders    orderports.Repository
	// Driver is the backend actually in use after any fallback.
	Driver string
}

// OpenStores builds the repositories for cfg.StoreDriver. An unreachable
// Postgres falls back to memory; a SQLite file that cannot be opened is an error.
func OpenStores(ctx context.Context, cfg Config, logger *slog.Logger) (Stores, func(), error) {
	switch cfg.StoreDriver {
	case DriverPostgres:
		db, cleanup := platformpostgres.ConnectOrFallback(ctx, cfg.PostgresDSN, logger)
		if db == nil {
			return memoryStores(), func() {}, nil
		}
		logger.Info("repositories configured with postgres")
		return Stores{
			Products:  catalogpostgres.NewRepository(db),
			Customers: customerpostgres.NewRepository(db),
			Orders:    orderpostgres.NewRepository(db),
			Driver:    DriverPostgres,
		}, cleanup, nil
	case DriverSQLite:
		db, err := platformsqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return Stores{}, func() {}, fmt.Errorf("open sqlite store %q: %w", cfg.SQLitePath, err)
		}
		logger.Info("repositories configured with sqlite", slog.String("path", cfg.SQLitePath))
		return Stores{
			Products:  catalogsqlite.NewRepository(db),
			Customers: customersqlite.NewRepository(db),
			Orders:    ordersqlite.NewRepository(db),
			Driver:    DriverSQLite,
		}, func() { _ = db.Close() }, nil
	default:
		logger.Info("repositories configured in memory")
		return memoryStores(), func() {}, nil
	}
}

func memoryStores() Stores {
	return Stores{
		Products:  catalogmemory.NewRepository(),
		Customers: customermemory.NewRepository(),
		Orders:    ordermemory.NewRepository(),
		Driver:    DriverMemory,
	}
}
