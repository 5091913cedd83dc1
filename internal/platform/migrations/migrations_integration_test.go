//go:build integration

package migrations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	catalogpostgres "github.com/Apurer/shop-backoffice/internal/domains/catalog/adapters/persistence/postgres"
	customerpostgres "github.com/Apurer/shop-backoffice/internal/domains/customers/adapters/persistence/postgres"
	orderpostgres "github.com/Apurer/shop-backoffice/internal/domains/orders/adapters/persistence/postgres"
)

func TestRun_CreatesAdapterTables(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("backoffice_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Run(db))

	m := db.Migrator()
	for _, table := range []string{"products", "customers", "orders"} {
		assert.True(t, m.HasTable(table), table)
	}
	assert.True(t, m.HasColumn(&catalogpostgres.ProductRecord{}, "variants"))
	assert.True(t, m.HasColumn(&customerpostgres.CustomerRecord{}, "customer_type"))
	assert.True(t, m.HasColumn(&orderpostgres.OrderRecord{}, "order_date"))
}

func TestRun_NilDatabaseIsNoop(t *testing.T) {
	assert.NoError(t, Run(nil))
}
