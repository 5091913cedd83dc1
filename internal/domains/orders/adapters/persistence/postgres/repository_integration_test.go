//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/shop-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/shop-backoffice/internal/domains/orders/ports"
)

func setupOrdersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
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

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}
	return db, cleanup
}

func mayDayOrder() *domain.Order {
	return &domain.Order{
		CustomerID: 1,
		ProductID:  7,
		Quantity:   2,
		Price:      decimal.NewFromInt(300000),
		Date:       time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Status:     domain.StatusPending,
	}
}

func TestRepository_CreateAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Create(ctx, mayDayOrder())
	require.NoError(t, err)

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(300000).Equal(fetched.Price))
	assert.Equal(t, "2024-05-01", domain.FormatDate(fetched.Date))
	assert.Equal(t, domain.StatusPending, fetched.Status)
}

func TestRepository_UpdateAndCounts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Create(ctx, mayDayOrder())
	require.NoError(t, err)
	saved.Status = domain.StatusCancelled
	updated, err := repo.Update(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, updated.Status)

	n, err := repo.CountByCustomer(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = repo.CountByProduct(ctx, 8)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRepository_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Create(ctx, mayDayOrder())
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetByID(ctx, saved.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	deleted, err = repo.Delete(ctx, saved.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
