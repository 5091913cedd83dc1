package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/shop-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/shop-backoffice/internal/domains/orders/ports"
	platformsqlite "github.com/Apurer/shop-backoffice/internal/platform/sqlite"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := platformsqlite.Open(context.Background(), filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db)
}

func order(customerID, productID int64, price string) *domain.Order {
	return &domain.Order{
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   3,
		Price:      decimal.RequireFromString(price),
		Date:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:     domain.StatusProcessing,
	}
}

func TestRepository_RoundTripsPriceAndDate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	saved, err := repo.Create(ctx, order(1, 7, "450000.75"))
	require.NoError(t, err)

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("450000.75").Equal(fetched.Price))
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), fetched.Date)
	assert.Equal(t, domain.StatusProcessing, fetched.Status)
	assert.Equal(t, 3, fetched.Quantity)
}

func TestRepository_UpdateListDeleteCount(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, order(1, 7, "10"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, order(2, 7, "20"))
	require.NoError(t, err)

	first.Status = domain.StatusCompleted
	updated, err := repo.Update(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)

	n, err := repo.CountByProduct(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	n, err = repo.CountByCustomer(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	deleted, err := repo.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = repo.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	missing := first.Clone()
	_, err = repo.Update(ctx, missing)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
