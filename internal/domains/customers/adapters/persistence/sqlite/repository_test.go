package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/shop-backoffice/internal/domains/customers/domain"
	"github.com/Apurer/shop-backoffice/internal/domains/customers/ports"
	platformsqlite "github.com/Apurer/shop-backoffice/internal/platform/sqlite"
)

func TestRepository_CustomerLifecycle(t *testing.T) {
	db, err := platformsqlite.Open(context.Background(), filepath.Join(t.TempDir(), "customers.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Create(ctx, &domain.Customer{
		Name: "Aini", Email: "aini@example.com", Phone: "0812", Province: "Jawa Barat", City: "Bandung", Type: "reseller",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)
	assert.Equal(t, "reseller", saved.Type)

	saved.Notes = "prefers pickup"
	updated, err := repo.Update(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, "prefers pickup", updated.Notes)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	deleted, err := repo.Delete(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetByID(ctx, saved.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	deleted, err = repo.Delete(ctx, saved.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
