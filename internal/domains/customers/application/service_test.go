package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/shop-backoffice/internal/domains/customers/adapters/memory"
	"github.com/Apurer/shop-backoffice/internal/domains/customers/domain"
	"github.com/Apurer/shop-backoffice/internal/shared/apperr"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, customer)
	if c := args.Get(0); c != nil {
		return c.(*domain.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, customer)
	if c := args.Get(0); c != nil {
		return c.(*domain.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	args := m.Called(ctx)
	if list := args.Get(0); list != nil {
		return list.([]*domain.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

type fixedRefs int64

func (f fixedRefs) CountByCustomer(context.Context, int64) (int64, error) { return int64(f), nil }

func aini() *domain.Customer {
	return &domain.Customer{Name: "Aini", Email: "aini@example.com", Phone: "0812", Province: "Jawa Barat", City: "Bandung"}
}

func TestCreateCustomer_Persists(t *testing.T) {
	svc := NewService(memory.NewRepository())

	saved, err := svc.CreateCustomer(context.Background(), aini(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)
	assert.Equal(t, "Aini", saved.Name)
}

func TestCreateCustomer_ValidationSkipsRepository(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo)

	_, err := svc.CreateCustomer(context.Background(), &domain.Customer{Name: "Aini"}, nil)
	var validation *apperr.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, []string{"email", "phone", "province", "city"}, validation.Fields)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCustomer_StorageFailureIsPersistenceError(t *testing.T) {
	repo := &mockRepository{}
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil, errors.New("disk I/O error"))
	svc := NewService(repo)

	_, err := svc.CreateCustomer(context.Background(), aini(), nil)
	var persistence *apperr.PersistenceError
	require.ErrorAs(t, err, &persistence)
	assert.Equal(t, "customers.create", persistence.Op)
	repo.AssertExpectations(t)
}

func TestUpdateCustomer_MissingIsNotFound(t *testing.T) {
	svc := NewService(memory.NewRepository())

	_, err := svc.UpdateCustomer(context.Background(), 5, aini(), nil)
	var notFound *apperr.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "customer", notFound.Resource)
}

func TestUpdateCustomer_ReplacesAttributes(t *testing.T) {
	svc := NewService(memory.NewRepository())
	ctx := context.Background()
	saved, err := svc.CreateCustomer(ctx, aini(), nil)
	require.NoError(t, err)

	replacement := aini()
	replacement.City = "Bogor"
	updated, err := svc.UpdateCustomer(ctx, saved.ID, replacement, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bogor", updated.City)
	assert.Equal(t, saved.ID, updated.ID)
}

func TestDeleteCustomer_RestrictPolicy(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, WithReferenceGuard(fixedRefs(1)))

	_, err := svc.DeleteCustomer(context.Background(), 1)
	var inUse *apperr.InUseError
	require.ErrorAs(t, err, &inUse)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteCustomer_Idempotent(t *testing.T) {
	svc := NewService(memory.NewRepository())
	ctx := context.Background()
	saved, err := svc.CreateCustomer(ctx, aini(), nil)
	require.NoError(t, err)

	deleted, err := svc.DeleteCustomer(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = svc.DeleteCustomer(ctx, saved.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
