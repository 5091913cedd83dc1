package application

import (
	"context"
	"errors"

	"github.com/Apurer/shop-backoffice/internal/domains/customers/domain"
	"github.com/Apurer/shop-backoffice/internal/domains/customers/ports"
	"github.com/Apurer/shop-backoffice/internal/shared/apperr"
	"github.com/Apurer/shop-backoffice/internal/shared/media"
)

// Service orchestrates customer use cases.
type Service struct {
	repo   ports.Repository
	images media.ImageStore
	guard  ports.ReferenceCounter
}

type Option func(*Service)

func WithImageStore(store media.ImageStore) Option {
	return func(s *Service) { s.images = store }
}

// WithReferenceGuard refuses deletes while orders still reference the customer.
func WithReferenceGuard(counter ports.ReferenceCounter) Option {
	return func(s *Service) { s.guard = counter }
}

func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) CreateCustomer(ctx context.Context, customer *domain.Customer, image *media.Upload) (*domain.Customer, error) {
	if customer == nil {
		return nil, errors.New("customer is nil")
	}
	candidate := customer.Clone()
	candidate.ID = 0
	candidate.Normalize()
	if err := candidate.Validate(); err != nil {
		return nil, err
	}
	url, err := media.Attach(ctx, s.images, image, candidate.ImageURL)
	if err != nil {
		return nil, apperr.Persistence("customers.image", err)
	}
	candidate.ImageURL = url
	saved, err := s.repo.Create(ctx, candidate)
	if err != nil {
		return nil, mapError("customers.create", 0, err)
	}
	return saved, nil
}

func (s *Service) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError("customers.get", id, err)
	}
	return customer, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, id int64, customer *domain.Customer, image *media.Upload) (*domain.Customer, error) {
	if customer == nil {
		return nil, errors.New("customer is nil")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError("customers.get", id, err)
	}
	candidate := customer.Clone()
	candidate.ID = existing.ID
	candidate.Metadata = existing.Metadata
	if candidate.ImageURL == "" {
		candidate.ImageURL = existing.ImageURL
	}
	candidate.Normalize()
	if err := candidate.Validate(); err != nil {
		return nil, err
	}
	url, err := media.Attach(ctx, s.images, image, candidate.ImageURL)
	if err != nil {
		return nil, apperr.Persistence("customers.image", err)
	}
	candidate.ImageURL = url
	saved, err := s.repo.Update(ctx, candidate)
	if err != nil {
		return nil, mapError("customers.update", id, err)
	}
	return saved, nil
}

func (s *Service) DeleteCustomer(ctx context.Context, id int64) (bool, error) {
	if s.guard != nil {
		refs, err := s.guard.CountByCustomer(ctx, id)
		if err != nil {
			return false, apperr.Persistence("customers.references", err)
		}
		if refs > 0 {
			return false, &apperr.InUseError{Resource: "customer", ID: id, References: refs}
		}
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, mapError("customers.delete", id, err)
	}
	return deleted, nil
}

func (s *Service) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError("customers.list", 0, err)
	}
	return customers, nil
}

var _ ports.Service = (*Service)(nil)
