package application

import (
	"context"
	"errors"

	"github.com/Apurer/shop-backoffice/internal/domains/catalog/domain"
	"github.com/Apurer/shop-backoffice/internal/domains/catalog/ports"
	"github.com/Apurer/shop-backoffice/internal/shared/apperr"
	"github.com/Apurer/shop-backoffice/internal/shared/media"
)

// Service orchestrates catalog use cases.
type Service struct {
	repo   ports.Repository
	images media.ImageStore
	guard  ports.ReferenceCounter
}

// Option configures optional collaborators.
type Option func(*Service)

// WithImageStore enables image attachments.
func WithImageStore(store media.ImageStore) Option {
	return func(s *Service) { s.images = store }
}

// WithReferenceGuard refuses deletes while orders still reference the product.
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

func (s *Service) CreateProduct(ctx context.Context, product *domain.Product, image *media.Upload) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	candidate := product.Clone()
	candidate.ID = 0
	candidate.Normalize()
	if err := candidate.Validate(); err != nil {
		return nil, err
	}
	url, err := media.Attach(ctx, s.images, image, candidate.ImageURL)
	if err != nil {
		return nil, apperr.Persistence("products.image", err)
	}
	candidate.ImageURL = url
	saved, err := s.repo.Create(ctx, candidate)
	if err != nil {
		return nil, mapError("products.create", 0, err)
	}
	return saved, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError("products.get", id, err)
	}
	return product, nil
}

// UpdateProduct replaces every attribute; the stored image survives when no new one is supplied.
func (s *Service) UpdateProduct(ctx context.Context, id int64, product *domain.Product, image *media.Upload) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError("products.get", id, err)
	}
	candidate := product.Clone()
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
		return nil, apperr.Persistence("products.image", err)
	}
	candidate.ImageURL = url
	saved, err := s.repo.Update(ctx, candidate)
	if err != nil {
		return nil, mapError("products.update", id, err)
	}
	return saved, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	if s.guard != nil {
		refs, err := s.guard.CountByProduct(ctx, id)
		if err != nil {
			return false, apperr.Persistence("products.references", err)
		}
		if refs > 0 {
			return false, &apperr.InUseError{Resource: "product", ID: id, References: refs}
		}
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, mapError("products.delete", id, err)
	}
	return deleted, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError("products.list", 0, err)
	}
	return products, nil
}

var _ ports.Service = (*Service)(nil)
