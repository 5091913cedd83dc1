package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	catalogdomain "github.com/Apurer/shop-backoffice/internal/domains/catalog/domain"
	catalogports "github.com/Apurer/shop-backoffice/internal/domains/catalog/ports"
	"github.com/Apurer/shop-backoffice/internal/shared/apperr"
	"github.com/Apurer/shop-backoffice/internal/shared/media"
)

const tracerName = "github.com/Apurer/shop-backoffice/internal/domains/catalog/adapters/observability/service"

// Service decorates the catalog service with tracing, logging, and metrics.
type Service struct {
	inner   catalogports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) { s.metrics = newServiceMetrics(m) }
}

// New wraps the core catalog service.
func New(inner catalogports.Service, opts ...Option) catalogports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.Default(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) CreateProduct(ctx context.Context, product *catalogdomain.Product, image *media.Upload) (*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.CreateProduct",
		trace.WithAttributes(attribute.Bool("product.image", image != nil)))
	defer span.End()

	result, err := s.inner.CreateProduct(ctx, product, image)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create product")
	}
	span.SetAttributes(attribute.Int64("product.id", result.ID))
	s.metrics.record(ctx, "create")
	s.logInfo(ctx, "product created", slog.Int64("product.id", result.ID), slog.String("product.sku", result.SKU))
	return result, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.GetProduct", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	result, err := s.inner.GetProduct(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load product", slog.Int64("product.id", id))
	}
	return result, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id int64, product *catalogdomain.Product, image *media.Upload) (*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.UpdateProduct",
		trace.WithAttributes(attribute.Int64("product.id", id), attribute.Bool("product.image", image != nil)))
	defer span.End()

	result, err := s.inner.UpdateProduct(ctx, id, product, image)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update product", slog.Int64("product.id", id))
	}
	s.metrics.record(ctx, "update")
	s.logInfo(ctx, "product updated", slog.Int64("product.id", id))
	return result, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.DeleteProduct", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	deleted, err := s.inner.DeleteProduct(ctx, id)
	if err != nil {
		return false, s.handleError(ctx, span, err, "failed to delete product", slog.Int64("product.id", id))
	}
	span.SetAttributes(attribute.Bool("product.deleted", deleted))
	if deleted {
		s.metrics.record(ctx, "delete")
	}
	s.logInfo(ctx, "product delete processed", slog.Int64("product.id", id), slog.Bool("deleted", deleted))
	return deleted, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.ListProducts")
	defer span.End()

	result, err := s.inner.ListProducts(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list products")
	}
	span.SetAttributes(attribute.Int("product.count", len(result)))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, apperr.LogLevel(err), msg, attrs...)
	}
	return err
}

type serviceMetrics struct {
	writes metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	writes, _ := m.Int64Counter("catalog.service.product_writes", metric.WithDescription("Number of product writes by operation"))
	return serviceMetrics{writes: writes}
}

func (m serviceMetrics) record(ctx context.Context, op string) {
	if m.writes != nil {
		m.writes.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op)))
	}
}

var _ catalogports.Service = (*Service)(nil)
