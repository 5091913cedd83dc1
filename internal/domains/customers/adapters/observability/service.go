package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	customerdomain "github.com/Apurer/shop-backoffice/internal/domains/customers/domain"
	customerports "github.com/Apurer/shop-backoffice/internal/domains/customers/ports"
	"github.com/Apurer/shop-backoffice/internal/shared/apperr"
	"github.com/Apurer/shop-backoffice/internal/shared/media"
)

const tracerName = "github.com/Apurer/shop-backoffice/internal/domains/customers/adapters/observability/service"

// Service decorates the customer service with tracing, logging, and metrics.
type Service struct {
	inner   customerports.Service
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

func New(inner customerports.Service, opts ...Option) customerports.Service {
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

func (s *Service) CreateCustomer(ctx context.Context, customer *customerdomain.Customer, image *media.Upload) (*customerdomain.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "CustomerService.CreateCustomer")
	defer span.End()

	result, err := s.inner.CreateCustomer(ctx, customer, image)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create customer")
	}
	span.SetAttributes(attribute.Int64("customer.id", result.ID))
	s.metrics.record(ctx, "create")
	s.logInfo(ctx, "customer created", slog.Int64("customer.id", result.ID))
	return result, nil
}

func (s *Service) GetCustomer(ctx context.Context, id int64) (*customerdomain.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "CustomerService.GetCustomer", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	result, err := s.inner.GetCustomer(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load customer", slog.Int64("customer.id", id))
	}
	return result, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, id int64, customer *customerdomain.Customer, image *media.Upload) (*customerdomain.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "CustomerService.UpdateCustomer", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	result, err := s.inner.UpdateCustomer(ctx, id, customer, image)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update customer", slog.Int64("customer.id", id))
	}
	s.metrics.record(ctx, "update")
	s.logInfo(ctx, "customer updated", slog.Int64("customer.id", id))
	return result, nil
}

func (s *Service) DeleteCustomer(ctx context.Context, id int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "CustomerService.DeleteCustomer", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	deleted, err := s.inner.DeleteCustomer(ctx, id)
	if err != nil {
		return false, s.handleError(ctx, span, err, "failed to delete customer", slog.Int64("customer.id", id))
	}
	if deleted {
		s.metrics.record(ctx, "delete")
	}
	s.logInfo(ctx, "customer delete processed", slog.Int64("customer.id", id), slog.Bool("deleted", deleted))
	return deleted, nil
}

func (s *Service) ListCustomers(ctx context.Context) ([]*customerdomain.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "CustomerService.ListCustomers")
	defer span.End()

	result, err := s.inner.ListCustomers(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list customers")
	}
	span.SetAttributes(attribute.Int("customer.count", len(result)))
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
	writes, _ := m.Int64Counter("customers.service.customer_writes", metric.WithDescription("Number of customer writes by operation"))
	return serviceMetrics{writes: writes}
}

func (m serviceMetrics) record(ctx context.Context, op string) {
	if m.writes != nil {
		m.writes.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op)))
	}
}

var _ customerports.Service = (*Service)(nil)
