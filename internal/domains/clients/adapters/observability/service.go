package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	clientdomain "github.com/vendasapp/vendas-api/internal/domains/clients/domain"
	clientports "github.com/vendasapp/vendas-api/internal/domains/clients/ports"
)

const tracerName = "github.com/vendasapp/vendas-api/internal/domains/clients/adapters/observability/service"

// Service decorates the clients service with tracing, logging, and metrics.
type Service struct {
	inner   clientports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core clients service.
func New(inner clientports.Service, opts ...Option) clientports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
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

func (s *Service) List(ctx context.Context) ([]*clientdomain.Client, error) {
	ctx, span := s.tracer.Start(ctx, "ClientsService.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list clients")
	}
	span.SetAttributes(attribute.Int("clients.count", len(result)))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*clientdomain.Client, error) {
	ctx, span := s.tracer.Start(ctx, "ClientsService.GetByID", trace.WithAttributes(attribute.Int64("client.id", id)))
	defer span.End()

	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load client", slog.Int64("client.id", id))
	}
	return result, nil
}

func (s *Service) Create(ctx context.Context, client *clientdomain.Client) (*clientdomain.Client, error) {
	ctx, span := s.tracer.Start(ctx, "ClientsService.Create")
	defer span.End()

	s.logInfo(ctx, "creating client")
	result, err := s.inner.Create(ctx, client)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create client")
	}
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "client created", slog.Int64("client.id", result.ID))
	return result, nil
}

func (s *Service) Update(ctx context.Context, id int64, client *clientdomain.Client) (*clientdomain.Client, error) {
	ctx, span := s.tracer.Start(ctx, "ClientsService.Update", trace.WithAttributes(attribute.Int64("client.id", id)))
	defer span.End()

	s.logInfo(ctx, "updating client", slog.Int64("client.id", id))
	result, err := s.inner.Update(ctx, id, client)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update client", slog.Int64("client.id", id))
	}
	s.logInfo(ctx, "client updated", slog.Int64("client.id", result.ID))
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "ClientsService.Delete", trace.WithAttributes(attribute.Int64("client.id", id)))
	defer span.End()

	s.logInfo(ctx, "deleting client", slog.Int64("client.id", id))
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete client", slog.Int64("client.id", id))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "client deleted", slog.Int64("client.id", id))
	return nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	clientsCreated metric.Int64Counter
	clientsDeleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("clients.service.created", metric.WithDescription("Number of clients created"))
	deleted, _ := m.Int64Counter("clients.service.deleted", metric.WithDescription("Number of clients deleted"))
	return serviceMetrics{clientsCreated: created, clientsDeleted: deleted}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.clientsCreated != nil {
		m.clientsCreated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.clientsDeleted != nil {
		m.clientsDeleted.Add(ctx, 1)
	}
}

var _ clientports.Service = (*Service)(nil)
