package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	employeedomain "github.com/vendasapp/vendas-api/internal/domains/employees/domain"
	employeeports "github.com/vendasapp/vendas-api/internal/domains/employees/ports"
)

const tracerName = "github.com/vendasapp/vendas-api/internal/domains/employees/adapters/observability/service"

// Service decorates the employees service with tracing, logging, and metrics.
type Service struct {
	inner   employeeports.Service
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

// New wraps the core employees service.
func New(inner employeeports.Service, opts ...Option) employeeports.Service {
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

func (s *Service) List(ctx context.Context) ([]*employeedomain.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "EmployeesService.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list employees")
	}
	span.SetAttributes(attribute.Int("employees.count", len(result)))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*employeedomain.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "EmployeesService.GetByID", trace.WithAttributes(attribute.Int64("employee.id", id)))
	defer span.End()

	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load employee", slog.Int64("employee.id", id))
	}
	return result, nil
}

func (s *Service) Create(ctx context.Context, employee *employeedomain.Employee) (*employeedomain.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "EmployeesService.Create")
	defer span.End()

	s.logInfo(ctx, "creating employee")
	result, err := s.inner.Create(ctx, employee)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create employee")
	}
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "employee created", slog.Int64("employee.id", result.ID))
	return result, nil
}

func (s *Service) Update(ctx context.Context, id int64, employee *employeedomain.Employee) (*employeedomain.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "EmployeesService.Update", trace.WithAttributes(attribute.Int64("employee.id", id)))
	defer span.End()

	s.logInfo(ctx, "updating employee", slog.Int64("employee.id", id))
	result, err := s.inner.Update(ctx, id, employee)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update employee", slog.Int64("employee.id", id))
	}
	s.logInfo(ctx, "employee updated", slog.Int64("employee.id", result.ID))
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "EmployeesService.Delete", trace.WithAttributes(attribute.Int64("employee.id", id)))
	defer span.End()

	s.logInfo(ctx, "deleting employee", slog.Int64("employee.id", id))
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete employee", slog.Int64("employee.id", id))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "employee deleted", slog.Int64("employee.id", id))
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
	employeesCreated metric.Int64Counter
	employeesDeleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("employees.service.created", metric.WithDescription("Number of employees created"))
	deleted, _ := m.Int64Counter("employees.service.deleted", metric.WithDescription("Number of employees deleted"))
	return serviceMetrics{employeesCreated: created, employeesDeleted: deleted}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.employeesCreated != nil {
		m.employeesCreated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.employeesDeleted != nil {
		m.employeesDeleted.Add(ctx, 1)
	}
}

var _ employeeports.Service = (*Service)(nil)
