package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	orderdomain "github.com/vendasapp/vendas-api/internal/domains/orders/domain"
	orderports "github.com/vendasapp/vendas-api/internal/domains/orders/ports"
)

const tracerName = "github.com/vendasapp/vendas-api/internal/domains/orders/adapters/observability/service"

// Service decorates the orders service with tracing, logging, and metrics.
type Service struct {
	inner   orderports.Service
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

// New wraps the core orders service.
func New(inner orderports.Service, opts ...Option) orderports.Service {
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

func (s *Service) ListOrders(ctx context.Context) ([]*orderdomain.OrderView, error) {
	ctx, span := s.tracer.Start(ctx, "OrdersService.ListOrders")
	defer span.End()

	result, err := s.inner.ListOrders(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("orders.count", len(result)))
	return result, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*orderdomain.OrderView, error) {
	ctx, span := s.tracer.Start(ctx, "OrdersService.GetOrder", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	result, err := s.inner.GetOrder(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.Int64("order.id", id))
	}
	return result, nil
}

func (s *Service) CreateOrder(ctx context.Context, order *orderdomain.Order) (*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrdersService.CreateOrder")
	defer span.End()

	s.logInfo(ctx, "creating order")
	result, err := s.inner.CreateOrder(ctx, order)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create order")
	}
	s.metrics.recordOrderCreated(ctx)
	s.logInfo(ctx, "order created", slog.Int64("order.id", result.ID), slog.Int64("client.id", result.ClientID))
	return result, nil
}

func (s *Service) UpdateOrder(ctx context.Context, id int64, order *orderdomain.Order) (*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrdersService.UpdateOrder", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	s.logInfo(ctx, "updating order", slog.Int64("order.id", id))
	result, err := s.inner.UpdateOrder(ctx, id, order)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update order", slog.Int64("order.id", id))
	}
	s.logInfo(ctx, "order updated", slog.Int64("order.id", result.ID))
	return result, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "OrdersService.DeleteOrder", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	s.logInfo(ctx, "deleting order", slog.Int64("order.id", id))
	if err := s.inner.DeleteOrder(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete order", slog.Int64("order.id", id))
	}
	s.logInfo(ctx, "order deleted", slog.Int64("order.id", id))
	return nil
}

func (s *Service) ListItems(ctx context.Context) ([]*orderdomain.OrderItem, error) {
	ctx, span := s.tracer.Start(ctx, "OrdersService.ListItems")
	defer span.End()

	result, err := s.inner.ListItems(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list order items")
	}
	span.SetAttributes(attribute.Int("order_items.count", len(result)))
	return result, nil
}

func (s *Service) GetItem(ctx context.Context, id int64) (*orderdomain.OrderItem, error) {
	ctx, span := s.tracer.Start(ctx, "OrdersService.GetItem", trace.WithAttributes(attribute.Int64("order_item.id", id)))
	defer span.End()

	result, err := s.inner.GetItem(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order item", slog.Int64("order_item.id", id))
	}
	return result, nil
}

func (s *Service) CreateItem(ctx context.Context, item *orderdomain.OrderItem) (*orderdomain.OrderItem, error) {
	ctx, span := s.tracer.Start(ctx, "OrdersService.CreateItem")
	defer span.End()

	s.logInfo(ctx, "creating order item")
	result, err := s.inner.CreateItem(ctx, item)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create order item")
	}
	s.metrics.recordItemCreated(ctx)
	s.logInfo(ctx, "order item created", slog.Int64("order_item.id", result.ID), slog.Int64("order.id", result.OrderID))
	return result, nil
}

func (s *Service) UpdateItem(ctx context.Context, id int64, item *orderdomain.OrderItem) (*orderdomain.OrderItem, error) {
	ctx, span := s.tracer.Start(ctx, "OrdersService.UpdateItem", trace.WithAttributes(attribute.Int64("order_item.id", id)))
	defer span.End()

	s.logInfo(ctx, "updating order item", slog.Int64("order_item.id", id))
	result, err := s.inner.UpdateItem(ctx, id, item)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update order item", slog.Int64("order_item.id", id))
	}
	s.logInfo(ctx, "order item updated", slog.Int64("order_item.id", result.ID))
	return result, nil
}

func (s *Service) DeleteItem(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "OrdersService.DeleteItem", trace.WithAttributes(attribute.Int64("order_item.id", id)))
	defer span.End()

	s.logInfo(ctx, "deleting order item", slog.Int64("order_item.id", id))
	if err := s.inner.DeleteItem(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete order item", slog.Int64("order_item.id", id))
	}
	s.logInfo(ctx, "order item deleted", slog.Int64("order_item.id", id))
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
	ordersCreated metric.Int64Counter
	itemsCreated  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	orders, _ := m.Int64Counter("orders.service.orders_created", metric.WithDescription("Number of orders created"))
	items, _ := m.Int64Counter("orders.service.items_created", metric.WithDescription("Number of order items created"))
	return serviceMetrics{ordersCreated: orders, itemsCreated: items}
}

func (m serviceMetrics) recordOrderCreated(ctx context.Context) {
	if m.ordersCreated != nil {
		m.ordersCreated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordItemCreated(ctx context.Context) {
	if m.itemsCreated != nil {
		m.itemsCreated.Add(ctx, 1)
	}
}

var _ orderports.Service = (*Service)(nil)
