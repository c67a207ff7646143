package ports

import (
	"context"

	"github.com/vendasapp/vendas-api/internal/domains/orders/domain"
)

// Service exposes the order and line-item use cases consumed by the transport layer.
type Service interface {
	ListOrders(ctx context.Context) ([]*domain.OrderView, error)
	GetOrder(ctx context.Context, id int64) (*domain.OrderView, error)
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	UpdateOrder(ctx context.Context, id int64, order *domain.Order) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id int64) error

	ListItems(ctx context.Context) ([]*domain.OrderItem, error)
	GetItem(ctx context.Context, id int64) (*domain.OrderItem, error)
	CreateItem(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error)
	UpdateItem(ctx context.Context, id int64, item *domain.OrderItem) (*domain.OrderItem, error)
	DeleteItem(ctx context.Context, id int64) error
}
