package ports

import (
	"context"
	"errors"

	"github.com/vendasapp/vendas-api/internal/domains/orders/domain"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrItemNotFound  = errors.New("order item not found")
)

// OrderRepository is the data-access shim for orders. CountByClient backs the
// client deletion guard in the clients context.
type OrderRepository interface {
	List(ctx context.Context) ([]*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
	CountByClient(ctx context.Context, clientID int64) (int64, error)
}

// ItemRepository is the data-access shim for order line items. CountByProduct
// backs the product deletion guard in the products context.
type ItemRepository interface {
	List(ctx context.Context) ([]*domain.OrderItem, error)
	GetByID(ctx context.Context, id int64) (*domain.OrderItem, error)
	Create(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error)
	Update(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error)
	Delete(ctx context.Context, id int64) error
	CountByProduct(ctx context.Context, productID int64) (int64, error)
}

// ClientDirectory resolves the client summary embedded in order views. A nil
// summary with a nil error means the client no longer exists.
type ClientDirectory interface {
	FindClient(ctx context.Context, id int64) (*domain.ClientSummary, error)
}
