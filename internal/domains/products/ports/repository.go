package ports

import (
	"context"
	"errors"

	"github.com/vendasapp/vendas-api/internal/domains/products/domain"
)

var ErrNotFound = errors.New("product not found")

// Repository is the data-access shim for products.
type Repository interface {
	List(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

// OrderItemCounter reports how many order items reference a product.
// Implemented by the orders context.
type OrderItemCounter interface {
	CountByProduct(ctx context.Context, productID int64) (int64, error)
}
