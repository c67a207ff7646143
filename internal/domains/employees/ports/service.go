package ports

import (
	"context"

	"github.com/vendasapp/vendas-api/internal/domains/employees/domain"
)

// Service exposes the employee use cases consumed by the transport layer.
type Service interface {
	List(ctx context.Context) ([]*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, id int64, employee *domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}
