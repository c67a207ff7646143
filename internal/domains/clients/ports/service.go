package ports

import (
	"context"

	"github.com/vendasapp/vendas-api/internal/domains/clients/domain"
)

// Service exposes the client use cases consumed by the transport layer.
type Service interface {
	List(ctx context.Context) ([]*domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, id int64, client *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id int64) error
}
