package application

import (
	"context"
	"errors"

	"github.com/vendasapp/vendas-api/internal/domains/products/domain"
	"github.com/vendasapp/vendas-api/internal/domains/products/ports"
)

// ErrHasOrderItems blocks deletion while order items still reference the product.
var ErrHasOrderItems = errors.New("product has order items and cannot be deleted")

// Service composes the product use cases, including the deletion guard
// against referencing order items.
type Service struct {
	repo  ports.Repository
	items ports.OrderItemCounter
}

func NewService(repo ports.Repository, items ports.OrderItemCounter) *Service {
	return &Service{repo: repo, items: items}
}

func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	product.ID = 0
	return s.repo.Create(ctx, product)
}

func (s *Service) Update(ctx context.Context, id int64, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	product.ID = id
	return s.repo.Update(ctx, product)
}

// Delete removes a product. Absence wins over the dependents check.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := s.items.CountByProduct(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrHasOrderItems
	}
	return s.repo.Delete(ctx, id)
}

var _ ports.Service = (*Service)(nil)
