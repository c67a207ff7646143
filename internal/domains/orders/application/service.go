package application

import (
	"context"
	"errors"

	"github.com/vendasapp/vendas-api/internal/domains/orders/domain"
	"github.com/vendasapp/vendas-api/internal/domains/orders/ports"
)

// Service composes the order and line-item use cases. Order and item deletion
// carry no dependents guard: the asymmetry with clients/products is inherited
// behavior and kept on purpose.
type Service struct {
	orders  ports.OrderRepository
	items   ports.ItemRepository
	clients ports.ClientDirectory
}

func NewService(orders ports.OrderRepository, items ports.ItemRepository, clients ports.ClientDirectory) *Service {
	return &Service{orders: orders, items: items, clients: clients}
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.OrderView, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*domain.OrderView, 0, len(orders))
	for _, order := range orders {
		view, err := s.buildView(ctx, order)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*domain.OrderView, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, order)
}

func (s *Service) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	order.ID = 0
	return s.orders.Create(ctx, order)
}

func (s *Service) UpdateOrder(ctx context.Context, id int64, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	order.ID = id
	return s.orders.Update(ctx, order)
}

func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	if _, err := s.orders.GetByID(ctx, id); err != nil {
		return err
	}
	return s.orders.Delete(ctx, id)
}

func (s *Service) ListItems(ctx context.Context) ([]*domain.OrderItem, error) {
	return s.items.List(ctx)
}

func (s *Service) GetItem(ctx context.Context, id int64) (*domain.OrderItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *Service) CreateItem(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	if item == nil {
		return nil, errors.New("order item is nil")
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	item.ID = 0
	return s.items.Create(ctx, item)
}

func (s *Service) UpdateItem(ctx context.Context, id int64, item *domain.OrderItem) (*domain.OrderItem, error) {
	if item == nil {
		return nil, errors.New("order item is nil")
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	item.ID = id
	return s.items.Update(ctx, item)
}

func (s *Service) DeleteItem(ctx context.Context, id int64) error {
	if _, err := s.items.GetByID(ctx, id); err != nil {
		return err
	}
	return s.items.Delete(ctx, id)
}

func (s *Service) buildView(ctx context.Context, order *domain.Order) (*domain.OrderView, error) {
	client, err := s.clients.FindClient(ctx, order.ClientID)
	if err != nil {
		return nil, err
	}
	return &domain.OrderView{Order: order, Client: client}, nil
}

var _ ports.Service = (*Service)(nil)
