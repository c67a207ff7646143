package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/vendasapp/vendas-api/internal/domains/orders/domain"
	"github.com/vendasapp/vendas-api/internal/domains/orders/ports"
)

var _ ports.ItemRepository = (*ItemRepository)(nil)

// ItemRepository is an in-memory order-item persistence adapter.
type ItemRepository struct {
	mu     sync.RWMutex
	items  map[int64]*domain.OrderItem
	nextID int64
}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{items: map[int64]*domain.OrderItem{}}
}

func (r *ItemRepository) List(_ context.Context) ([]*domain.OrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.OrderItem, 0, len(r.items))
	for _, item := range r.items {
		clone := *item
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *ItemRepository) GetByID(_ context.Context, id int64) (*domain.OrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, ports.ErrItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *ItemRepository) Create(_ context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	if item == nil {
		return nil, errors.New("order item is nil")
	}
	clone := *item
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	clone.ID = r.nextID
	r.items[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *ItemRepository) Update(_ context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	if item == nil {
		return nil, errors.New("order item is nil")
	}
	clone := *item
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[clone.ID]; !ok {
		return nil, ports.ErrItemNotFound
	}
	r.items[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *ItemRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ports.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *ItemRepository) CountByProduct(_ context.Context, productID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, item := range r.items {
		if item.ProductID == productID {
			count++
		}
	}
	return count, nil
}
