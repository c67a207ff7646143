package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/vendasapp/vendas-api/internal/domains/clients/domain"
	"github.com/vendasapp/vendas-api/internal/domains/clients/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory client persistence adapter.
type Repository struct {
	mu      sync.RWMutex
	clients map[int64]*domain.Client
	nextID  int64
}

func NewRepository() *Repository {
	return &Repository{clients: map[int64]*domain.Client{}}
}

func (r *Repository) List(_ context.Context) ([]*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Client, 0, len(r.clients))
	for _, client := range r.clients {
		clone := *client
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *client
	return &clone, nil
}

func (r *Repository) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	if client == nil {
		return nil, errors.New("client is nil")
	}
	clone := *client
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	clone.ID = r.nextID
	r.clients[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *Repository) Update(_ context.Context, client *domain.Client) (*domain.Client, error) {
	if client == nil {
		return nil, errors.New("client is nil")
	}
	clone := *client
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[clone.ID]; !ok {
		return nil, ports.ErrNotFound
	}
	r.clients[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}

// Reset clears all clients and restarts id assignment. Contract tests use it
// to rebuild provider state between interactions.
func (r *Repository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients = map[int64]*domain.Client{}
	r.nextID = 0
}

func (r *Repository) CountOthersWithCPF(_ context.Context, cpf string, excludeID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, client := range r.clients {
		if client.CPF == cpf && client.ID != excludeID {
			count++
		}
	}
	return count, nil
}
