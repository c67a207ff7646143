package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/vendasapp/vendas-api/internal/domains/employees/domain"
	"github.com/vendasapp/vendas-api/internal/domains/employees/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory employee persistence adapter.
type Repository struct {
	mu        sync.RWMutex
	employees map[int64]*domain.Employee
	nextID    int64
}

func NewRepository() *Repository {
	return &Repository{employees: map[int64]*domain.Employee{}}
}

func (r *Repository) List(_ context.Context) ([]*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Employee, 0, len(r.employees))
	for _, employee := range r.employees {
		clone := *employee
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	employee, ok := r.employees[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *employee
	return &clone, nil
}

func (r *Repository) Create(_ context.Context, employee *domain.Employee) (*domain.Employee, error) {
	if employee == nil {
		return nil, errors.New("employee is nil")
	}
	clone := *employee
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	clone.ID = r.nextID
	r.employees[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *Repository) Update(_ context.Context, employee *domain.Employee) (*domain.Employee, error) {
	if employee == nil {
		return nil, errors.New("employee is nil")
	}
	clone := *employee
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[clone.ID]; !ok {
		return nil, ports.ErrNotFound
	}
	r.employees[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.employees, id)
	return nil
}

func (r *Repository) CountOthersWithName(_ context.Context, name string, excludeID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, employee := range r.employees {
		if employee.Name == name && employee.ID != excludeID {
			count++
		}
	}
	return count, nil
}
