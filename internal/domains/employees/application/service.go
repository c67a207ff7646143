package application

import (
	"context"
	"errors"

	"github.com/vendasapp/vendas-api/internal/domains/employees/domain"
	"github.com/vendasapp/vendas-api/internal/domains/employees/ports"
)

// Service composes the employee use cases: the name-uniqueness rule on
// create/update. Deletion is unconditional for employees.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	if employee == nil {
		return nil, errors.New("employee is nil")
	}
	if err := employee.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureNameAvailable(ctx, employee.Name, 0); err != nil {
		return nil, err
	}
	employee.ID = 0
	return s.repo.Create(ctx, employee)
}

func (s *Service) Update(ctx context.Context, id int64, employee *domain.Employee) (*domain.Employee, error) {
	if employee == nil {
		return nil, errors.New("employee is nil")
	}
	if err := employee.Validate(); err != nil {
		return nil, err
	}
	// Self-exclusion is mandatory: an employee may keep its own name on update.
	if err := s.ensureNameAvailable(ctx, employee.Name, id); err != nil {
		return nil, err
	}
	employee.ID = id
	return s.repo.Update(ctx, employee)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ensureNameAvailable(ctx context.Context, name string, excludeID int64) error {
	count, err := s.repo.CountOthersWithName(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ports.ErrDuplicateName
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
