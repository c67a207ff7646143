package application

import (
	"context"
	"errors"

	"github.com/vendasapp/vendas-api/internal/domains/clients/domain"
	"github.com/vendasapp/vendas-api/internal/domains/clients/ports"
)

// Service composes the client use cases: the uniqueness rule on create/update
// and the referential-integrity guard on delete. The repository stays a pure
// data-access shim underneath.
type Service struct {
	repo   ports.Repository
	orders ports.OrderCounter
}

func NewService(repo ports.Repository, orders ports.OrderCounter) *Service {
	return &Service{repo: repo, orders: orders}
}

func (s *Service) List(ctx context.Context) ([]*domain.Client, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if client == nil {
		return nil, errors.New("client is nil")
	}
	if err := client.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureCPFAvailable(ctx, client.CPF, 0); err != nil {
		return nil, err
	}
	client.ID = 0
	return s.repo.Create(ctx, client)
}

func (s *Service) Update(ctx context.Context, id int64, client *domain.Client) (*domain.Client, error) {
	if client == nil {
		return nil, errors.New("client is nil")
	}
	if err := client.Validate(); err != nil {
		return nil, err
	}
	// Self-exclusion is mandatory: a client may keep its own CPF on update.
	if err := s.ensureCPFAvailable(ctx, client.CPF, id); err != nil {
		return nil, err
	}
	client.ID = id
	return s.repo.Update(ctx, client)
}

// Delete removes a client. Absence is reported before the dependents check so
// a missing client yields not-found rather than a spurious guard failure.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := s.orders.CountByClient(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrHasOrders
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ensureCPFAvailable(ctx context.Context, cpf string, excludeID int64) error {
	count, err := s.repo.CountOthersWithCPF(ctx, cpf, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ports.ErrDuplicateCPF
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
