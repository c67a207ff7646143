package ports

import (
	"context"
	"errors"

	"github.com/vendasapp/vendas-api/internal/domains/clients/domain"
)

var (
	ErrNotFound = errors.New("client not found")
	// ErrDuplicateCPF is surfaced both by the application-level uniqueness
	// check and by repositories when the store's unique index rejects a write.
	ErrDuplicateCPF = errors.New("cpf already registered to another client")
)

// Repository is the data-access shim for clients. It performs no policy
// checks; uniqueness and deletion guards are composed by the application layer.
type Repository interface {
	List(ctx context.Context) ([]*domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id int64) error
	// CountOthersWithCPF reports how many clients other than excludeID carry
	// the given CPF. Pass excludeID zero on create.
	CountOthersWithCPF(ctx context.Context, cpf string, excludeID int64) (int64, error)
}

// OrderCounter reports how many orders reference a client. Implemented by the
// orders context so the deletion guard never reaches into another schema.
type OrderCounter interface {
	CountByClient(ctx context.Context, clientID int64) (int64, error)
}
