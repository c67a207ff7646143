package ports

import (
	"context"
	"errors"

	"github.com/vendasapp/vendas-api/internal/domains/employees/domain"
)

var (
	ErrNotFound = errors.New("employee not found")
	// ErrDuplicateName is surfaced both by the application-level uniqueness
	// check and by repositories when the store's unique index rejects a write.
	ErrDuplicateName = errors.New("name already registered to another employee")
)

// Repository is the data-access shim for employees.
type Repository interface {
	List(ctx context.Context) ([]*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
	// CountOthersWithName reports how many employees other than excludeID
	// carry the given name. Pass excludeID zero on create.
	CountOthersWithName(ctx context.Context, name string, excludeID int64) (int64, error)
}
