package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	employeememory "github.com/vendasapp/vendas-api/internal/domains/employees/adapters/memory"
	"github.com/vendasapp/vendas-api/internal/domains/employees/domain"
	"github.com/vendasapp/vendas-api/internal/domains/employees/ports"
)

func newEmployee(t *testing.T, name, role string) *domain.Employee {
	t.Helper()
	employee, err := domain.NewEmployee(0, name, role)
	require.NoError(t, err)
	return employee
}

func TestCreateEmployee_AssignsID(t *testing.T) {
	svc := NewService(employeememory.NewRepository())

	created, err := svc.Create(context.Background(), newEmployee(t, "Carlos", "vendedor"))

	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, "Carlos", created.Name)
	require.Equal(t, "vendedor", created.Role)
}

func TestCreateEmployee_DuplicateName(t *testing.T) {
	svc := NewService(employeememory.NewRepository())

	_, err := svc.Create(context.Background(), newEmployee(t, "Carlos", "vendedor"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), newEmployee(t, "Carlos", "gerente"))
	require.ErrorIs(t, err, ports.ErrDuplicateName)
}

func TestCreateEmployee_EmptyName(t *testing.T) {
	svc := NewService(employeememory.NewRepository())

	employee := &domain.Employee{Name: "  ", Role: "vendedor"}
	_, err := svc.Create(context.Background(), employee)
	require.ErrorIs(t, err, domain.ErrEmptyName)
}

func TestUpdateEmployee_KeepsOwnName(t *testing.T) {
	svc := NewService(employeememory.NewRepository())

	created, err := svc.Create(context.Background(), newEmployee(t, "Carlos", "vendedor"))
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, newEmployee(t, "Carlos", "gerente"))
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "gerente", updated.Role)
}

func TestUpdateEmployee_RejectsNameOfAnother(t *testing.T) {
	svc := NewService(employeememory.NewRepository())

	_, err := svc.Create(context.Background(), newEmployee(t, "Carlos", "vendedor"))
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), newEmployee(t, "Diana", "gerente"))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), second.ID, newEmployee(t, "Carlos", "gerente"))
	require.ErrorIs(t, err, ports.ErrDuplicateName)
}

func TestDeleteEmployee_NotFound(t *testing.T) {
	svc := NewService(employeememory.NewRepository())

	err := svc.Delete(context.Background(), 42)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDeleteEmployee_Success(t *testing.T) {
	svc := NewService(employeememory.NewRepository())

	created, err := svc.Create(context.Background(), newEmployee(t, "Carlos", "vendedor"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)
}
