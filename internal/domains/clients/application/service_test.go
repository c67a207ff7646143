package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	clientmemory "github.com/vendasapp/vendas-api/internal/domains/clients/adapters/memory"
	"github.com/vendasapp/vendas-api/internal/domains/clients/domain"
	"github.com/vendasapp/vendas-api/internal/domains/clients/ports"
)

type stubOrderCounter struct {
	count int64
}

func (s stubOrderCounter) CountByClient(context.Context, int64) (int64, error) {
	return s.count, nil
}

func newClient(t *testing.T, firstName, lastName, cpf string) *domain.Client {
	t.Helper()
	client, err := domain.NewClient(0, firstName, lastName, cpf)
	require.NoError(t, err)
	return client
}

func TestCreateClient_AssignsID(t *testing.T) {
	svc := NewService(clientmemory.NewRepository(), stubOrderCounter{})

	created, err := svc.Create(context.Background(), newClient(t, "Ana", "Silva", "11111111111"))

	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, "Ana", created.FirstName)
	require.Equal(t, "11111111111", created.CPF)
}

func TestCreateClient_DuplicateCPF(t *testing.T) {
	svc := NewService(clientmemory.NewRepository(), stubOrderCounter{})

	_, err := svc.Create(context.Background(), newClient(t, "Ana", "Silva", "11111111111"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), newClient(t, "Bea", "Souza", "11111111111"))
	require.ErrorIs(t, err, ports.ErrDuplicateCPF)
}

func TestCreateClient_InvalidCPF(t *testing.T) {
	svc := NewService(clientmemory.NewRepository(), stubOrderCounter{})

	client := &domain.Client{FirstName: "Ana", CPF: "   "}
	_, err := svc.Create(context.Background(), client)
	require.ErrorIs(t, err, domain.ErrEmptyCPF)
}

func TestUpdateClient_KeepsOwnCPF(t *testing.T) {
	svc := NewService(clientmemory.NewRepository(), stubOrderCounter{})

	created, err := svc.Create(context.Background(), newClient(t, "Ana", "Silva", "11111111111"))
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, newClient(t, "Ana", "Souza", "11111111111"))
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Souza", updated.LastName)
}

func TestUpdateClient_RejectsCPFOfAnother(t *testing.T) {
	svc := NewService(clientmemory.NewRepository(), stubOrderCounter{})

	_, err := svc.Create(context.Background(), newClient(t, "Ana", "Silva", "11111111111"))
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), newClient(t, "Bea", "Souza", "22222222222"))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), second.ID, newClient(t, "Bea", "Souza", "11111111111"))
	require.ErrorIs(t, err, ports.ErrDuplicateCPF)
}

func TestUpdateClient_ConflictWinsOverMissingID(t *testing.T) {
	svc := NewService(clientmemory.NewRepository(), stubOrderCounter{})

	_, err := svc.Create(context.Background(), newClient(t, "Ana", "Silva", "11111111111"))
	require.NoError(t, err)

	// The uniqueness check runs before the existence check, so a conflicting
	// CPF on a nonexistent id reports the conflict.
	_, err = svc.Update(context.Background(), 999, newClient(t, "Bea", "Souza", "11111111111"))
	require.ErrorIs(t, err, ports.ErrDuplicateCPF)
}

func TestUpdateClient_NotFound(t *testing.T) {
	svc := NewService(clientmemory.NewRepository(), stubOrderCounter{})

	_, err := svc.Update(context.Background(), 42, newClient(t, "Ana", "Silva", "11111111111"))
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDeleteClient_BlockedByOrders(t *testing.T) {
	repo := clientmemory.NewRepository()
	svc := NewService(repo, stubOrderCounter{count: 2})

	created, err := svc.Create(context.Background(), newClient(t, "Ana", "Silva", "11111111111"))
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID)
	require.ErrorIs(t, err, ErrHasOrders)

	_, err = svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
}

func TestDeleteClient_MissingWinsOverGuard(t *testing.T) {
	svc := NewService(clientmemory.NewRepository(), stubOrderCounter{count: 5})

	err := svc.Delete(context.Background(), 42)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDeleteClient_Success(t *testing.T) {
	svc := NewService(clientmemory.NewRepository(), stubOrderCounter{})

	created, err := svc.Create(context.Background(), newClient(t, "Ana", "Silva", "11111111111"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)
}
