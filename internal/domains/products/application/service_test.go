package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	productmemory "github.com/vendasapp/vendas-api/internal/domains/products/adapters/memory"
	"github.com/vendasapp/vendas-api/internal/domains/products/domain"
	"github.com/vendasapp/vendas-api/internal/domains/products/ports"
)

type stubItemCounter struct {
	count int64
}

func (s stubItemCounter) CountByProduct(context.Context, int64) (int64, error) {
	return s.count, nil
}

func newProduct(t *testing.T, name string, price float64) *domain.Product {
	t.Helper()
	product, err := domain.NewProduct(0, name, price)
	require.NoError(t, err)
	return product
}

func TestCreateProduct_AssignsID(t *testing.T) {
	svc := NewService(productmemory.NewRepository(), stubItemCounter{})

	created, err := svc.Create(context.Background(), newProduct(t, "Teclado", 149.9))

	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, "Teclado", created.Name)
}

func TestCreateProduct_NegativePrice(t *testing.T) {
	svc := NewService(productmemory.NewRepository(), stubItemCounter{})

	product := &domain.Product{Name: "Teclado", Price: -1}
	_, err := svc.Create(context.Background(), product)
	require.ErrorIs(t, err, domain.ErrNegativePrice)
}

func TestCreateProduct_ZeroPriceAllowed(t *testing.T) {
	svc := NewService(productmemory.NewRepository(), stubItemCounter{})

	created, err := svc.Create(context.Background(), newProduct(t, "Brinde", 0))
	require.NoError(t, err)
	require.Zero(t, created.Price)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	svc := NewService(productmemory.NewRepository(), stubItemCounter{})

	_, err := svc.Update(context.Background(), 42, newProduct(t, "Teclado", 149.9))
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDeleteProduct_BlockedByOrderItems(t *testing.T) {
	svc := NewService(productmemory.NewRepository(), stubItemCounter{count: 3})

	created, err := svc.Create(context.Background(), newProduct(t, "Teclado", 149.9))
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID)
	require.ErrorIs(t, err, ErrHasOrderItems)

	_, err = svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
}

func TestDeleteProduct_MissingWinsOverGuard(t *testing.T) {
	svc := NewService(productmemory.NewRepository(), stubItemCounter{count: 3})

	err := svc.Delete(context.Background(), 42)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDeleteProduct_Success(t *testing.T) {
	svc := NewService(productmemory.NewRepository(), stubItemCounter{})

	created, err := svc.Create(context.Background(), newProduct(t, "Teclado", 149.9))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)
}
