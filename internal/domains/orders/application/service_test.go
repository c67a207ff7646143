package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	ordermemory "github.com/vendasapp/vendas-api/internal/domains/orders/adapters/memory"
	"github.com/vendasapp/vendas-api/internal/domains/orders/domain"
	"github.com/vendasapp/vendas-api/internal/domains/orders/ports"
)

// stubDirectory resolves client summaries from a fixed map; unknown ids
// resolve to a nil summary, like the real directory adapter.
type stubDirectory struct {
	clients map[int64]*domain.ClientSummary
}

func (s stubDirectory) FindClient(_ context.Context, id int64) (*domain.ClientSummary, error) {
	return s.clients[id], nil
}

func newTestService(clients map[int64]*domain.ClientSummary) *Service {
	return NewService(ordermemory.NewRepository(), ordermemory.NewItemRepository(), stubDirectory{clients: clients})
}

func newOrder(t *testing.T, date string, clientID int64) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(0, date, clientID)
	require.NoError(t, err)
	return order
}

func newItem(t *testing.T, orderID, productID int64, quantity int32) *domain.OrderItem {
	t.Helper()
	item, err := domain.NewOrderItem(0, orderID, productID, quantity)
	require.NoError(t, err)
	return item
}

func TestCreateOrder_AssignsID(t *testing.T) {
	svc := newTestService(nil)

	created, err := svc.CreateOrder(context.Background(), newOrder(t, "2024-03-01", 7))

	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, "2024-03-01", created.Date)
	require.Equal(t, int64(7), created.ClientID)
}

func TestCreateOrder_Invalid(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.CreateOrder(context.Background(), &domain.Order{Date: "", ClientID: 7})
	require.ErrorIs(t, err, domain.ErrEmptyDate)

	_, err = svc.CreateOrder(context.Background(), &domain.Order{Date: "2024-03-01", ClientID: 0})
	require.ErrorIs(t, err, domain.ErrInvalidClientID)
}

func TestGetOrder_EmbedsClientSummary(t *testing.T) {
	svc := newTestService(map[int64]*domain.ClientSummary{
		7: {ID: 7, FirstName: "Ana", LastName: "Silva", CPF: "11111111111"},
	})

	created, err := svc.CreateOrder(context.Background(), newOrder(t, "2024-03-01", 7))
	require.NoError(t, err)

	view, err := svc.GetOrder(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, view.Order.ID)
	require.NotNil(t, view.Client)
	require.Equal(t, "Ana", view.Client.FirstName)
	require.Equal(t, "11111111111", view.Client.CPF)
}

func TestGetOrder_MissingClientYieldsNilSummary(t *testing.T) {
	svc := newTestService(nil)

	created, err := svc.CreateOrder(context.Background(), newOrder(t, "2024-03-01", 7))
	require.NoError(t, err)

	view, err := svc.GetOrder(context.Background(), created.ID)
	require.NoError(t, err)
	require.Nil(t, view.Client)
}

func TestListOrders_BuildsViews(t *testing.T) {
	svc := newTestService(map[int64]*domain.ClientSummary{
		7: {ID: 7, FirstName: "Ana"},
	})

	_, err := svc.CreateOrder(context.Background(), newOrder(t, "2024-03-01", 7))
	require.NoError(t, err)
	_, err = svc.CreateOrder(context.Background(), newOrder(t, "2024-03-02", 8))
	require.NoError(t, err)

	views, err := svc.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.NotNil(t, views[0].Client)
	require.Nil(t, views[1].Client)
}

func TestUpdateOrder_NotFound(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.UpdateOrder(context.Background(), 42, newOrder(t, "2024-03-01", 7))
	require.ErrorIs(t, err, ports.ErrOrderNotFound)
}

func TestDeleteOrder_Unconditional(t *testing.T) {
	svc := newTestService(nil)

	created, err := svc.CreateOrder(context.Background(), newOrder(t, "2024-03-01", 7))
	require.NoError(t, err)

	// Line items referencing the order do not block deletion.
	_, err = svc.CreateItem(context.Background(), newItem(t, created.ID, 1, 2))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(context.Background(), created.ID))

	_, err = svc.GetOrder(context.Background(), created.ID)
	require.ErrorIs(t, err, ports.ErrOrderNotFound)
}

func TestCreateItem_AssignsID(t *testing.T) {
	svc := newTestService(nil)

	created, err := svc.CreateItem(context.Background(), newItem(t, 3, 5, 2))

	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, int64(3), created.OrderID)
	require.Equal(t, int64(5), created.ProductID)
	require.Equal(t, int32(2), created.Quantity)
}

func TestCreateItem_Invalid(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.CreateItem(context.Background(), &domain.OrderItem{OrderID: 0, ProductID: 5, Quantity: 2})
	require.ErrorIs(t, err, domain.ErrInvalidOrderID)

	_, err = svc.CreateItem(context.Background(), &domain.OrderItem{OrderID: 3, ProductID: 0, Quantity: 2})
	require.ErrorIs(t, err, domain.ErrInvalidProductID)

	_, err = svc.CreateItem(context.Background(), &domain.OrderItem{OrderID: 3, ProductID: 5, Quantity: 0})
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestUpdateItem_NotFound(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.UpdateItem(context.Background(), 42, newItem(t, 3, 5, 2))
	require.ErrorIs(t, err, ports.ErrItemNotFound)
}

func TestDeleteItem_Success(t *testing.T) {
	svc := newTestService(nil)

	created, err := svc.CreateItem(context.Background(), newItem(t, 3, 5, 2))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(context.Background(), created.ID))

	_, err = svc.GetItem(context.Background(), created.ID)
	require.ErrorIs(t, err, ports.ErrItemNotFound)
}
