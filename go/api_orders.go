package vendasserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	orderdomain "github.com/vendasapp/vendas-api/internal/domains/orders/domain"
	orderports "github.com/vendasapp/vendas-api/internal/domains/orders/ports"
	apierrors "github.com/vendasapp/vendas-api/internal/shared/errors"
)

// OrdersAPI implements the order endpoints.
type OrdersAPI struct {
	service orderports.Service
}

// NewOrdersAPI wires dependencies.
func NewOrdersAPI(service orderports.Service) OrdersAPI {
	return OrdersAPI{service: service}
}

// Order is the transport-level order payload.
type Order struct {
	Id        int64  `json:"id"`
	Data      string `json:"data"`
	IdCliente int64  `json:"id_cliente"`
}

// OrderSummary is the order half of a composed order view.
type OrderSummary struct {
	Id   int64  `json:"id"`
	Data string `json:"data"`
}

// OrderView composes an order with its owning client. Cliente is null when
// the referenced client no longer exists.
type OrderView struct {
	Pedido  OrderSummary `json:"pedido"`
	Cliente *Client      `json:"cliente"`
}

func fromDomainOrder(order *orderdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	return Order{
		Id:        order.ID,
		Data:      order.Date,
		IdCliente: order.ClientID,
	}
}

func fromDomainOrderView(view *orderdomain.OrderView) OrderView {
	result := OrderView{
		Pedido: OrderSummary{
			Id:   view.Order.ID,
			Data: view.Order.Date,
		},
	}
	if view.Client != nil {
		result.Cliente = &Client{
			Id:        view.Client.ID,
			Nome:      view.Client.FirstName,
			Sobrenome: view.Client.LastName,
			Cpf:       view.Client.CPF,
		}
	}
	return result
}

func (payload Order) toDomain() (*orderdomain.Order, error) {
	return orderdomain.NewOrder(payload.Id, payload.Data, payload.IdCliente)
}

// Get /Pedidos
// List orders with their owning client embedded, wrapped in a named
// collection.
func (api *OrdersAPI) ListOrders(c *gin.Context) {
	views, err := api.service.ListOrders(c.Request.Context())
	if err != nil {
		respondOrderError(c, err)
		return
	}
	if len(views) == 0 {
		respondNotFound(c, "Nenhum pedido cadastrado!")
		return
	}
	result := make([]OrderView, 0, len(views))
	for _, view := range views {
		result = append(result, fromDomainOrderView(view))
	}
	c.JSON(http.StatusOK, gin.H{"pedidos": result})
}

// Get /pedidos/:idPedido
// Fetch an order by identifier, with its owning client embedded.
func (api *OrdersAPI) GetOrderByID(c *gin.Context) {
	id, ok := pathID(c, "idPedido")
	if !ok {
		return
	}
	view, err := api.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainOrderView(view))
}

// Post /incluirPedido
// Create an order.
func (api *OrdersAPI) CreateOrder(c *gin.Context) {
	var payload Order
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	order, err := payload.toDomain()
	if err != nil {
		respondOrderError(c, err)
		return
	}
	created, err := api.service.CreateOrder(c.Request.Context(), order)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromDomainOrder(created))
}

// Put /atualizarPedido/:id
// Update an order.
func (api *OrdersAPI) UpdateOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload Order
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	order, err := payload.toDomain()
	if err != nil {
		respondOrderError(c, err)
		return
	}
	updated, err := api.service.UpdateOrder(c.Request.Context(), id, order)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainOrder(updated))
}

// Delete /excluirPedido/:id
// Delete an order. Line items referencing the order are not checked.
func (api *OrdersAPI) DeleteOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := api.service.DeleteOrder(c.Request.Context(), id); err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pedido excluído com sucesso"})
}

func respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, orderports.ErrOrderNotFound):
		respondNotFound(c, "Pedido não encontrado")
	case errors.Is(err, orderdomain.ErrEmptyDate), errors.Is(err, orderdomain.ErrInvalidClientID):
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
	default:
		respondInternal(c)
	}
}
