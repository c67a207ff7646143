package vendasserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	orderdomain "github.com/vendasapp/vendas-api/internal/domains/orders/domain"
	orderports "github.com/vendasapp/vendas-api/internal/domains/orders/ports"
	apierrors "github.com/vendasapp/vendas-api/internal/shared/errors"
)

// OrderItemsAPI implements the order line-item endpoints.
type OrderItemsAPI struct {
	service orderports.Service
}

// NewOrderItemsAPI wires dependencies.
func NewOrderItemsAPI(service orderports.Service) OrderItemsAPI {
	return OrderItemsAPI{service: service}
}

// OrderItem is the transport-level line-item payload.
type OrderItem struct {
	Id         int64 `json:"id"`
	IdPedido   int64 `json:"id_pedido"`
	IdProduto  int64 `json:"id_produto"`
	Quantidade int32 `json:"quantidade"`
}

func fromDomainOrderItem(item *orderdomain.OrderItem) OrderItem {
	if item == nil {
		return OrderItem{}
	}
	return OrderItem{
		Id:         item.ID,
		IdPedido:   item.OrderID,
		IdProduto:  item.ProductID,
		Quantidade: item.Quantity,
	}
}

func (payload OrderItem) toDomain() (*orderdomain.OrderItem, error) {
	return orderdomain.NewOrderItem(payload.Id, payload.IdPedido, payload.IdProduto, payload.Quantidade)
}

// Get /itensDoPedido
// List order line items.
func (api *OrderItemsAPI) ListOrderItems(c *gin.Context) {
	items, err := api.service.ListItems(c.Request.Context())
	if err != nil {
		respondOrderItemError(c, err)
		return
	}
	if len(items) == 0 {
		respondNotFound(c, "Nenhum item de pedido cadastrado!")
		return
	}
	result := make([]OrderItem, 0, len(items))
	for _, item := range items {
		result = append(result, fromDomainOrderItem(item))
	}
	c.JSON(http.StatusOK, result)
}

// Get /itensDoPedido/:id
// Fetch a line item by identifier.
func (api *OrderItemsAPI) GetOrderItemByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	item, err := api.service.GetItem(c.Request.Context(), id)
	if err != nil {
		respondOrderItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainOrderItem(item))
}

// Post /incluirItemDoPedido
// Create a line item.
func (api *OrderItemsAPI) CreateOrderItem(c *gin.Context) {
	var payload OrderItem
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	item, err := payload.toDomain()
	if err != nil {
		respondOrderItemError(c, err)
		return
	}
	created, err := api.service.CreateItem(c.Request.Context(), item)
	if err != nil {
		respondOrderItemError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromDomainOrderItem(created))
}

// Put /atualizarItemDoPedido/:id
// Update a line item.
func (api *OrderItemsAPI) UpdateOrderItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload OrderItem
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	item, err := payload.toDomain()
	if err != nil {
		respondOrderItemError(c, err)
		return
	}
	updated, err := api.service.UpdateItem(c.Request.Context(), id, item)
	if err != nil {
		respondOrderItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainOrderItem(updated))
}

// Delete /excluirItemDoPedido/:id
// Delete a line item.
func (api *OrderItemsAPI) DeleteOrderItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := api.service.DeleteItem(c.Request.Context(), id); err != nil {
		respondOrderItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item do pedido excluído com sucesso"})
}

func respondOrderItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, orderports.ErrItemNotFound):
		respondNotFound(c, "Item do pedido não encontrado")
	case errors.Is(err, orderdomain.ErrInvalidOrderID),
		errors.Is(err, orderdomain.ErrInvalidProductID),
		errors.Is(err, orderdomain.ErrInvalidQuantity):
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
	default:
		respondInternal(c)
	}
}
