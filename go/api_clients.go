package vendasserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	clientdomain "github.com/vendasapp/vendas-api/internal/domains/clients/domain"
	clientports "github.com/vendasapp/vendas-api/internal/domains/clients/ports"
	clientapp "github.com/vendasapp/vendas-api/internal/domains/clients/application"
	apierrors "github.com/vendasapp/vendas-api/internal/shared/errors"
)

// ClientsAPI implements the /clientes endpoints.
type ClientsAPI struct {
	service clientports.Service
}

// NewClientsAPI wires dependencies.
func NewClientsAPI(service clientports.Service) ClientsAPI {
	return ClientsAPI{service: service}
}

// Client is the transport-level client payload.
type Client struct {
	Id        int64  `json:"id"`
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Cpf       string `json:"cpf"`
}

func fromDomainClient(client *clientdomain.Client) Client {
	if client == nil {
		return Client{}
	}
	return Client{
		Id:        client.ID,
		Nome:      client.FirstName,
		Sobrenome: client.LastName,
		Cpf:       client.CPF,
	}
}

func (payload Client) toDomain() (*clientdomain.Client, error) {
	return clientdomain.NewClient(payload.Id, payload.Nome, payload.Sobrenome, payload.Cpf)
}

// Get /clientes
// List registered clients. An empty store is reported as absence, not as an
// empty success; existing consumers depend on the 404.
func (api *ClientsAPI) ListClients(c *gin.Context) {
	clients, err := api.service.List(c.Request.Context())
	if err != nil {
		respondClientError(c, err)
		return
	}
	if len(clients) == 0 {
		respondNotFound(c, "Nenhum cliente cadastrado!")
		return
	}
	result := make([]Client, 0, len(clients))
	for _, client := range clients {
		result = append(result, fromDomainClient(client))
	}
	c.JSON(http.StatusOK, result)
}

// Get /clientes/:idCliente
// Fetch a client by identifier.
func (api *ClientsAPI) GetClientByID(c *gin.Context) {
	id, ok := pathID(c, "idCliente")
	if !ok {
		return
	}
	client, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondClientError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainClient(client))
}

// Post /incluirCliente
// Create a client. The CPF must not collide with any registered client.
func (api *ClientsAPI) CreateClient(c *gin.Context) {
	var payload Client
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	client, err := payload.toDomain()
	if err != nil {
		respondClientError(c, err)
		return
	}
	created, err := api.service.Create(c.Request.Context(), client)
	if err != nil {
		respondClientError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromDomainClient(created))
}

// Put /atualizarCliente/:idCliente
// Update a client. The client may keep its own CPF.
func (api *ClientsAPI) UpdateClient(c *gin.Context) {
	id, ok := pathID(c, "idCliente")
	if !ok {
		return
	}
	var payload Client
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	client, err := payload.toDomain()
	if err != nil {
		respondClientError(c, err)
		return
	}
	updated, err := api.service.Update(c.Request.Context(), id, client)
	if err != nil {
		respondClientError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainClient(updated))
}

// Delete /excluirCliente/:idCliente
// Delete a client with no orders attached.
func (api *ClientsAPI) DeleteClient(c *gin.Context) {
	id, ok := pathID(c, "idCliente")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondClientError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cliente excluído com sucesso"})
}

func respondClientError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, clientports.ErrNotFound):
		respondNotFound(c, "Cliente não encontrado")
	case errors.Is(err, clientports.ErrDuplicateCPF):
		respondProblem(c, apierrors.ErrDuplicate.
			WithDetail("CPF já está sendo usado por outro cliente").
			WithExtension("field", "cpf"))
	case errors.Is(err, clientapp.ErrHasOrders):
		respondProblem(c, apierrors.ErrHasDependents.
			WithDetail("Não é possível excluir o cliente, pois há pedidos vinculados a ele.").
			WithExtension("dependent", "pedido"))
	case errors.Is(err, clientdomain.ErrEmptyCPF), errors.Is(err, clientdomain.ErrEmptyFirstName):
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
	default:
		respondInternal(c)
	}
}
