package vendasserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	productapp "github.com/vendasapp/vendas-api/internal/domains/products/application"
	productdomain "github.com/vendasapp/vendas-api/internal/domains/products/domain"
	productports "github.com/vendasapp/vendas-api/internal/domains/products/ports"
	apierrors "github.com/vendasapp/vendas-api/internal/shared/errors"
)

// ProductsAPI implements the /produtos endpoints.
type ProductsAPI struct {
	service productports.Service
}

// NewProductsAPI wires dependencies.
func NewProductsAPI(service productports.Service) ProductsAPI {
	return ProductsAPI{service: service}
}

// Product is the transport-level product payload.
type Product struct {
	Id    int64   `json:"id"`
	Nome  string  `json:"nome"`
	Preco float64 `json:"preco"`
}

func fromDomainProduct(product *productdomain.Product) Product {
	if product == nil {
		return Product{}
	}
	return Product{
		Id:    product.ID,
		Nome:  product.Name,
		Preco: product.Price,
	}
}

func (payload Product) toDomain() (*productdomain.Product, error) {
	return productdomain.NewProduct(payload.Id, payload.Nome, payload.Preco)
}

// Get /produtos
// List catalog products. An empty catalog is reported as absence.
func (api *ProductsAPI) ListProducts(c *gin.Context) {
	products, err := api.service.List(c.Request.Context())
	if err != nil {
		respondProductError(c, err)
		return
	}
	if len(products) == 0 {
		respondNotFound(c, "Nenhum produto cadastrado!")
		return
	}
	result := make([]Product, 0, len(products))
	for _, product := range products {
		result = append(result, fromDomainProduct(product))
	}
	c.JSON(http.StatusOK, result)
}

// Get /produtos/:idProduto
// Fetch a product by identifier.
func (api *ProductsAPI) GetProductByID(c *gin.Context) {
	id, ok := pathID(c, "idProduto")
	if !ok {
		return
	}
	product, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainProduct(product))
}

// Post /incluirProduto
// Create a catalog product.
func (api *ProductsAPI) CreateProduct(c *gin.Context) {
	var payload Product
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	product, err := payload.toDomain()
	if err != nil {
		respondProductError(c, err)
		return
	}
	created, err := api.service.Create(c.Request.Context(), product)
	if err != nil {
		respondProductError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromDomainProduct(created))
}

// Put /atualizarProduto/:id
// Update a catalog product.
func (api *ProductsAPI) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload Product
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	product, err := payload.toDomain()
	if err != nil {
		respondProductError(c, err)
		return
	}
	updated, err := api.service.Update(c.Request.Context(), id, product)
	if err != nil {
		respondProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainProduct(updated))
}

// Delete /excluirProduto/:id
// Delete a product not referenced by any order line item.
func (api *ProductsAPI) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produto excluído com sucesso"})
}

func respondProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, productports.ErrNotFound):
		respondNotFound(c, "Produto não encontrado")
	case errors.Is(err, productapp.ErrHasOrderItems):
		respondProblem(c, apierrors.ErrHasDependents.
			WithDetail("Produto possui itens de pedidos associados e não pode ser excluído").
			WithExtension("dependent", "itemDoPedido"))
	case errors.Is(err, productdomain.ErrEmptyName), errors.Is(err, productdomain.ErrNegativePrice):
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
	default:
		respondInternal(c)
	}
}
