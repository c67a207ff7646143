// Package vendasserver wires the HTTP surface of the sales API. Route paths
// are kept byte-for-byte compatible with the original service, including the
// mixed-case /Pedidos listing path.
package vendasserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route defines the parameters for a single API endpoint.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// Routes is a map of defined API endpoints.
type Routes map[string]Route

// ApiHandleFunctions aggregates the per-resource handler sets.
type ApiHandleFunctions struct {
	ClientsAPI    ClientsAPI
	ProductsAPI   ProductsAPI
	OrdersAPI     OrdersAPI
	OrderItemsAPI OrderItemsAPI
	EmployeesAPI  EmployeesAPI
}

// NewRouter returns a new gin router with all registered routes.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds all routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	router.GET("/health", healthHandler)
	return router
}

func defaultHandleFunc(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"message": "501 not implemented"})
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func getRoutes(handleFunctions ApiHandleFunctions) Routes {
	return Routes{
		"ListClients": {
			"ListClients",
			http.MethodGet,
			"/clientes",
			handleFunctions.ClientsAPI.ListClients,
		},
		"GetClientByID": {
			"GetClientByID",
			http.MethodGet,
			"/clientes/:idCliente",
			handleFunctions.ClientsAPI.GetClientByID,
		},
		"CreateClient": {
			"CreateClient",
			http.MethodPost,
			"/incluirCliente",
			handleFunctions.ClientsAPI.CreateClient,
		},
		"UpdateClient": {
			"UpdateClient",
			http.MethodPut,
			"/atualizarCliente/:idCliente",
			handleFunctions.ClientsAPI.UpdateClient,
		},
		"DeleteClient": {
			"DeleteClient",
			http.MethodDelete,
			"/excluirCliente/:idCliente",
			handleFunctions.ClientsAPI.DeleteClient,
		},
		"ListProducts": {
			"ListProducts",
			http.MethodGet,
			"/produtos",
			handleFunctions.ProductsAPI.ListProducts,
		},
		"GetProductByID": {
			"GetProductByID",
			http.MethodGet,
			"/produtos/:idProduto",
			handleFunctions.ProductsAPI.GetProductByID,
		},
		"CreateProduct": {
			"CreateProduct",
			http.MethodPost,
			"/incluirProduto",
			handleFunctions.ProductsAPI.CreateProduct,
		},
		"UpdateProduct": {
			"UpdateProduct",
			http.MethodPut,
			"/atualizarProduto/:id",
			handleFunctions.ProductsAPI.UpdateProduct,
		},
		"DeleteProduct": {
			"DeleteProduct",
			http.MethodDelete,
			"/excluirProduto/:id",
			handleFunctions.ProductsAPI.DeleteProduct,
		},
		"ListOrders": {
			"ListOrders",
			http.MethodGet,
			"/Pedidos",
			handleFunctions.OrdersAPI.ListOrders,
		},
		"GetOrderByID": {
			"GetOrderByID",
			http.MethodGet,
			"/pedidos/:idPedido",
			handleFunctions.OrdersAPI.GetOrderByID,
		},
		"CreateOrder": {
			"CreateOrder",
			http.MethodPost,
			"/incluirPedido",
			handleFunctions.OrdersAPI.CreateOrder,
		},
		"UpdateOrder": {
			"UpdateOrder",
			http.MethodPut,
			"/atualizarPedido/:id",
			handleFunctions.OrdersAPI.UpdateOrder,
		},
		"DeleteOrder": {
			"DeleteOrder",
			http.MethodDelete,
			"/excluirPedido/:id",
			handleFunctions.OrdersAPI.DeleteOrder,
		},
		"ListOrderItems": {
			"ListOrderItems",
			http.MethodGet,
			"/itensDoPedido",
			handleFunctions.OrderItemsAPI.ListOrderItems,
		},
		"GetOrderItemByID": {
			"GetOrderItemByID",
			http.MethodGet,
			"/itensDoPedido/:id",
			handleFunctions.OrderItemsAPI.GetOrderItemByID,
		},
		"CreateOrderItem": {
			"CreateOrderItem",
			http.MethodPost,
			"/incluirItemDoPedido",
			handleFunctions.OrderItemsAPI.CreateOrderItem,
		},
		"UpdateOrderItem": {
			"UpdateOrderItem",
			http.MethodPut,
			"/atualizarItemDoPedido/:id",
			handleFunctions.OrderItemsAPI.UpdateOrderItem,
		},
		"DeleteOrderItem": {
			"DeleteOrderItem",
			http.MethodDelete,
			"/excluirItemDoPedido/:id",
			handleFunctions.OrderItemsAPI.DeleteOrderItem,
		},
		"ListEmployees": {
			"ListEmployees",
			http.MethodGet,
			"/funcionarios",
			handleFunctions.EmployeesAPI.ListEmployees,
		},
		"GetEmployeeByID": {
			"GetEmployeeByID",
			http.MethodGet,
			"/funcionarios/:idFuncionario",
			handleFunctions.EmployeesAPI.GetEmployeeByID,
		},
		"CreateEmployee": {
			"CreateEmployee",
			http.MethodPost,
			"/incluirFuncionario",
			handleFunctions.EmployeesAPI.CreateEmployee,
		},
		"UpdateEmployee": {
			"UpdateEmployee",
			http.MethodPut,
			"/atualizarFuncionario/:id",
			handleFunctions.EmployeesAPI.UpdateEmployee,
		},
		"DeleteEmployee": {
			"DeleteEmployee",
			http.MethodDelete,
			"/excluirFuncionario/:id",
			handleFunctions.EmployeesAPI.DeleteEmployee,
		},
	}
}
