package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	vendasserver "github.com/vendasapp/vendas-api/go"

	clientmemory "github.com/vendasapp/vendas-api/internal/domains/clients/adapters/memory"
	clientobs "github.com/vendasapp/vendas-api/internal/domains/clients/adapters/observability"
	clientpostgres "github.com/vendasapp/vendas-api/internal/domains/clients/adapters/persistence/postgres"
	clientapp "github.com/vendasapp/vendas-api/internal/domains/clients/application"
	clientports "github.com/vendasapp/vendas-api/internal/domains/clients/ports"

	productmemory "github.com/vendasapp/vendas-api/internal/domains/products/adapters/memory"
	productobs "github.com/vendasapp/vendas-api/internal/domains/products/adapters/observability"
	productpostgres "github.com/vendasapp/vendas-api/internal/domains/products/adapters/persistence/postgres"
	productapp "github.com/vendasapp/vendas-api/internal/domains/products/application"
	productports "github.com/vendasapp/vendas-api/internal/domains/products/ports"

	orderdirectory "github.com/vendasapp/vendas-api/internal/domains/orders/adapters/directory"
	ordermemory "github.com/vendasapp/vendas-api/internal/domains/orders/adapters/memory"
	orderobs "github.com/vendasapp/vendas-api/internal/domains/orders/adapters/observability"
	orderpostgres "github.com/vendasapp/vendas-api/internal/domains/orders/adapters/persistence/postgres"
	orderapp "github.com/vendasapp/vendas-api/internal/domains/orders/application"
	orderports "github.com/vendasapp/vendas-api/internal/domains/orders/ports"

	employeememory "github.com/vendasapp/vendas-api/internal/domains/employees/adapters/memory"
	employeeobs "github.com/vendasapp/vendas-api/internal/domains/employees/adapters/observability"
	employeepostgres "github.com/vendasapp/vendas-api/internal/domains/employees/adapters/persistence/postgres"
	employeeapp "github.com/vendasapp/vendas-api/internal/domains/employees/application"
	employeeports "github.com/vendasapp/vendas-api/internal/domains/employees/ports"

	"github.com/vendasapp/vendas-api/internal/platform/migrations"
	platformobservability "github.com/vendasapp/vendas-api/internal/platform/observability"
	platformpostgres "github.com/vendasapp/vendas-api/internal/platform/postgres"
)

// Run boots the sales HTTP API with observability and repositories wired.
func Run(ctx context.Context) error {
	const serviceName = "vendas-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	repos, cleanup := buildRepositories(ctx, logger)
	defer cleanup()

	clientService := clientobs.New(
		clientapp.NewService(repos.clients, repos.orders),
		clientobs.WithLogger(logger),
		clientobs.WithTracer(instruments.Tracer("internal.clients.application")),
		clientobs.WithMeter(instruments.Meter("internal.clients.application")),
	)
	productService := productobs.New(
		productapp.NewService(repos.products, repos.items),
		productobs.WithLogger(logger),
		productobs.WithTracer(instruments.Tracer("internal.products.application")),
		productobs.WithMeter(instruments.Meter("internal.products.application")),
	)
	orderService := orderobs.New(
		orderapp.NewService(repos.orders, repos.items, orderdirectory.NewClientDirectory(clientService)),
		orderobs.WithLogger(logger),
		orderobs.WithTracer(instruments.Tracer("internal.orders.application")),
		orderobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	employeeService := employeeobs.New(
		employeeapp.NewService(repos.employees),
		employeeobs.WithLogger(logger),
		employeeobs.WithTracer(instruments.Tracer("internal.employees.application")),
		employeeobs.WithMeter(instruments.Meter("internal.employees.application")),
	)

	handlers := vendasserver.ApiHandleFunctions{
		ClientsAPI:    vendasserver.NewClientsAPI(clientService),
		ProductsAPI:   vendasserver.NewProductsAPI(productService),
		OrdersAPI:     vendasserver.NewOrdersAPI(orderService),
		OrderItemsAPI: vendasserver.NewOrderItemsAPI(orderService),
		EmployeesAPI:  vendasserver.NewEmployeesAPI(employeeService),
	}

	engine := gin.Default()
	engine.Use(otelgin.Middleware(serviceName))
	engine.Use(requestIDMiddleware())
	if cfg.RequestTimeout > 0 {
		engine.Use(timeoutMiddleware(cfg.RequestTimeout))
	}
	router := vendasserver.NewRouterWithGinEngine(engine, handlers)

	addr := ":" + cfg.Port
	logger.Info("sales API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("sales API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// repositories groups the per-context stores behind their ports. The order
// repositories double as the dependency counters consumed by the client and
// product services.
type repositories struct {
	clients   clientports.Repository
	products  productports.Repository
	orders    orderports.OrderRepository
	items     orderports.ItemRepository
	employees employeeports.Repository
}

func buildRepositories(ctx context.Context, logger *slog.Logger) (repositories, func()) {
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	if db == nil {
		return repositories{
			clients:   clientmemory.NewRepository(),
			products:  productmemory.NewRepository(),
			orders:    ordermemory.NewRepository(),
			items:     ordermemory.NewItemRepository(),
			employees: employeememory.NewRepository(),
		}, cleanup
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("failed to run migrations, falling back to in-memory repositories", slog.String("error", err.Error()))
		cleanup()
		return repositories{
			clients:   clientmemory.NewRepository(),
			products:  productmemory.NewRepository(),
			orders:    ordermemory.NewRepository(),
			items:     ordermemory.NewItemRepository(),
			employees: employeememory.NewRepository(),
		}, func() {}
	}
	logger.Info("repositories configured with postgres")
	return repositories{
		clients:   clientpostgres.NewRepository(db),
		products:  productpostgres.NewRepository(db),
		orders:    orderpostgres.NewRepository(db),
		items:     orderpostgres.NewItemRepository(db),
		employees: employeepostgres.NewRepository(db),
	}, cleanup
}
