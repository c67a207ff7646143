//go:build integration
// +build integration

// To enable gopls support for this file, add the following to your VSCode settings.json:
// "gopls": {
//   "buildFlags": ["-tags=integration"]
// }

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vendasapp/vendas-api/internal/domains/orders/domain"
	"github.com/vendasapp/vendas-api/internal/domains/orders/ports"
	"github.com/vendasapp/vendas-api/internal/platform/migrations"
)

func setupPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("vendas_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func mustOrder(t *testing.T, date string, clientID int64) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(0, date, clientID)
	require.NoError(t, err)
	return order
}

func mustItem(t *testing.T, orderID, productID int64, quantity int32) *domain.OrderItem {
	t.Helper()
	item, err := domain.NewOrderItem(0, orderID, productID, quantity)
	require.NoError(t, err)
	return item
}

func TestPostgresRepository_OrderLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, mustOrder(t, "2024-03-01", 7))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	retrieved, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", retrieved.Date)
	assert.Equal(t, int64(7), retrieved.ClientID)

	retrieved.Date = "2024-03-15"
	updated, err := repo.Update(ctx, retrieved)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", updated.Date)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ports.ErrOrderNotFound)
}

func TestPostgresRepository_CountByClient(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, mustOrder(t, "2024-03-01", 7))
	require.NoError(t, err)
	_, err = repo.Create(ctx, mustOrder(t, "2024-03-02", 7))
	require.NoError(t, err)
	_, err = repo.Create(ctx, mustOrder(t, "2024-03-03", 8))
	require.NoError(t, err)

	count, err := repo.CountByClient(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByClient(ctx, 42)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPostgresItemRepository_Lifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewItemRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, mustItem(t, 3, 5, 2))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	retrieved, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), retrieved.OrderID)
	assert.Equal(t, int32(2), retrieved.Quantity)

	retrieved.Quantity = 4
	updated, err := repo.Update(ctx, retrieved)
	require.NoError(t, err)
	assert.Equal(t, int32(4), updated.Quantity)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ports.ErrItemNotFound)
}

func TestPostgresItemRepository_CountByProduct(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewItemRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, mustItem(t, 1, 5, 2))
	require.NoError(t, err)
	_, err = repo.Create(ctx, mustItem(t, 2, 5, 1))
	require.NoError(t, err)
	_, err = repo.Create(ctx, mustItem(t, 1, 6, 3))
	require.NoError(t, err)

	count, err := repo.CountByProduct(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByProduct(ctx, 42)
	require.NoError(t, err)
	assert.Zero(t, count)
}
