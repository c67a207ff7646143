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

	"github.com/vendasapp/vendas-api/internal/domains/employees/domain"
	"github.com/vendasapp/vendas-api/internal/domains/employees/ports"
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

func mustEmployee(t *testing.T, name, role string) *domain.Employee {
	t.Helper()
	employee, err := domain.NewEmployee(0, name, role)
	require.NoError(t, err)
	return employee
}

func TestPostgresRepository_EmployeeLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, mustEmployee(t, "Carlos", "vendedor"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	retrieved, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carlos", retrieved.Name)
	assert.Equal(t, "vendedor", retrieved.Role)

	retrieved.Role = "gerente"
	updated, err := repo.Update(ctx, retrieved)
	require.NoError(t, err)
	assert.Equal(t, "gerente", updated.Role)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestPostgresRepository_DuplicateNameRejectedByIndex(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, mustEmployee(t, "Carlos", "vendedor"))
	require.NoError(t, err)

	// The unique index backstops the application-level check.
	_, err = repo.Create(ctx, mustEmployee(t, "Carlos", "gerente"))
	assert.ErrorIs(t, err, ports.ErrDuplicateName)
}

func TestPostgresRepository_CountOthersWithName(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, mustEmployee(t, "Carlos", "vendedor"))
	require.NoError(t, err)

	count, err := repo.CountOthersWithName(ctx, "Carlos", created.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = repo.CountOthersWithName(ctx, "Carlos", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
