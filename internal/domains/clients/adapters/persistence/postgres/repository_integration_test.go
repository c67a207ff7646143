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

	"github.com/vendasapp/vendas-api/internal/domains/clients/domain"
	"github.com/vendasapp/vendas-api/internal/domains/clients/ports"
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

func mustClient(t *testing.T, firstName, lastName, cpf string) *domain.Client {
	t.Helper()
	client, err := domain.NewClient(0, firstName, lastName, cpf)
	require.NoError(t, err)
	return client
}

func TestPostgresRepository_CreateAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, mustClient(t, "Ana", "Silva", "11111111111"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	retrieved, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", retrieved.FirstName)
	assert.Equal(t, "11111111111", retrieved.CPF)
}

func TestPostgresRepository_DuplicateCPFRejectedByIndex(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, mustClient(t, "Ana", "Silva", "11111111111"))
	require.NoError(t, err)

	// The unique index backstops the application-level check.
	_, err = repo.Create(ctx, mustClient(t, "Bea", "Souza", "11111111111"))
	assert.ErrorIs(t, err, ports.ErrDuplicateCPF)
}

func TestPostgresRepository_UpdateDuplicateCPFRejectedByIndex(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, mustClient(t, "Ana", "Silva", "11111111111"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, mustClient(t, "Bea", "Souza", "22222222222"))
	require.NoError(t, err)

	second.CPF = "11111111111"
	_, err = repo.Update(ctx, second)
	assert.ErrorIs(t, err, ports.ErrDuplicateCPF)
}

func TestPostgresRepository_CountOthersWithCPF(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, mustClient(t, "Ana", "Silva", "11111111111"))
	require.NoError(t, err)

	// Excluding the owner yields zero, so an update can keep its own CPF.
	count, err := repo.CountOthersWithCPF(ctx, "11111111111", created.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = repo.CountOthersWithCPF(ctx, "11111111111", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestPostgresRepository_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, mustClient(t, "Ana", "Silva", "11111111111"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestPostgresRepository_ListOrdered(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, mustClient(t, "Ana", "Silva", "11111111111"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, mustClient(t, "Bea", "Souza", "22222222222"))
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Less(t, all[0].ID, all[1].ID)
}
