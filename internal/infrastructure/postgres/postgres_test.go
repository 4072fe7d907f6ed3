package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgmodule "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/btp-connect-api/internal/domain"
	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
	"github.com/jhoicas/btp-connect-api/internal/infrastructure/postgres"
	"github.com/jhoicas/btp-connect-api/pkg/config"
	"github.com/jhoicas/btp-connect-api/pkg/logger"
)

// setupStore levanta un PostgreSQL en contenedor, aplica migraciones y devuelve el Store.
// Sólo corre con POSTGRES_INTEGRATION=true.
func setupStore(t *testing.T) *postgres.Store {
	t.Helper()
	if os.Getenv("POSTGRES_INTEGRATION") != "true" {
		t.Skip("POSTGRES_INTEGRATION!=true, se omiten los tests de integración")
	}
	ctx := context.Background()

	container, err := pgmodule.Run(ctx,
		"postgres:16-alpine",
		pgmodule.WithDatabase("btp_test"),
		pgmodule.WithUsername("test"),
		pgmodule.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Skipf("no se pudo iniciar el contenedor PostgreSQL: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 5})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool, logger.Nop()))
	require.NoError(t, postgres.Migrate(ctx, pool, logger.Nop()), "migrar dos veces no falla")
	return postgres.NewStore(pool)
}

func newEnterprise(t *testing.T, s *postgres.Store, isDefault bool) *entity.Enterprise {
	t.Helper()
	e := &entity.Enterprise{ID: uuid.NewString(), Name: "Empresa", Plan: entity.PlanPro, IsDefault: isDefault, CreatedAt: time.Now().UTC()}
	require.NoError(t, s.Enterprises.Create(context.Background(), e))
	return e
}

func TestPostgres_Integracion(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	t.Run("empresa por defecto única", func(t *testing.T) {
		e := newEnterprise(t, s, true)
		dup := &entity.Enterprise{ID: uuid.NewString(), Name: "Otra", IsDefault: true, CreatedAt: time.Now().UTC()}
		assert.ErrorIs(t, s.Enterprises.Create(ctx, dup), domain.ErrDuplicate)

		first, err := s.Enterprises.FindFirst(ctx)
		require.NoError(t, err)
		assert.Equal(t, e.ID, first.ID)
	})

	t.Run("usuarios únicos por empresa", func(t *testing.T) {
		e := newEnterprise(t, s, false)
		u := &entity.User{ID: uuid.NewString(), EnterpriseID: e.ID, Email: "a@b.fr", PasswordHash: "h", Role: entity.RoleAdmin, CreatedAt: time.Now().UTC()}
		require.NoError(t, s.Users.Create(ctx, u))
		u2 := *u
		u2.ID = uuid.NewString()
		assert.ErrorIs(t, s.Users.Create(ctx, &u2), domain.ErrDuplicate)

		got, err := s.Users.FindByEmailAndEnterprise(ctx, "a@b.fr", e.ID)
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)

		missing, err := s.Users.GetByID(ctx, "no-es-un-uuid")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("crud chantier con aislamiento", func(t *testing.T) {
		a := newEnterprise(t, s, false)
		b := newEnterprise(t, s, false)
		now := time.Now().UTC()
		amount := decimal.RequireFromString("1250000.50")
		site := &entity.Site{ID: uuid.NewString(), EnterpriseID: a.ID, Name: "Tour", ContractAmount: &amount, Status: entity.SiteStatusInProgress, CreatedAt: now, UpdatedAt: now}
		require.NoError(t, s.Sites.Create(ctx, site))

		got, err := s.Sites.GetByID(ctx, a.ID, site.ID)
		require.NoError(t, err)
		require.NotNil(t, got.ContractAmount)
		assert.True(t, amount.Equal(*got.ContractAmount))
		assert.Nil(t, got.Client)

		other, err := s.Sites.GetByID(ctx, b.ID, site.ID)
		require.NoError(t, err)
		assert.Nil(t, other)

		got.Progress = 80
		require.NoError(t, s.Sites.Update(ctx, got))
		got.EnterpriseID = b.ID
		assert.ErrorIs(t, s.Sites.Update(ctx, got), domain.ErrNotFound)

		n, err := s.Sites.CountByStatus(ctx, a.ID, entity.SiteStatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		assert.ErrorIs(t, s.Sites.Delete(ctx, b.ID, site.ID), domain.ErrNotFound)
		require.NoError(t, s.Sites.Delete(ctx, a.ID, site.ID))
	})

	t.Run("situations filtradas y sumadas", func(t *testing.T) {
		e := newEnterprise(t, s, false)
		now := time.Now().UTC()
		for i, status := range []string{entity.StatementStatusPending, entity.StatementStatusPending, entity.StatementStatusValidated} {
			require.NoError(t, s.Statements.Create(ctx, &entity.Statement{
				ID: uuid.NewString(), EnterpriseID: e.ID, SiteID: "c1", Number: i + 1, Month: "2024-01-01",
				AmountExclTax: decimal.NewFromInt(1000), VATRate: entity.DefaultVATRate, Status: status,
				CreatedAt: now.Add(time.Duration(i) * time.Second), UpdatedAt: now,
			}))
		}
		list, err := s.Statements.List(ctx, e.ID, repository.StatementFilter{SiteID: "c1"})
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, 1, list[0].Number)

		sum, err := s.Statements.SumAmountByStatus(ctx, e.ID, entity.StatementStatusPending)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(2000).Equal(sum), sum.String())
	})

	t.Run("tx runner serializa por empresa", func(t *testing.T) {
		e := newEnterprise(t, s, false)
		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := s.Tx.RunForEnterprise(ctx, e.ID, func(repos repository.SeedRepos) error {
					n, err := repos.Subcontractors.Count(ctx, e.ID)
					if err != nil || n > 0 {
						return err
					}
					now := time.Now().UTC()
					return repos.Subcontractors.Create(ctx, &entity.Subcontractor{
						ID: uuid.NewString(), EnterpriseID: e.ID, Name: "ELEC Pro", InPrivateDirectory: true, CreatedAt: now, UpdatedAt: now,
					})
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
		n, err := s.Subcontractors.Count(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, s.Ping(ctx))
	})
}
