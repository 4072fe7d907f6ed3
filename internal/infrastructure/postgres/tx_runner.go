package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunForEnterprise inicia una transacción, toma un advisory lock por empresa (se libera con
// el commit o rollback), ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunForEnterprise(ctx context.Context, enterpriseID string, fn func(repos repository.SeedRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return storeErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, enterpriseID); err != nil {
		return storeErr("advisory lock", err)
	}

	repos := repository.SeedRepos{
		Subcontractors: NewSubcontractorRepository(tx),
		Sites:          NewSiteRepository(tx),
		Statements:     NewStatementRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return storeErr("commit transaction", fmt.Errorf("enterprise %s: %w", enterpriseID, err))
	}
	return nil
}
