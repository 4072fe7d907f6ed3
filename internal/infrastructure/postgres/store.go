package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
)

// Store agrupa los repositorios sobre un mismo pool.
type Store struct {
	pool *pgxpool.Pool

	Enterprises    *EnterpriseRepo
	Users          *UserRepo
	Subcontractors *SubcontractorRepo
	Sites          *SiteRepo
	Invoices       *InvoiceRepo
	Statements     *StatementRepo
	Documents      *DocumentRepo
	Tx             *TxRunner
}

var _ repository.Pinger = (*Store)(nil)

// NewStore construye todos los adaptadores sobre el pool. El pool lo cierra quien lo creó.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:           pool,
		Enterprises:    NewEnterpriseRepository(pool),
		Users:          NewUserRepository(pool),
		Subcontractors: NewSubcontractorRepository(pool),
		Sites:          NewSiteRepository(pool),
		Invoices:       NewInvoiceRepository(pool),
		Statements:     NewStatementRepository(pool),
		Documents:      NewDocumentRepository(pool),
		Tx:             NewTxRunner(pool),
	}
}

// Ping comprueba la conexión con la base.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return storeErr("ping", err)
	}
	return nil
}
