package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
)

// StatementFilter filtros opcionales del listado ("" = sin filtro).
type StatementFilter struct {
	SiteID string
}

// StatementRepository puerto de persistencia de situations.
type StatementRepository interface {
	Create(ctx context.Context, s *entity.Statement) error
	GetByID(ctx context.Context, enterpriseID, id string) (*entity.Statement, error)
	List(ctx context.Context, enterpriseID string, f StatementFilter) ([]*entity.Statement, error)
	Update(ctx context.Context, s *entity.Statement) error
	// SumAmountByStatus suma montantHT de las situations en ese estado.
	SumAmountByStatus(ctx context.Context, enterpriseID, status string) (decimal.Decimal, error)
}
