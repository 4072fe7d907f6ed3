package postgres

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
)

var _ repository.StatementRepository = (*StatementRepo)(nil)

// StatementRepo situations sobre PostgreSQL.
type StatementRepo struct {
	t tenantTable[entity.Statement]
}

// NewStatementRepository construye el adaptador.
func NewStatementRepository(q Querier) *StatementRepo {
	return &StatementRepo{t: newTenantTable[entity.Statement](q, "statements",
		"id", "enterprise_id", "site_id", "subcontractor_id", "number", "month",
		"amount_excl_tax", "vat_rate", "status", "created_at", "updated_at",
	)}
}

func (r *StatementRepo) Create(ctx context.Context, s *entity.Statement) error {
	return r.t.insert(ctx,
		s.ID, s.EnterpriseID, s.SiteID, s.SubcontractorID, s.Number, s.Month,
		s.AmountExclTax, s.VATRate, s.Status, s.CreatedAt, s.UpdatedAt,
	)
}

func (r *StatementRepo) GetByID(ctx context.Context, enterpriseID, id string) (*entity.Statement, error) {
	return r.t.get(ctx, enterpriseID, id)
}

func (r *StatementRepo) List(ctx context.Context, enterpriseID string, f repository.StatementFilter) ([]*entity.Statement, error) {
	return r.t.list(ctx, enterpriseID, map[string]string{"site_id": f.SiteID})
}

func (r *StatementRepo) Update(ctx context.Context, s *entity.Statement) error {
	return r.t.update(ctx, s.EnterpriseID, s.ID,
		[]string{"subcontractor_id", "number", "month", "amount_excl_tax", "vat_rate", "status", "updated_at"},
		s.SubcontractorID, s.Number, s.Month, s.AmountExclTax, s.VATRate, s.Status, s.UpdatedAt,
	)
}

// SumAmountByStatus suma el HT de las situations con ese estado (0 si no hay ninguna).
func (r *StatementRepo) SumAmountByStatus(ctx context.Context, enterpriseID, status string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.t.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount_excl_tax), 0) FROM statements WHERE enterprise_id = $1 AND status = $2`,
		enterpriseID, status,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, storeErr("sum statements", err)
	}
	return total, nil
}
