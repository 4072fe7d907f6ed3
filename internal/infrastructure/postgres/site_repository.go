package postgres

import (
	"context"

	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
)

var _ repository.SiteRepository = (*SiteRepo)(nil)

// SiteRepo chantiers sobre PostgreSQL.
type SiteRepo struct {
	t tenantTable[entity.Site]
}

// NewSiteRepository construye el adaptador.
func NewSiteRepository(q Querier) *SiteRepo {
	return &SiteRepo{t: newTenantTable[entity.Site](q, "sites",
		"id", "enterprise_id", "name", "client", "address", "contract_amount", "status",
		"progress", "start_date", "planned_end_date", "created_at", "updated_at",
	)}
}

func (r *SiteRepo) Create(ctx context.Context, s *entity.Site) error {
	return r.t.insert(ctx,
		s.ID, s.EnterpriseID, s.Name, s.Client, s.Address, s.ContractAmount, s.Status,
		s.Progress, s.StartDate, s.PlannedEndDate, s.CreatedAt, s.UpdatedAt,
	)
}

func (r *SiteRepo) GetByID(ctx context.Context, enterpriseID, id string) (*entity.Site, error) {
	return r.t.get(ctx, enterpriseID, id)
}

func (r *SiteRepo) List(ctx context.Context, enterpriseID string) ([]*entity.Site, error) {
	return r.t.list(ctx, enterpriseID, nil)
}

func (r *SiteRepo) Update(ctx context.Context, s *entity.Site) error {
	return r.t.update(ctx, s.EnterpriseID, s.ID,
		[]string{"name", "client", "address", "contract_amount", "status", "progress", "start_date", "planned_end_date", "updated_at"},
		s.Name, s.Client, s.Address, s.ContractAmount, s.Status, s.Progress, s.StartDate, s.PlannedEndDate, s.UpdatedAt,
	)
}

func (r *SiteRepo) Delete(ctx context.Context, enterpriseID, id string) error {
	return r.t.delete(ctx, enterpriseID, id)
}

func (r *SiteRepo) Count(ctx context.Context, enterpriseID string) (int, error) {
	return r.t.count(ctx, enterpriseID, "")
}

func (r *SiteRepo) CountByStatus(ctx context.Context, enterpriseID, status string) (int, error) {
	return r.t.count(ctx, enterpriseID, "status = $2", status)
}
