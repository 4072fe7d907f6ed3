package postgres

import (
	"context"

	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
)

var _ repository.SubcontractorRepository = (*SubcontractorRepo)(nil)

// SubcontractorRepo sous-traitants sobre PostgreSQL.
type SubcontractorRepo struct {
	t tenantTable[entity.Subcontractor]
}

// NewSubcontractorRepository construye el adaptador.
func NewSubcontractorRepository(q Querier) *SubcontractorRepo {
	return &SubcontractorRepo{t: newTenantTable[entity.Subcontractor](q, "subcontractors",
		"id", "enterprise_id", "name", "trade", "email", "phone", "city", "siret",
		"address", "postal_code", "rating", "in_private_directory", "created_at", "updated_at",
	)}
}

func (r *SubcontractorRepo) Create(ctx context.Context, s *entity.Subcontractor) error {
	return r.t.insert(ctx,
		s.ID, s.EnterpriseID, s.Name, s.Trade, s.Email, s.Phone, s.City, s.Siret,
		s.Address, s.PostalCode, s.Rating, s.InPrivateDirectory, s.CreatedAt, s.UpdatedAt,
	)
}

func (r *SubcontractorRepo) GetByID(ctx context.Context, enterpriseID, id string) (*entity.Subcontractor, error) {
	return r.t.get(ctx, enterpriseID, id)
}

func (r *SubcontractorRepo) List(ctx context.Context, enterpriseID string) ([]*entity.Subcontractor, error) {
	return r.t.list(ctx, enterpriseID, nil)
}

func (r *SubcontractorRepo) Update(ctx context.Context, s *entity.Subcontractor) error {
	return r.t.update(ctx, s.EnterpriseID, s.ID,
		[]string{"name", "trade", "email", "phone", "city", "siret", "address", "postal_code", "rating", "updated_at"},
		s.Name, s.Trade, s.Email, s.Phone, s.City, s.Siret, s.Address, s.PostalCode, s.Rating, s.UpdatedAt,
	)
}

func (r *SubcontractorRepo) Delete(ctx context.Context, enterpriseID, id string) error {
	return r.t.delete(ctx, enterpriseID, id)
}

func (r *SubcontractorRepo) Count(ctx context.Context, enterpriseID string) (int, error) {
	return r.t.count(ctx, enterpriseID, "")
}
