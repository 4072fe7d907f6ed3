package postgres

import (
	"context"

	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo documentos de sous-traitants sobre PostgreSQL.
type DocumentRepo struct {
	t tenantTable[entity.Document]
}

// NewDocumentRepository construye el adaptador.
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{t: newTenantTable[entity.Document](q, "documents",
		"id", "enterprise_id", "subcontractor_id", "type", "name", "file_url",
		"expires_on", "status", "created_at", "updated_at",
	)}
}

func (r *DocumentRepo) Create(ctx context.Context, d *entity.Document) error {
	return r.t.insert(ctx,
		d.ID, d.EnterpriseID, d.SubcontractorID, d.Type, d.Name, d.FileURL,
		d.ExpiresOn, d.Status, d.CreatedAt, d.UpdatedAt,
	)
}

func (r *DocumentRepo) List(ctx context.Context, enterpriseID string, f repository.DocumentFilter) ([]*entity.Document, error) {
	return r.t.list(ctx, enterpriseID, map[string]string{"subcontractor_id": f.SubcontractorID})
}
