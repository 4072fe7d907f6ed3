package repository

import (
	"context"

	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
)

// DocumentFilter filtros opcionales del listado ("" = sin filtro).
type DocumentFilter struct {
	SubcontractorID string
}

// DocumentRepository puerto de persistencia de documentos de cumplimiento.
type DocumentRepository interface {
	Create(ctx context.Context, d *entity.Document) error
	List(ctx context.Context, enterpriseID string, f DocumentFilter) ([]*entity.Document, error)
}
