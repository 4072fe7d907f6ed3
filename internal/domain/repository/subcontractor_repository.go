package repository

import (
	"context"

	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
)

// SubcontractorRepository puerto de persistencia de sous-traitants.
// Todo acceso va filtrado por enterpriseID; Update y Delete devuelven
// domain.ErrNotFound si la fila no existe o es de otra empresa.
type SubcontractorRepository interface {
	Create(ctx context.Context, s *entity.Subcontractor) error
	GetByID(ctx context.Context, enterpriseID, id string) (*entity.Subcontractor, error)
	List(ctx context.Context, enterpriseID string) ([]*entity.Subcontractor, error)
	Update(ctx context.Context, s *entity.Subcontractor) error
	Delete(ctx context.Context, enterpriseID, id string) error
	Count(ctx context.Context, enterpriseID string) (int, error)
}
