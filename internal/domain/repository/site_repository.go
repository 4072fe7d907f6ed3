package repository

import (
	"context"

	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
)

// SiteRepository puerto de persistencia de chantiers (mismo contrato de aislamiento que SubcontractorRepository).
type SiteRepository interface {
	Create(ctx context.Context, s *entity.Site) error
	GetByID(ctx context.Context, enterpriseID, id string) (*entity.Site, error)
	List(ctx context.Context, enterpriseID string) ([]*entity.Site, error)
	Update(ctx context.Context, s *entity.Site) error
	Delete(ctx context.Context, enterpriseID, id string) error
	Count(ctx context.Context, enterpriseID string) (int, error)
	CountByStatus(ctx context.Context, enterpriseID, status string) (int, error)
}
