package repository

import (
	"context"

	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
)

// EnterpriseRepository define el puerto de persistencia para Enterprise (tenant).
type EnterpriseRepository interface {
	// Create devuelve domain.ErrDuplicate si ya existe una empresa marcada IsDefault.
	Create(ctx context.Context, enterprise *entity.Enterprise) error
	GetByID(ctx context.Context, id string) (*entity.Enterprise, error)
	// FindFirst devuelve la empresa más antigua o nil si no hay ninguna.
	FindFirst(ctx context.Context) (*entity.Enterprise, error)
}
