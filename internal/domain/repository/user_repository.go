package repository

import (
	"context"

	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) si no hay resultado.
type UserRepository interface {
	// Create devuelve domain.ErrDuplicate si el email ya existe en esa empresa.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByEmailAndEnterprise(ctx context.Context, email, enterpriseID string) (*entity.User, error)
	// FindAnyByEnterprise devuelve el usuario más antiguo de la empresa.
	FindAnyByEnterprise(ctx context.Context, enterpriseID string) (*entity.User, error)
}
