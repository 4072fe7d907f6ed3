package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/btp-connect-api/internal/domain"
	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, enterprise_id, email, password_hash, name, surname, role, created_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. (enterprise_id, email) es único → ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.EnterpriseID, u.Email, u.PasswordHash, u.Name, u.Surname, u.Role, u.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storeErr("insert user", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.one(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// FindByEmail obtiene un usuario por email (cualquier empresa). Si el email existe en
// varias empresas gana el más antiguo.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.one(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1 ORDER BY created_at, id LIMIT 1`, email)
}

// FindByEmailAndEnterprise obtiene un usuario por email dentro de una empresa.
func (r *UserRepo) FindByEmailAndEnterprise(ctx context.Context, email, enterpriseID string) (*entity.User, error) {
	return r.one(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1 AND enterprise_id = $2`, email, enterpriseID)
}

// FindAnyByEnterprise devuelve el usuario más antiguo de la empresa.
func (r *UserRepo) FindAnyByEnterprise(ctx context.Context, enterpriseID string) (*entity.User, error) {
	return r.one(ctx, `SELECT `+userColumns+` FROM users WHERE enterprise_id = $1 ORDER BY created_at, id LIMIT 1`, enterpriseID)
}

func (r *UserRepo) one(ctx context.Context, query string, args ...any) (*entity.User, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr("get user", err)
	}
	u, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[entity.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get user", err)
	}
	return u, nil
}
