package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/btp-connect-api/internal/domain"
	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
)

var _ repository.EnterpriseRepository = (*EnterpriseRepo)(nil)

const enterpriseColumns = `id, name, registration_number, plan, is_default, created_at`

// EnterpriseRepo implementación del puerto EnterpriseRepository sobre PostgreSQL.
type EnterpriseRepo struct {
	q Querier
}

// NewEnterpriseRepository construye el adaptador de persistencia para empresas.
func NewEnterpriseRepository(q Querier) *EnterpriseRepo {
	return &EnterpriseRepo{q: q}
}

// Create persiste una empresa. Una segunda empresa por defecto choca con el índice parcial → ErrDuplicate.
func (r *EnterpriseRepo) Create(ctx context.Context, e *entity.Enterprise) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO enterprises (`+enterpriseColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.Name, e.RegistrationNumber, e.Plan, e.IsDefault, e.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storeErr("insert enterprise", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID; (nil, nil) si no existe.
func (r *EnterpriseRepo) GetByID(ctx context.Context, id string) (*entity.Enterprise, error) {
	return r.one(ctx, `SELECT `+enterpriseColumns+` FROM enterprises WHERE id = $1`, id)
}

// FindFirst devuelve la empresa por defecto, o la más antigua si no hay ninguna marcada.
func (r *EnterpriseRepo) FindFirst(ctx context.Context) (*entity.Enterprise, error) {
	return r.one(ctx, `SELECT `+enterpriseColumns+` FROM enterprises ORDER BY is_default DESC, created_at, id LIMIT 1`)
}

func (r *EnterpriseRepo) one(ctx context.Context, query string, args ...any) (*entity.Enterprise, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr("get enterprise", err)
	}
	e, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[entity.Enterprise])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get enterprise", err)
	}
	return e, nil
}
