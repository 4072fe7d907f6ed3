package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/btp-connect-api/internal/domain"
)

// tenantTable concentra el filtro por enterprise_id de todas las tablas de recursos:
// ninguna consulta de lectura, update o delete se arma sin él.
// columns debe listar exactamente los campos con tag db de T.
type tenantTable[T any] struct {
	q       Querier
	name    string
	columns []string
}

func newTenantTable[T any](q Querier, name string, columns ...string) tenantTable[T] {
	return tenantTable[T]{q: q, name: name, columns: columns}
}

func (t tenantTable[T]) selectFrom() string {
	return "SELECT " + strings.Join(t.columns, ", ") + " FROM " + t.name + " WHERE enterprise_id = $1"
}

// get devuelve (nil, nil) si la fila no existe o pertenece a otra empresa.
func (t tenantTable[T]) get(ctx context.Context, enterpriseID, id string) (*T, error) {
	rows, err := t.q.Query(ctx, t.selectFrom()+" AND id = $2", enterpriseID, id)
	if err != nil {
		return nil, storeErr("get "+t.name, err)
	}
	v, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get "+t.name, err)
	}
	return v, nil
}

// list aplica filtros opcionales por igualdad; los valores vacíos se ignoran.
func (t tenantTable[T]) list(ctx context.Context, enterpriseID string, filters map[string]string) ([]*T, error) {
	query := t.selectFrom()
	args := []any{enterpriseID}
	for col, val := range filters {
		if val == "" {
			continue
		}
		args = append(args, val)
		query += " AND " + col + " = $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY created_at, id"

	rows, err := t.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list "+t.name, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, storeErr("list "+t.name, err)
	}
	return items, nil
}

func (t tenantTable[T]) count(ctx context.Context, enterpriseID string, where string, args ...any) (int, error) {
	query := "SELECT COUNT(*) FROM " + t.name + " WHERE enterprise_id = $1"
	if where != "" {
		query += " AND " + where
	}
	var n int
	if err := t.q.QueryRow(ctx, query, append([]any{enterpriseID}, args...)...).Scan(&n); err != nil {
		return 0, storeErr("count "+t.name, err)
	}
	return n, nil
}

// insert recibe los valores en el mismo orden que columns.
func (t tenantTable[T]) insert(ctx context.Context, values ...any) error {
	ph := make([]string, len(t.columns))
	for i := range ph {
		ph[i] = "$" + strconv.Itoa(i+1)
	}
	query := "INSERT INTO " + t.name + " (" + strings.Join(t.columns, ", ") + ") VALUES (" + strings.Join(ph, ", ") + ")"
	if _, err := t.q.Exec(ctx, query, values...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storeErr("insert "+t.name, err)
	}
	return nil
}

// update actualiza las columnas set (sin id ni enterprise_id) de la fila (enterpriseID, id).
// Cero filas afectadas es domain.ErrNotFound.
func (t tenantTable[T]) update(ctx context.Context, enterpriseID, id string, set []string, values ...any) error {
	assign := make([]string, len(set))
	for i, col := range set {
		assign[i] = col + " = $" + strconv.Itoa(i+3)
	}
	query := "UPDATE " + t.name + " SET " + strings.Join(assign, ", ") + " WHERE enterprise_id = $1 AND id = $2"
	tag, err := t.q.Exec(ctx, query, append([]any{enterpriseID, id}, values...)...)
	if err != nil {
		return storeErr("update "+t.name, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (t tenantTable[T]) delete(ctx context.Context, enterpriseID, id string) error {
	tag, err := t.q.Exec(ctx, "DELETE FROM "+t.name+" WHERE enterprise_id = $1 AND id = $2", enterpriseID, id)
	if err != nil {
		return storeErr("delete "+t.name, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
