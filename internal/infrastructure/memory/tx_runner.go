package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner serializa los callbacks de una misma empresa con un mutex por empresa.
// No hay rollback: si fn falla a mitad, lo ya insertado queda.
type TxRunner struct {
	store *Store
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (r *TxRunner) lockFor(enterpriseID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[enterpriseID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[enterpriseID] = l
	}
	return l
}

func (r *TxRunner) RunForEnterprise(ctx context.Context, enterpriseID string, fn func(repos repository.SeedRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l := r.lockFor(enterpriseID)
	l.Lock()
	defer l.Unlock()
	return fn(repository.SeedRepos{
		Subcontractors: r.store.Subcontractors,
		Sites:          r.store.Sites,
		Statements:     r.store.Statements,
	})
}
