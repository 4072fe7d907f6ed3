// Package memory implementa los puertos de repositorio en memoria del proceso.
// Se usa con STORE_DRIVER=memory y en los tests HTTP; los datos se pierden al reiniciar.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/btp-connect-api/internal/domain"
	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
)

// Store agrupa los repositorios en memoria. Implementa los mismos contratos que postgres.Store.
type Store struct {
	Enterprises    *EnterpriseRepo
	Users          *UserRepo
	Subcontractors *SubcontractorRepo
	Sites          *SiteRepo
	Invoices       *InvoiceRepo
	Statements     *StatementRepo
	Documents      *DocumentRepo
	Tx             *TxRunner

	mu   sync.RWMutex
	down error
}

var _ repository.Pinger = (*Store)(nil)

// NewStore construye un store vacío.
func NewStore() *Store {
	s := &Store{
		Enterprises:    &EnterpriseRepo{byID: make(map[string]*entity.Enterprise)},
		Users:          &UserRepo{byID: make(map[string]*entity.User)},
		Subcontractors: &SubcontractorRepo{c: newTenantCollection(func(v *entity.Subcontractor) (string, string) { return v.EnterpriseID, v.ID })},
		Sites:          &SiteRepo{c: newTenantCollection(func(v *entity.Site) (string, string) { return v.EnterpriseID, v.ID })},
		Invoices:       &InvoiceRepo{c: newTenantCollection(func(v *entity.Invoice) (string, string) { return v.EnterpriseID, v.ID })},
		Statements:     &StatementRepo{c: newTenantCollection(func(v *entity.Statement) (string, string) { return v.EnterpriseID, v.ID })},
		Documents:      &DocumentRepo{c: newTenantCollection(func(v *entity.Document) (string, string) { return v.EnterpriseID, v.ID })},
	}
	s.Tx = &TxRunner{store: s, locks: make(map[string]*sync.Mutex)}
	return s
}

// Ping devuelve el error fijado con SetUnavailable, o nil.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.down
}

// SetUnavailable simula una caída del almacenamiento para las comprobaciones de readiness.
// nil la restablece.
func (s *Store) SetUnavailable(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		err = &unavailableError{cause: err}
	}
	s.down = err
}

type unavailableError struct{ cause error }

func (e *unavailableError) Error() string { return "memory store: " + e.cause.Error() }
func (e *unavailableError) Unwrap() []error {
	return []error{domain.ErrStoreUnavailable, e.cause}
}

// ── Empresas ──────────────────────────────────────────────────────────────────

var _ repository.EnterpriseRepository = (*EnterpriseRepo)(nil)

// EnterpriseRepo empresas en memoria.
type EnterpriseRepo struct {
	mu   sync.RWMutex
	byID map[string]*entity.Enterprise
}

// Create rechaza una segunda empresa por defecto con domain.ErrDuplicate.
func (r *EnterpriseRepo) Create(_ context.Context, e *entity.Enterprise) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[e.ID]; ok {
		return domain.ErrDuplicate
	}
	if e.IsDefault {
		for _, cur := range r.byID {
			if cur.IsDefault {
				return domain.ErrDuplicate
			}
		}
	}
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}

func (r *EnterpriseRepo) GetByID(_ context.Context, id string) (*entity.Enterprise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

// FindFirst: la empresa por defecto o, si no hay, la más antigua.
func (r *EnterpriseRepo) FindFirst(_ context.Context) (*entity.Enterprise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*entity.Enterprise, 0, len(r.byID))
	for _, e := range r.byID {
		all = append(all, e)
	}
	if len(all) == 0 {
		return nil, nil
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].IsDefault != all[j].IsDefault {
			return all[i].IsDefault
		}
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})
	cp := *all[0]
	return &cp, nil
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria.
type UserRepo struct {
	mu   sync.RWMutex
	byID map[string]*entity.User
}

// Create: (enterpriseID, email) es único → domain.ErrDuplicate.
func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[u.ID]; ok {
		return domain.ErrDuplicate
	}
	for _, cur := range r.byID {
		if cur.EnterpriseID == u.EnterpriseID && cur.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.first(func(u *entity.User) bool { return u.ID == id }), nil
}

func (r *UserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.first(func(u *entity.User) bool { return u.Email == email }), nil
}

func (r *UserRepo) FindByEmailAndEnterprise(_ context.Context, email, enterpriseID string) (*entity.User, error) {
	return r.first(func(u *entity.User) bool { return u.Email == email && u.EnterpriseID == enterpriseID }), nil
}

func (r *UserRepo) FindAnyByEnterprise(_ context.Context, enterpriseID string) (*entity.User, error) {
	return r.first(func(u *entity.User) bool { return u.EnterpriseID == enterpriseID }), nil
}

// first devuelve el usuario más antiguo que cumple match, igual que el ORDER BY de postgres.
func (r *UserRepo) first(match func(*entity.User) bool) *entity.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var best *entity.User
	for _, u := range r.byID {
		if !match(u) {
			continue
		}
		if best == nil || u.CreatedAt.Before(best.CreatedAt) ||
			(u.CreatedAt.Equal(best.CreatedAt) && u.ID < best.ID) {
			best = u
		}
	}
	if best == nil {
		return nil
	}
	cp := *best
	return &cp
}

// ── Recursos por empresa ──────────────────────────────────────────────────────

var _ repository.SubcontractorRepository = (*SubcontractorRepo)(nil)

// SubcontractorRepo sous-traitants en memoria.
type SubcontractorRepo struct {
	c *tenantCollection[entity.Subcontractor]
}

func (r *SubcontractorRepo) Create(_ context.Context, s *entity.Subcontractor) error {
	return r.c.insert(s)
}

func (r *SubcontractorRepo) GetByID(_ context.Context, enterpriseID, id string) (*entity.Subcontractor, error) {
	return r.c.get(enterpriseID, id), nil
}

func (r *SubcontractorRepo) List(_ context.Context, enterpriseID string) ([]*entity.Subcontractor, error) {
	return r.c.list(enterpriseID, nil), nil
}

func (r *SubcontractorRepo) Update(_ context.Context, s *entity.Subcontractor) error {
	return r.c.replace(s)
}

func (r *SubcontractorRepo) Delete(_ context.Context, enterpriseID, id string) error {
	return r.c.remove(enterpriseID, id)
}

func (r *SubcontractorRepo) Count(_ context.Context, enterpriseID string) (int, error) {
	return r.c.count(enterpriseID, nil), nil
}

var _ repository.SiteRepository = (*SiteRepo)(nil)

// SiteRepo chantiers en memoria.
type SiteRepo struct {
	c *tenantCollection[entity.Site]
}

func (r *SiteRepo) Create(_ context.Context, s *entity.Site) error {
	return r.c.insert(s)
}

func (r *SiteRepo) GetByID(_ context.Context, enterpriseID, id string) (*entity.Site, error) {
	return r.c.get(enterpriseID, id), nil
}

func (r *SiteRepo) List(_ context.Context, enterpriseID string) ([]*entity.Site, error) {
	return r.c.list(enterpriseID, nil), nil
}

func (r *SiteRepo) Update(_ context.Context, s *entity.Site) error {
	return r.c.replace(s)
}

func (r *SiteRepo) Delete(_ context.Context, enterpriseID, id string) error {
	return r.c.remove(enterpriseID, id)
}

func (r *SiteRepo) Count(_ context.Context, enterpriseID string) (int, error) {
	return r.c.count(enterpriseID, nil), nil
}

func (r *SiteRepo) CountByStatus(_ context.Context, enterpriseID, status string) (int, error) {
	return r.c.count(enterpriseID, func(s *entity.Site) bool { return s.Status == status }), nil
}

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo factures en memoria.
type InvoiceRepo struct {
	c *tenantCollection[entity.Invoice]
}

func (r *InvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	return r.c.insert(inv)
}

func (r *InvoiceRepo) List(_ context.Context, enterpriseID string, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	return r.c.list(enterpriseID, func(inv *entity.Invoice) bool {
		return f.SiteID == "" || inv.SiteID == f.SiteID
	}), nil
}

var _ repository.StatementRepository = (*StatementRepo)(nil)

// StatementRepo situations en memoria.
type StatementRepo struct {
	c *tenantCollection[entity.Statement]
}

func (r *StatementRepo) Create(_ context.Context, s *entity.Statement) error {
	return r.c.insert(s)
}

func (r *StatementRepo) GetByID(_ context.Context, enterpriseID, id string) (*entity.Statement, error) {
	return r.c.get(enterpriseID, id), nil
}

func (r *StatementRepo) List(_ context.Context, enterpriseID string, f repository.StatementFilter) ([]*entity.Statement, error) {
	return r.c.list(enterpriseID, func(s *entity.Statement) bool {
		return f.SiteID == "" || s.SiteID == f.SiteID
	}), nil
}

func (r *StatementRepo) Update(_ context.Context, s *entity.Statement) error {
	return r.c.replace(s)
}

func (r *StatementRepo) SumAmountByStatus(_ context.Context, enterpriseID, status string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range r.c.list(enterpriseID, func(s *entity.Statement) bool { return s.Status == status }) {
		total = total.Add(s.AmountExclTax)
	}
	return total, nil
}

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo documentos en memoria.
type DocumentRepo struct {
	c *tenantCollection[entity.Document]
}

func (r *DocumentRepo) Create(_ context.Context, d *entity.Document) error {
	return r.c.insert(d)
}

func (r *DocumentRepo) List(_ context.Context, enterpriseID string, f repository.DocumentFilter) ([]*entity.Document, error) {
	return r.c.list(enterpriseID, func(d *entity.Document) bool {
		return f.SubcontractorID == "" || d.SubcontractorID == f.SubcontractorID
	}), nil
}
