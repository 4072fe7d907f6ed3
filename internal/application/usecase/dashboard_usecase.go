package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/btp-connect-api/internal/application/dto"
	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
)

// DashboardUseCase indicadores de la empresa para la pantalla de inicio.
type DashboardUseCase struct {
	subs       repository.SubcontractorRepository
	sites      repository.SiteRepository
	statements repository.StatementRepository
	documents  repository.DocumentRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	subs repository.SubcontractorRepository,
	sites repository.SiteRepository,
	statements repository.StatementRepository,
	documents repository.DocumentRepository,
) *DashboardUseCase {
	return &DashboardUseCase{subs: subs, sites: sites, statements: statements, documents: documents}
}

type countResult struct {
	n   int
	err error
}

type sumResult struct {
	v   decimal.Decimal
	err error
}

// Get lanza las consultas en paralelo y devuelve el primer error que encuentre.
func (uc *DashboardUseCase) Get(ctx context.Context, enterpriseID string) (*dto.DashboardResponse, error) {
	subsCh := make(chan countResult, 1)
	sitesCh := make(chan countResult, 1)
	activeCh := make(chan countResult, 1)
	expiredCh := make(chan countResult, 1)
	pendingCh := make(chan sumResult, 1)
	now := time.Now()

	go func() {
		n, err := uc.subs.Count(ctx, enterpriseID)
		subsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.sites.Count(ctx, enterpriseID)
		sitesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.sites.CountByStatus(ctx, enterpriseID, entity.SiteStatusInProgress)
		activeCh <- countResult{n, err}
	}()
	go func() {
		v, err := uc.statements.SumAmountByStatus(ctx, enterpriseID, entity.StatementStatusPending)
		pendingCh <- sumResult{v, err}
	}()
	go func() {
		docs, err := uc.documents.List(ctx, enterpriseID, repository.DocumentFilter{})
		n := 0
		for _, d := range docs {
			if d.Status == entity.DocumentStatusExpired || d.IsExpired(now) {
				n++
			}
		}
		expiredCh <- countResult{n, err}
	}()

	subs, sites, active, expired, pending := <-subsCh, <-sitesCh, <-activeCh, <-expiredCh, <-pendingCh
	for _, err := range []error{subs.err, sites.err, active.err, pending.err, expired.err} {
		if err != nil {
			return nil, err
		}
	}
	return &dto.DashboardResponse{
		SousTraitants:         subs.n,
		Chantiers:             sites.n,
		ChantiersEnCours:      active.n,
		SituationsEnAttenteHT: pending.v,
		DocumentsExpires:      expired.n,
	}, nil
}
