package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/btp-connect-api/internal/domain"
	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
)

// StatementPDFUseCase arma los datos de una situation y delega el render al generador.
type StatementPDFUseCase struct {
	statements  repository.StatementRepository
	sites       repository.SiteRepository
	subs        repository.SubcontractorRepository
	enterprises repository.EnterpriseRepository
	generator   StatementPDFGenerator
}

// NewStatementPDFUseCase construye el caso de uso.
func NewStatementPDFUseCase(
	statements repository.StatementRepository,
	sites repository.SiteRepository,
	subs repository.SubcontractorRepository,
	enterprises repository.EnterpriseRepository,
	generator StatementPDFGenerator,
) *StatementPDFUseCase {
	return &StatementPDFUseCase{
		statements:  statements,
		sites:       sites,
		subs:        subs,
		enterprises: enterprises,
		generator:   generator,
	}
}

// Render devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *StatementPDFUseCase) Render(ctx context.Context, enterpriseID, statementID string) ([]byte, string, error) {
	st, err := uc.statements.GetByID(ctx, enterpriseID, statementID)
	if err != nil {
		return nil, "", err
	}
	if st == nil {
		return nil, "", domain.ErrNotFound
	}
	site, err := uc.sites.GetByID(ctx, enterpriseID, st.SiteID)
	if err != nil {
		return nil, "", err
	}
	if site == nil {
		// el chantier fue borrado después de crear la situation
		return nil, "", domain.ErrNotFound
	}
	ent, err := uc.enterprises.GetByID(ctx, enterpriseID)
	if err != nil {
		return nil, "", err
	}
	if ent == nil {
		return nil, "", domain.ErrNotFound
	}
	data := StatementPDFData{Enterprise: ent, Site: site, Statement: st}
	if st.SubcontractorID != nil {
		sub, err := uc.subs.GetByID(ctx, enterpriseID, *st.SubcontractorID)
		if err != nil {
			return nil, "", err
		}
		data.Subcontractor = sub
	}

	pdf, err := uc.generator.GenerateStatementPDF(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("situation %s: %w", statementID, err)
	}
	return pdf, fmt.Sprintf("situation-%d-%s.pdf", st.Number, st.Month), nil
}
