package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/btp-connect-api/internal/application/dto"
	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
)

// InvoiceUseCase alta y consulta de factures.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
	refs *tenantRefs
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, sites repository.SiteRepository, subs repository.SubcontractorRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, refs: &tenantRefs{sites: sites, subs: subs}}
}

// Create registra una factura. chantierId y stId deben pertenecer a la empresa.
func (uc *InvoiceUseCase) Create(ctx context.Context, enterpriseID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	siteID, err := required("chantierId", in.ChantierID)
	if err != nil {
		return nil, err
	}
	number, err := required("numero", in.Numero)
	if err != nil {
		return nil, err
	}
	invoiceDate, err := required("dateFacture", in.DateFacture)
	if err != nil {
		return nil, err
	}
	if in.MontantHT == nil {
		return nil, invalidRequired("montantHT")
	}
	if err := nonNegative("montantHT", in.MontantHT); err != nil {
		return nil, err
	}
	if err := nonNegative("tva", in.TVA); err != nil {
		return nil, err
	}
	subID := blankToNil(in.StID)
	if err := uc.refs.site(ctx, enterpriseID, siteID); err != nil {
		return nil, err
	}
	if err := uc.refs.subcontractor(ctx, enterpriseID, "stId", subID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	inv := &entity.Invoice{
		ID:              uuid.New().String(),
		EnterpriseID:    enterpriseID,
		SiteID:          siteID,
		SubcontractorID: subID,
		Number:          number,
		Type:            orDefault(in.Type, entity.InvoiceTypeDeposit),
		AmountExclTax:   *in.MontantHT,
		VATRate:         decimalOr(in.TVA, entity.DefaultVATRate),
		InvoiceDate:     invoiceDate,
		DueDate:         in.DateEcheance,
		Status:          orDefault(in.Statut, entity.InvoiceStatusPending),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// List lista las facturas, opcionalmente de un solo chantier.
func (uc *InvoiceUseCase) List(ctx context.Context, enterpriseID, siteID string) ([]dto.InvoiceResponse, error) {
	list, err := uc.repo.List(ctx, enterpriseID, repository.InvoiceFilter{SiteID: siteID})
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvoiceResponse(inv))
	}
	return items, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:           inv.ID,
		EntrepriseID: inv.EnterpriseID,
		ChantierID:   inv.SiteID,
		StID:         inv.SubcontractorID,
		Numero:       inv.Number,
		Type:         inv.Type,
		MontantHT:    inv.AmountExclTax,
		TVA:          inv.VATRate,
		DateFacture:  inv.InvoiceDate,
		DateEcheance: inv.DueDate,
		Statut:       inv.Status,
		CreatedAt:    inv.CreatedAt,
	}
}
