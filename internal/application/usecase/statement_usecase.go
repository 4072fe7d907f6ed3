package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/btp-connect-api/internal/application/dto"
	"github.com/jhoicas/btp-connect-api/internal/domain"
	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
)

// StatementUseCase situations de travaux: alta, consulta y actualización parcial.
type StatementUseCase struct {
	repo repository.StatementRepository
	refs *tenantRefs
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(repo repository.StatementRepository, sites repository.SiteRepository, subs repository.SubcontractorRepository) *StatementUseCase {
	return &StatementUseCase{repo: repo, refs: &tenantRefs{sites: sites, subs: subs}}
}

// Create registra una situation para un chantier de la empresa.
func (uc *StatementUseCase) Create(ctx context.Context, enterpriseID string, in dto.CreateStatementRequest) (*dto.StatementResponse, error) {
	siteID, err := required("chantierId", in.ChantierID)
	if err != nil {
		return nil, err
	}
	month, err := required("mois", in.Mois)
	if err != nil {
		return nil, err
	}
	if in.Numero == nil {
		return nil, invalidRequired("numero")
	}
	if err := validateNumber(in.Numero); err != nil {
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
	st := &entity.Statement{
		ID:              uuid.New().String(),
		EnterpriseID:    enterpriseID,
		SiteID:          siteID,
		SubcontractorID: subID,
		Number:          *in.Numero,
		Month:           month,
		AmountExclTax:   *in.MontantHT,
		VATRate:         decimalOr(in.TVA, entity.DefaultVATRate),
		Status:          orDefault(in.Statut, entity.StatementStatusPending),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return toStatementResponse(st), nil
}

// GetByID devuelve domain.ErrNotFound si no existe en la empresa.
func (uc *StatementUseCase) GetByID(ctx context.Context, enterpriseID, id string) (*dto.StatementResponse, error) {
	st, err := uc.load(ctx, enterpriseID, id)
	if err != nil {
		return nil, err
	}
	return toStatementResponse(st), nil
}

// List lista las situations, opcionalmente de un solo chantier.
func (uc *StatementUseCase) List(ctx context.Context, enterpriseID, siteID string) ([]dto.StatementResponse, error) {
	list, err := uc.repo.List(ctx, enterpriseID, repository.StatementFilter{SiteID: siteID})
	if err != nil {
		return nil, err
	}
	items := make([]dto.StatementResponse, 0, len(list))
	for _, st := range list {
		items = append(items, *toStatementResponse(st))
	}
	return items, nil
}

// Update aplica sólo los campos presentes. El chantier de una situation no cambia.
func (uc *StatementUseCase) Update(ctx context.Context, enterpriseID, id string, in dto.UpdateStatementRequest) (*dto.StatementResponse, error) {
	st, err := uc.load(ctx, enterpriseID, id)
	if err != nil {
		return nil, err
	}
	if in.Mois != nil && strings.TrimSpace(*in.Mois) == "" {
		return nil, domain.Invalid("mois", "no puede quedar vacío")
	}
	if in.Statut != nil && strings.TrimSpace(*in.Statut) == "" {
		return nil, domain.Invalid("statut", "no puede quedar vacío")
	}
	if err := validateNumber(in.Numero); err != nil {
		return nil, err
	}
	if err := nonNegative("montantHT", in.MontantHT); err != nil {
		return nil, err
	}
	if err := nonNegative("tva", in.TVA); err != nil {
		return nil, err
	}
	subID := blankToNil(in.StID)
	if err := uc.refs.subcontractor(ctx, enterpriseID, "stId", subID); err != nil {
		return nil, err
	}
	entity.StatementPatch{
		SubcontractorID: subID,
		Number:          in.Numero,
		Month:           in.Mois,
		AmountExclTax:   in.MontantHT,
		VATRate:         in.TVA,
		Status:          in.Statut,
	}.Apply(st, time.Now().UTC())
	if err := uc.repo.Update(ctx, st); err != nil {
		return nil, err
	}
	return toStatementResponse(st), nil
}

func (uc *StatementUseCase) load(ctx context.Context, enterpriseID, id string) (*entity.Statement, error) {
	st, err := uc.repo.GetByID(ctx, enterpriseID, id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, domain.ErrNotFound
	}
	return st, nil
}

func validateNumber(n *int) error {
	if n != nil && *n < 1 {
		return domain.Invalid("numero", "debe ser mayor que 0")
	}
	return nil
}

func toStatementResponse(st *entity.Statement) *dto.StatementResponse {
	return &dto.StatementResponse{
		ID:           st.ID,
		EntrepriseID: st.EnterpriseID,
		ChantierID:   st.SiteID,
		StID:         st.SubcontractorID,
		Numero:       st.Number,
		Mois:         st.Month,
		MontantHT:    st.AmountExclTax,
		TVA:          st.VATRate,
		Statut:       st.Status,
		CreatedAt:    st.CreatedAt,
		UpdatedAt:    st.UpdatedAt,
	}
}
