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

// SiteUseCase CRUD de chantiers.
type SiteUseCase struct {
	repo repository.SiteRepository
}

// NewSiteUseCase construye el caso de uso.
func NewSiteUseCase(repo repository.SiteRepository) *SiteUseCase {
	return &SiteUseCase{repo: repo}
}

// Create crea un chantier. statut por defecto en_cours, avancement 0.
func (uc *SiteUseCase) Create(ctx context.Context, enterpriseID string, in dto.CreateSiteRequest) (*dto.SiteResponse, error) {
	name, err := required("nom", in.Nom)
	if err != nil {
		return nil, err
	}
	if err := nonNegative("montant", in.Montant); err != nil {
		return nil, err
	}
	if err := validateProgress(in.Avancement); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	s := &entity.Site{
		ID:             uuid.New().String(),
		EnterpriseID:   enterpriseID,
		Name:           name,
		Client:         in.Client,
		Address:        in.Adresse,
		ContractAmount: in.Montant,
		Status:         orDefault(in.Statut, entity.SiteStatusInProgress),
		StartDate:      in.DateDebut,
		PlannedEndDate: in.DateFinPrevue,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.Avancement != nil {
		s.Progress = *in.Avancement
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSiteResponse(s), nil
}

// GetByID devuelve domain.ErrNotFound si no existe en la empresa.
func (uc *SiteUseCase) GetByID(ctx context.Context, enterpriseID, id string) (*dto.SiteResponse, error) {
	s, err := uc.repo.GetByID(ctx, enterpriseID, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSiteResponse(s), nil
}

// List lista los chantiers de la empresa.
func (uc *SiteUseCase) List(ctx context.Context, enterpriseID string) ([]dto.SiteResponse, error) {
	list, err := uc.repo.List(ctx, enterpriseID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SiteResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSiteResponse(s))
	}
	return items, nil
}

// Update aplica sólo los campos presentes en in.
func (uc *SiteUseCase) Update(ctx context.Context, enterpriseID, id string, in dto.UpdateSiteRequest) (*dto.SiteResponse, error) {
	s, err := uc.repo.GetByID(ctx, enterpriseID, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nom != nil && strings.TrimSpace(*in.Nom) == "" {
		return nil, domain.Invalid("nom", "no puede quedar vacío")
	}
	if err := nonNegative("montant", in.Montant); err != nil {
		return nil, err
	}
	if err := validateProgress(in.Avancement); err != nil {
		return nil, err
	}
	entity.SitePatch{
		Name:           in.Nom,
		Client:         in.Client,
		Address:        in.Adresse,
		ContractAmount: in.Montant,
		Status:         in.Statut,
		Progress:       in.Avancement,
		StartDate:      in.DateDebut,
		PlannedEndDate: in.DateFinPrevue,
	}.Apply(s, time.Now().UTC())
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return toSiteResponse(s), nil
}

// Delete borra definitivamente; domain.ErrNotFound si no es de la empresa.
func (uc *SiteUseCase) Delete(ctx context.Context, enterpriseID, id string) error {
	return uc.repo.Delete(ctx, enterpriseID, id)
}

func validateProgress(p *int) error {
	if p != nil && (*p < 0 || *p > 100) {
		return domain.Invalid("avancement", "debe estar entre 0 y 100")
	}
	return nil
}

func toSiteResponse(s *entity.Site) *dto.SiteResponse {
	return &dto.SiteResponse{
		ID:            s.ID,
		EntrepriseID:  s.EnterpriseID,
		Nom:           s.Name,
		Client:        s.Client,
		Adresse:       s.Address,
		MontantMarche: s.ContractAmount,
		Statut:        s.Status,
		Avancement:    s.Progress,
		DateDebut:     s.StartDate,
		DateFinPrevue: s.PlannedEndDate,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
