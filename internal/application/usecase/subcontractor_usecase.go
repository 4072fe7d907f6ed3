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

// SubcontractorUseCase CRUD de sous-traitants de una empresa.
type SubcontractorUseCase struct {
	repo repository.SubcontractorRepository
}

// NewSubcontractorUseCase construye el caso de uso.
func NewSubcontractorUseCase(repo repository.SubcontractorRepository) *SubcontractorUseCase {
	return &SubcontractorUseCase{repo: repo}
}

// Create crea un sous-traitant en el directorio privado de la empresa.
func (uc *SubcontractorUseCase) Create(ctx context.Context, enterpriseID string, in dto.CreateSubcontractorRequest) (*dto.SubcontractorResponse, error) {
	name, err := required("nom", in.Nom)
	if err != nil {
		return nil, err
	}
	if err := validateRating(in.Note); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	s := &entity.Subcontractor{
		ID:                 uuid.New().String(),
		EnterpriseID:       enterpriseID,
		Name:               name,
		Trade:              in.Metier,
		Email:              in.Email,
		Phone:              in.Tel,
		City:               in.Ville,
		Siret:              in.Siret,
		Address:            in.Adresse,
		PostalCode:         in.CP,
		InPrivateDirectory: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if in.Note != nil {
		s.Rating = *in.Note
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSubcontractorResponse(s), nil
}

// GetByID devuelve domain.ErrNotFound si no existe en la empresa.
func (uc *SubcontractorUseCase) GetByID(ctx context.Context, enterpriseID, id string) (*dto.SubcontractorResponse, error) {
	s, err := uc.repo.GetByID(ctx, enterpriseID, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSubcontractorResponse(s), nil
}

// List lista los sous-traitants de la empresa.
func (uc *SubcontractorUseCase) List(ctx context.Context, enterpriseID string) ([]dto.SubcontractorResponse, error) {
	list, err := uc.repo.List(ctx, enterpriseID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubcontractorResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubcontractorResponse(s))
	}
	return items, nil
}

// Update aplica sólo los campos presentes en in.
func (uc *SubcontractorUseCase) Update(ctx context.Context, enterpriseID, id string, in dto.UpdateSubcontractorRequest) (*dto.SubcontractorResponse, error) {
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
	if err := validateRating(in.Note); err != nil {
		return nil, err
	}
	entity.SubcontractorPatch{
		Name:       in.Nom,
		Trade:      in.Metier,
		Email:      in.Email,
		Phone:      in.Tel,
		City:       in.Ville,
		Siret:      in.Siret,
		Address:    in.Adresse,
		PostalCode: in.CP,
		Rating:     in.Note,
	}.Apply(s, time.Now().UTC())
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return toSubcontractorResponse(s), nil
}

// Delete borra definitivamente; domain.ErrNotFound si no es de la empresa.
func (uc *SubcontractorUseCase) Delete(ctx context.Context, enterpriseID, id string) error {
	return uc.repo.Delete(ctx, enterpriseID, id)
}

func validateRating(note *float64) error {
	if note != nil && (*note < 0 || *note > 5) {
		return domain.Invalid("note", "debe estar entre 0 y 5")
	}
	return nil
}

func toSubcontractorResponse(s *entity.Subcontractor) *dto.SubcontractorResponse {
	return &dto.SubcontractorResponse{
		ID:                  s.ID,
		EntrepriseID:        s.EnterpriseID,
		Nom:                 s.Name,
		Metier:              s.Trade,
		Email:               s.Email,
		Tel:                 s.Phone,
		Ville:               s.City,
		Siret:               s.Siret,
		Adresse:             s.Address,
		CP:                  s.PostalCode,
		Note:                s.Rating,
		DansAnnuairePrivate: s.InPrivateDirectory,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}
