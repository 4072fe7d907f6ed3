package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/btp-connect-api/internal/application/dto"
	"github.com/jhoicas/btp-connect-api/internal/domain"
	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
)

// DocumentUseCase documentos administrativos de los sous-traitants.
type DocumentUseCase struct {
	repo repository.DocumentRepository
	refs *tenantRefs
	now  func() time.Time
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(repo repository.DocumentRepository, subs repository.SubcontractorRepository) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, refs: &tenantRefs{subs: subs}, now: time.Now}
}

// Create registra un documento. Si la fecha de expiración ya pasó el estado queda en expire.
func (uc *DocumentUseCase) Create(ctx context.Context, enterpriseID string, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	subID, err := required("sousTraitantId", in.SousTraitantID)
	if err != nil {
		return nil, err
	}
	docType, err := required("type", in.Type)
	if err != nil {
		return nil, err
	}
	if !entity.IsDocumentType(docType) {
		return nil, domain.Invalid("type", "tipo de documento desconocido")
	}
	name, err := required("nom", in.Nom)
	if err != nil {
		return nil, err
	}
	if err := uc.refs.subcontractor(ctx, enterpriseID, "sousTraitantId", &subID); err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	doc := &entity.Document{
		ID:              uuid.New().String(),
		EnterpriseID:    enterpriseID,
		SubcontractorID: subID,
		Type:            docType,
		Name:            name,
		FileURL:         in.FichierURL,
		ExpiresOn:       blankToNil(in.DateExpiration),
		Status:          orDefault(in.Statut, entity.DocumentStatusValid),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if doc.IsExpired(now) {
		doc.Status = entity.DocumentStatusExpired
	}
	if err := uc.repo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// List lista los documentos, opcionalmente de un solo sous-traitant.
func (uc *DocumentUseCase) List(ctx context.Context, enterpriseID, subcontractorID string) ([]dto.DocumentResponse, error) {
	list, err := uc.repo.List(ctx, enterpriseID, repository.DocumentFilter{SubcontractorID: subcontractorID})
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDocumentResponse(d))
	}
	return items, nil
}

// Types devuelve el catálogo estático de tipos de documento.
func (uc *DocumentUseCase) Types() dto.DocumentTypesResponse {
	types := make([]dto.DocumentTypeResponse, 0, len(entity.DocumentTypes))
	for _, t := range entity.DocumentTypes {
		types = append(types, dto.DocumentTypeResponse{Code: t.Code, Label: t.Label, Obligatoire: t.Mandatory})
	}
	return dto.DocumentTypesResponse{Types: types}
}

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		ID:             d.ID,
		EntrepriseID:   d.EnterpriseID,
		SousTraitantID: d.SubcontractorID,
		Type:           d.Type,
		Nom:            d.Name,
		FichierURL:     d.FileURL,
		DateExpiration: d.ExpiresOn,
		Statut:         d.Status,
		CreatedAt:      d.CreatedAt,
	}
}
