package usecase

import (
	"context"

	"github.com/jhoicas/btp-connect-api/internal/domain"
	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
)

// tenantRefs comprueba que las referencias de un alta existen dentro de la misma empresa.
// Un id de otra empresa se trata igual que uno inexistente.
type tenantRefs struct {
	sites repository.SiteRepository
	subs  repository.SubcontractorRepository
}

func (r *tenantRefs) site(ctx context.Context, enterpriseID, id string) error {
	s, err := r.sites.GetByID(ctx, enterpriseID, id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.Invalid("chantierId", "chantier inexistente")
	}
	return nil
}

func (r *tenantRefs) subcontractor(ctx context.Context, enterpriseID, field string, id *string) error {
	if id == nil {
		return nil
	}
	s, err := r.subs.GetByID(ctx, enterpriseID, *id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.Invalid(field, "sous-traitant inexistente")
	}
	return nil
}

func invalidRequired(field string) error {
	return domain.Invalid(field, "es requerido")
}
