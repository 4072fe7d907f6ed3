package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSiteRequest entrada para crear un chantier. "montant" se guarda como montantMarche.
type CreateSiteRequest struct {
	Nom           string           `json:"nom"`
	Client        *string          `json:"client"`
	Adresse       *string          `json:"adresse"`
	Montant       *decimal.Decimal `json:"montant"`
	Statut        *string          `json:"statut"`
	Avancement    *int             `json:"avancement"`
	DateDebut     *string          `json:"dateDebut"`
	DateFinPrevue *string          `json:"dateFinPrevue"`
}

// UpdateSiteRequest actualización parcial de un chantier.
type UpdateSiteRequest struct {
	Nom           *string          `json:"nom"`
	Client        *string          `json:"client"`
	Adresse       *string          `json:"adresse"`
	Montant       *decimal.Decimal `json:"montant"`
	Statut        *string          `json:"statut"`
	Avancement    *int             `json:"avancement"`
	DateDebut     *string          `json:"dateDebut"`
	DateFinPrevue *string          `json:"dateFinPrevue"`
}

// SiteResponse salida de un chantier.
type SiteResponse struct {
	ID            string           `json:"id"`
	EntrepriseID  string           `json:"entrepriseId"`
	Nom           string           `json:"nom"`
	Client        *string          `json:"client"`
	Adresse       *string          `json:"adresse"`
	MontantMarche *decimal.Decimal `json:"montantMarche"`
	Statut        string           `json:"statut"`
	Avancement    int              `json:"avancement"`
	DateDebut     *string          `json:"dateDebut"`
	DateFinPrevue *string          `json:"dateFinPrevue"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}
