package dto

import "time"

// CreateSubcontractorRequest entrada para crear un sous-traitant.
type CreateSubcontractorRequest struct {
	Nom     string   `json:"nom"`
	Metier  *string  `json:"metier"`
	Email   *string  `json:"email"`
	Tel     *string  `json:"tel"`
	Ville   *string  `json:"ville"`
	Siret   *string  `json:"siret"`
	Adresse *string  `json:"adresse"`
	CP      *string  `json:"cp"`
	Note    *float64 `json:"note"`
}

// UpdateSubcontractorRequest actualización parcial: sólo se aplican los campos no nulos.
type UpdateSubcontractorRequest struct {
	Nom     *string  `json:"nom"`
	Metier  *string  `json:"metier"`
	Email   *string  `json:"email"`
	Tel     *string  `json:"tel"`
	Ville   *string  `json:"ville"`
	Siret   *string  `json:"siret"`
	Adresse *string  `json:"adresse"`
	CP      *string  `json:"cp"`
	Note    *float64 `json:"note"`
}

// SubcontractorResponse salida de un sous-traitant.
type SubcontractorResponse struct {
	ID                  string    `json:"id"`
	EntrepriseID        string    `json:"entrepriseId"`
	Nom                 string    `json:"nom"`
	Metier              *string   `json:"metier"`
	Email               *string   `json:"email"`
	Tel                 *string   `json:"tel"`
	Ville               *string   `json:"ville"`
	Siret               *string   `json:"siret"`
	Adresse             *string   `json:"adresse"`
	CP                  *string   `json:"cp"`
	Note                float64   `json:"note"`
	DansAnnuairePrivate bool      `json:"dansAnnuairePrivate"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
