package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStatementRequest entrada para crear una situation.
type CreateStatementRequest struct {
	ChantierID string           `json:"chantierId"`
	StID       *string          `json:"stId"`
	Numero     *int             `json:"numero"`
	Mois       string           `json:"mois"`
	MontantHT  *decimal.Decimal `json:"montantHT"`
	TVA        *decimal.Decimal `json:"tva"`
	Statut     *string          `json:"statut"`
}

// UpdateStatementRequest actualización parcial de una situation (el chantier no se reasigna).
type UpdateStatementRequest struct {
	StID      *string          `json:"stId"`
	Numero    *int             `json:"numero"`
	Mois      *string          `json:"mois"`
	MontantHT *decimal.Decimal `json:"montantHT"`
	TVA       *decimal.Decimal `json:"tva"`
	Statut    *string          `json:"statut"`
}

// StatementResponse salida de una situation.
type StatementResponse struct {
	ID           string          `json:"id"`
	EntrepriseID string          `json:"entrepriseId"`
	ChantierID   string          `json:"chantierId"`
	StID         *string         `json:"stId"`
	Numero       int             `json:"numero"`
	Mois         string          `json:"mois"`
	MontantHT    decimal.Decimal `json:"montantHT"`
	TVA          decimal.Decimal `json:"tva"`
	Statut       string          `json:"statut"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
