package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest entrada para crear una factura.
type CreateInvoiceRequest struct {
	ChantierID   string           `json:"chantierId"`
	StID         *string          `json:"stId"`
	Numero       string           `json:"numero"`
	Type         *string          `json:"type"`
	MontantHT    *decimal.Decimal `json:"montantHT"`
	TVA          *decimal.Decimal `json:"tva"`
	DateFacture  string           `json:"dateFacture"`
	DateEcheance *string          `json:"dateEcheance"`
	Statut       *string          `json:"statut"`
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID           string          `json:"id"`
	EntrepriseID string          `json:"entrepriseId"`
	ChantierID   string          `json:"chantierId"`
	StID         *string         `json:"stId"`
	Numero       string          `json:"numero"`
	Type         string          `json:"type"`
	MontantHT    decimal.Decimal `json:"montantHT"`
	TVA          decimal.Decimal `json:"tva"`
	DateFacture  string          `json:"dateFacture"`
	DateEcheance *string         `json:"dateEcheance"`
	Statut       string          `json:"statut"`
	CreatedAt    time.Time       `json:"createdAt"`
}
