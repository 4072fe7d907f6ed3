package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores por defecto de una factura.
const (
	InvoiceTypeDeposit   = "acompte"
	InvoiceStatusPending = "en_attente"
)

// DefaultVATRate tasa de TVA por defecto (20 %).
var DefaultVATRate = decimal.NewFromInt(20)

// Invoice es una factura ligada a un chantier y opcionalmente a un sous-traitant.
type Invoice struct {
	ID              string          `db:"id"`
	EnterpriseID    string          `db:"enterprise_id"`
	SiteID          string          `db:"site_id"`
	SubcontractorID *string         `db:"subcontractor_id"`
	Number          string          `db:"number"`
	Type            string          `db:"type"`
	AmountExclTax   decimal.Decimal `db:"amount_excl_tax"` // montantHT
	VATRate         decimal.Decimal `db:"vat_rate"`
	InvoiceDate     string          `db:"invoice_date"`
	DueDate         *string         `db:"due_date"`
	Status          string          `db:"status"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}
