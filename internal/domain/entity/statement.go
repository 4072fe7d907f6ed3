package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una situation (estado de avance facturable).
const (
	StatementStatusPending   = "en_attente"
	StatementStatusValidated = "validee"
)

// Statement es una situation de trabajos: avance mensual facturado sobre un chantier.
type Statement struct {
	ID              string          `db:"id"`
	EnterpriseID    string          `db:"enterprise_id"`
	SiteID          string          `db:"site_id"`
	SubcontractorID *string         `db:"subcontractor_id"`
	Number          int             `db:"number"`
	Month           string          `db:"month"`
	AmountExclTax   decimal.Decimal `db:"amount_excl_tax"`
	VATRate         decimal.Decimal `db:"vat_rate"`
	Status          string          `db:"status"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// VATAmount devuelve el monto de TVA redondeado a céntimos.
func (s *Statement) VATAmount() decimal.Decimal {
	return s.AmountExclTax.Mul(s.VATRate).Div(decimal.NewFromInt(100)).Round(2)
}

// AmountInclTax devuelve el TTC.
func (s *Statement) AmountInclTax() decimal.Decimal {
	return s.AmountExclTax.Add(s.VATAmount())
}

// StatementPatch campos modificables; nil = no tocar.
type StatementPatch struct {
	SubcontractorID *string
	Number          *int
	Month           *string
	AmountExclTax   *decimal.Decimal
	VATRate         *decimal.Decimal
	Status          *string
}

// Apply copia sobre s sólo los campos presentes y refresca UpdatedAt.
func (p StatementPatch) Apply(s *Statement, now time.Time) {
	setOpt(&s.SubcontractorID, p.SubcontractorID)
	if p.Number != nil {
		s.Number = *p.Number
	}
	if p.Month != nil {
		s.Month = *p.Month
	}
	if p.AmountExclTax != nil {
		s.AmountExclTax = *p.AmountExclTax
	}
	if p.VATRate != nil {
		s.VATRate = *p.VATRate
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	s.UpdatedAt = now
}
