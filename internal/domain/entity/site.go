package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un chantier.
const (
	SiteStatusInProgress = "en_cours"
	SiteStatusDone       = "termine"
)

// Site es un chantier (obra) de la empresa.
type Site struct {
	ID             string           `db:"id"`
	EnterpriseID   string           `db:"enterprise_id"`
	Name           string           `db:"name"`
	Client         *string          `db:"client"`
	Address        *string          `db:"address"`
	ContractAmount *decimal.Decimal `db:"contract_amount"` // montantMarche
	Status         string           `db:"status"`
	Progress       int              `db:"progress"` // avancement 0-100
	StartDate      *string          `db:"start_date"`
	PlannedEndDate *string          `db:"planned_end_date"`
	CreatedAt      time.Time        `db:"created_at"`
	UpdatedAt      time.Time        `db:"updated_at"`
}

// SitePatch campos modificables de un chantier; nil = no tocar.
type SitePatch struct {
	Name           *string
	Client         *string
	Address        *string
	ContractAmount *decimal.Decimal
	Status         *string
	Progress       *int
	StartDate      *string
	PlannedEndDate *string
}

// Apply copia sobre s sólo los campos presentes y refresca UpdatedAt.
func (p SitePatch) Apply(s *Site, now time.Time) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	setOpt(&s.Client, p.Client)
	setOpt(&s.Address, p.Address)
	setOpt(&s.ContractAmount, p.ContractAmount)
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Progress != nil {
		s.Progress = *p.Progress
	}
	setOpt(&s.StartDate, p.StartDate)
	setOpt(&s.PlannedEndDate, p.PlannedEndDate)
	s.UpdatedAt = now
}
