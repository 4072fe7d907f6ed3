package entity

import "time"

// Subcontractor es un sous-traitant del directorio privado de la empresa.
type Subcontractor struct {
	ID                 string    `db:"id"`
	EnterpriseID       string    `db:"enterprise_id"`
	Name               string    `db:"name"`
	Trade              *string   `db:"trade"` // métier
	Email              *string   `db:"email"`
	Phone              *string   `db:"phone"`
	City               *string   `db:"city"`
	Siret              *string   `db:"siret"`
	Address            *string   `db:"address"`
	PostalCode         *string   `db:"postal_code"`
	Rating             float64   `db:"rating"`
	InPrivateDirectory bool      `db:"in_private_directory"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// SubcontractorPatch lista los campos modificables; nil = no tocar.
type SubcontractorPatch struct {
	Name       *string
	Trade      *string
	Email      *string
	Phone      *string
	City       *string
	Siret      *string
	Address    *string
	PostalCode *string
	Rating     *float64
}

// Apply copia sobre s sólo los campos presentes y refresca UpdatedAt.
func (p SubcontractorPatch) Apply(s *Subcontractor, now time.Time) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	setOpt(&s.Trade, p.Trade)
	setOpt(&s.Email, p.Email)
	setOpt(&s.Phone, p.Phone)
	setOpt(&s.City, p.City)
	setOpt(&s.Siret, p.Siret)
	setOpt(&s.Address, p.Address)
	setOpt(&s.PostalCode, p.PostalCode)
	if p.Rating != nil {
		s.Rating = *p.Rating
	}
	s.UpdatedAt = now
}

func setOpt[T any](dst **T, v *T) {
	if v != nil {
		c := *v
		*dst = &c
	}
}
